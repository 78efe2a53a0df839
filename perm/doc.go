// Package perm provides the Permutation core type: a validated, normalized,
// immutable representation of one finite permutation.
//
// 🚀 What is a Permutation?
//
//	A bijection on {1..MaxSupport}, stored as a dense image array together
//	with the sorted list of moved points (the support). Everything beyond
//	MaxSupport is an implicit fixed point: ImageOf(p) == p for p > MaxSupport
//	without any storage cost.
//
// Lifecycle: build once from a cycle-notation action, read forever.
//
//	p, err := perm.New(action.Action{{1, 3, 5}, {2, 4}})
//	if err != nil {
//	  // errors.Is against action.ErrInvalidAction / action.ErrRepeatedPoint
//	}
//	img, _ := p.ImageOf(3)   // 5
//	pts := p.Support()       // [1 2 3 4 5], a private copy
//
// All structural validation happens exactly once, inside New; a
// successfully constructed Permutation is internally consistent for its
// entire lifetime and no later operation re-checks it. The only failure
// possible after construction is an out-of-range query point
// (ErrPointOutOfRange for point < 1).
//
// 🔒 Concurrency: a Permutation is immutable after New, so any number of
// goroutines may query it concurrently without synchronization.
//
// Performance:
//
//   - New:      O(MaxSupport + P) time, O(MaxSupport) space
//   - ImageOf:  O(1)
//   - Support:  O(Degree) per call (copy-on-read)
package perm
