// Package action defines the cycle-notation input type for permutations
// and the validation/normalization routines that gate construction.
//
// 🚀 What is an Action?
//
//	The input notation for a permutation: an ordered sequence of disjoint
//	cycles, each cycle an ordered sequence of distinct positive points.
//	For example, (1 3 5)(2 4) is written as
//
//	  a := action.Action{{1, 3, 5}, {2, 4}}
//
// Validation rules (checked eagerly, exactly once, by Validate):
//   - the action must contain at least one cycle
//   - every point must be a positive integer
//   - singleton cycles are rejected — a one-point cycle carries no
//     information and would silently change the addressable domain
//   - no point may occur twice, within a cycle or across cycles
//   - empty cycles are permitted and denote the identity, so the canonical
//     identity input is Action{{}}
//
// ⚙️ Usage:
//
//	if err := action.Validate(a); err != nil {
//	  // errors.Is(err, action.ErrInvalidAction) or action.ErrRepeatedPoint
//	}
//	img := action.NormalizeToMap(a) // dense point→image map over 1..MaxSupport(a)
//
// All functions are pure and side-effect free; none of them mutate the
// action. Complexity is O(P) for P total points unless noted otherwise.
package action
