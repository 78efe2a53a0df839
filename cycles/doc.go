// Package cycles implements the disjoint-cycle algebra over a built
// perm.Permutation: orbit length, single-cycle extraction, and the full
// decomposition into non-trivial cycles.
//
// 🚀 What is a cycle decomposition?
//
//	Every finite permutation factors uniquely into disjoint cycles. For
//	(1 3 5)(2 4) the orbit of 1 is 1→3→5→1, the orbit of 2 is 2→4→2, and
//	Decompose returns exactly those two cycles.
//
// ⚙️ Usage:
//
//	p, _ := perm.New(action.Action{{1, 3, 5}, {2, 4}})
//	n, _ := cycles.Length(p, 1)   // 3
//	c, _ := cycles.CycleOf(p, 3)  // [3 5 1] — always starts at the query point
//	d := cycles.Decompose(p)      // [[1 3 5] [2 4]]
//
// Determinism: Decompose scans the support in increasing order, so the
// cycles arrive ordered by their smallest point and each cycle starts at
// its smallest point. Two calls on the same Permutation return identical
// results. Rotations of one cycle denote the same orbit; use Canonical or
// Equal to compare cycles up to rotation.
//
// The package is stateless: the only working storage is a visited-flags
// scratch buffer private to one Decompose call, so concurrent
// decompositions of a shared Permutation are safe.
//
// Failure semantics: a validated Permutation cannot produce malformed
// cycles; the only possible failure is a query point below 1, surfaced as
// perm.ErrPointOutOfRange.
//
// Performance:
//
//   - Length / CycleOf: O(L) for orbit length L
//   - Decompose:        O(MaxSupport + Degree) time, O(MaxSupport) scratch
package cycles
