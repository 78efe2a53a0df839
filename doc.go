// Package permgroup is a small, allocation-conscious toolkit for finite
// permutations — the atomic building block of computational group theory.
//
// 🚀 What is permgroup?
//
//	A pure-Go library providing the permutation primitive that higher-level
//	group algorithms (stabilizer chains, orbit computation, membership
//	testing) are built on:
//		• Actions: cycle-notation input, validated and normalized once
//		• Permutation: immutable dense image array + sorted support list
//		• Cycles: orbit length, single-cycle extraction, full disjoint
//		  decomposition with a per-call scratch buffer
//		• Builder: deterministic action factories for fixtures and fuzzing
//
// ✨ Why choose permgroup?
//
//   - Validate once, trust forever — every structural check happens at
//     construction; a built Permutation can never be malformed
//   - Immutable values — safe for unsynchronized concurrent reads
//   - Deterministic — decomposition order and cycle canonicalization are
//     fully specified, so results are reproducible and comparable
//   - Pure Go — no cgo, no hidden deps
//
// Everything is organized under four subpackages:
//
//	action/  — the Action type, validation and normalization of raw input
//	perm/    — the Permutation core: construction, ImageOf, Support
//	cycles/  — cycle length, cycle extraction, Decompose, canonical form
//	builder/ — deterministic factories: Transposition, NCycle, Random, ...
//
// Quick cycle-notation example:
//
//	(1 3 5)(2 4)
//
//	maps 1→3, 3→5, 5→1, 2→4, 4→2; its support is {1,2,3,4,5}.
//
// Group multiplication, inversion and base-and-strong-generating-set
// construction belong to layers built on top of this primitive.
//
//	go get github.com/katalvlaran/permgroup
package permgroup
