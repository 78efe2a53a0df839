// Package builder provides deterministic factories for cycle-notation
// actions: the fixtures that tests, benchmarks and downstream group code
// feed into perm.New.
//
// 🚀 What does builder give you?
//
//	Ready-made, always-valid actions:
//	  • Transposition(i, j) — the 2-cycle (i j)
//	  • NCycle(n)           — the full cycle (1 2 ... n)
//	  • Involution(n)       — (1 2)(3 4)...(n-1 n) for even n
//	  • Identity()          — the canonical identity action
//	  • Random(n, opts...)  — a uniform random permutation of 1..n,
//	                          already factored into disjoint cycles
//
// Design contract (strict):
//   - Determinism: the same parameters, options and seed produce the same
//     action; there are no hidden globals.
//   - Safety: factories never panic; they return sentinel errors. Panics
//     are confined to option constructors on programmer error (nil RNG).
//   - Every returned action passes action.Validate.
//
// ⚙️ Usage:
//
//	a, err := builder.Random(30, builder.WithSeed(42))
//	if err != nil { ... }
//	p, _ := perm.New(a)
//
// Stochastic factories require an explicit RNG via WithSeed or WithRand;
// without one they fail with ErrNeedRandSource rather than defaulting to
// silent non-determinism.
package builder
