// Package builder — sentinel errors.
//
// Error policy (explicit and strict):
//   - Only package-level sentinels are exposed; callers branch with
//     errors.Is(err, ErrX).
//   - Sentinels are never wrapped with formatted strings at definition
//     site; factories attach context via %w at the call site.
//   - Factories never panic; validation panics are confined to option
//     constructors (WithRand on nil).
package builder

import "errors"

// ErrTooFewPoints indicates a size parameter below the minimum for the
// requested factory (NCycle/Involution need n ≥ 2, Random needs n ≥ 1).
var ErrTooFewPoints = errors.New("builder: too few points")

// ErrBadPoint indicates a point parameter below the domain minimum (1).
var ErrBadPoint = errors.New("builder: point out of range")

// ErrDuplicatePoint indicates a factory was asked to place the same point
// twice in one cycle (e.g. Transposition(i, i)).
var ErrDuplicatePoint = errors.New("builder: duplicate point")

// ErrOddInvolution indicates Involution was called with an odd point
// count; a fixed-point-free involution needs an even number of points.
var ErrOddInvolution = errors.New("builder: involution needs an even point count")

// ErrNeedRandSource indicates a stochastic factory was invoked without an
// RNG; supply WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")
