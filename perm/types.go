// Package perm — type and sentinel declarations for the Permutation core.
//
// This file declares Permutation and ErrPointOutOfRange; construction and
// queries live in perm.go.
package perm

import "errors"

// ErrPointOutOfRange indicates a query point below the domain minimum (1).
// This is a programming-contract violation, never a transient condition;
// it is surfaced immediately and never retried.
var ErrPointOutOfRange = errors.New("perm: point out of range")

// Permutation is the validated, normalized representation of one finite
// permutation. It is immutable after New: no method mutates image or
// support, so a value may be read concurrently without synchronization.
//
// Invariants, established once by New and never re-checked:
//  1. image restricted to {1..maxSupport} is a bijection on that set.
//  2. support holds exactly the moved points, strictly increasing,
//     len(support) == degree.
//  3. identity ⇔ degree == 0.
//  4. maxSupport ≥ every point of the originating action; 0 for the identity.
type Permutation struct {
	// maxSupport is the largest point the dense image array addresses.
	// Points beyond it are implicit fixed points.
	maxSupport int

	// degree is the number of moved points.
	degree int

	// identity is true iff degree == 0.
	identity bool

	// image[p] holds the image of p for 1 ≤ p ≤ maxSupport; index 0 is unused.
	image []int

	// support lists the moved points in strictly increasing order.
	support []int
}
