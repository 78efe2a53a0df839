// Package perm — construction and query operations of the Permutation core.
//
// Design contract (strict):
//   - New is the only entry point; it validates eagerly and exactly once.
//   - A built Permutation is immutable; queries never allocate except the
//     documented copy-on-read of Support.
//   - Query failures are limited to ErrPointOutOfRange on point < 1.
package perm

import (
	"fmt"

	"github.com/katalvlaran/permgroup/action"
)

// New builds a Permutation from a cycle-notation action.
//
// Steps:
//  1. Gate the input through action.Validate; malformed shapes surface
//     action.ErrInvalidAction, disjointness violations surface
//     action.ErrRepeatedPoint (both wrapped with construction context).
//  2. Derive maxSupport, degree and the identity flag from the action.
//  3. Normalize the action into the dense image array and collect the
//     support in one ascending scan of 1..maxSupport.
//
// The returned value owns its arrays; their lifetime is bound to the value
// and no release call exists.
//
// Complexity: O(MaxSupport + P) time, O(MaxSupport) space,
// P = total points in the action.
func New(a action.Action) (*Permutation, error) {
	// 1) Validate once; nothing downstream ever re-checks.
	if err := action.Validate(a); err != nil {
		return nil, fmt.Errorf("perm: New: %w", err)
	}

	// 2) Scalar derivations.
	maxSupport := action.MaxSupport(a)
	degree := action.Degree(a)

	// 3) Dense image map over 1..maxSupport (index 0 unused).
	image := action.NormalizeToMap(a)

	// 4) Collect moved points in one ascending scan; the scan order makes
	//    support strictly increasing by construction.
	support := make([]int, 0, degree)
	for pt := 1; pt <= maxSupport; pt++ {
		if image[pt] != pt {
			support = append(support, pt)
		}
	}

	return &Permutation{
		maxSupport: maxSupport,
		degree:     degree,
		identity:   degree == 0,
		image:      image,
		support:    support,
	}, nil
}

// Degree returns the number of moved points. Complexity: O(1).
func (p *Permutation) Degree() int { return p.degree }

// MaxSupport returns the largest addressable point of the dense image
// array; points beyond it are implicit fixed points. Complexity: O(1).
func (p *Permutation) MaxSupport() int { return p.maxSupport }

// IsIdentity reports whether the permutation moves no point. Complexity: O(1).
func (p *Permutation) IsIdentity() bool { return p.identity }

// ImageOf returns the image of point.
//
//	1 ≤ point ≤ MaxSupport: the stored image.
//	point > MaxSupport:     point itself (implicit fixed point).
//	point < 1:              ErrPointOutOfRange.
//
// Complexity: O(1).
func (p *Permutation) ImageOf(point int) (int, error) {
	if point < 1 {
		return 0, fmt.Errorf("perm: ImageOf(%d): %w", point, ErrPointOutOfRange)
	}
	if point > p.maxSupport {
		return point, nil
	}

	return p.image[point], nil
}

// Image is the unchecked fast-path companion of ImageOf for hot loops that
// have already validated point ≥ 1 (e.g. orbit walks over the support).
// Points beyond MaxSupport map to themselves. Behavior for point < 1 is
// unspecified and must not be relied on.
// Complexity: O(1).
func (p *Permutation) Image(point int) int {
	if point > p.maxSupport {
		return point
	}

	return p.image[point]
}

// Support returns the moved points in strictly increasing order. The
// returned slice is a private copy: mutating it cannot corrupt the
// permutation's invariants.
// Complexity: O(Degree) time and space per call.
func (p *Permutation) Support() []int {
	return append([]int(nil), p.support...)
}
