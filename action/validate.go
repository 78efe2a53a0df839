// Package action — validation and normalization of raw cycle-notation input.
//
// All routines here are pure: no mutation, no allocation beyond the
// returned value, no hidden state. They are invoked exactly once per
// permutation construction; downstream code relies on their guarantees
// and never re-checks.
package action

import "fmt"

// VerifyShape reports whether a is a non-empty sequence of cycles whose
// points are all positive and none of which is a singleton. Empty cycles
// pass (identity notation); a one-point cycle fails because it carries no
// movement yet would widen the addressable domain.
// Complexity: O(P) for P total points.
func VerifyShape(a Action) bool {
	// 1) The action itself must contain at least one cycle.
	if len(a) == 0 {
		return false
	}
	// 2) Every cycle must be empty or of length ≥ 2, with positive points.
	for _, c := range a {
		if len(c) == 1 {
			return false
		}
		for _, pt := range c {
			if pt < 1 {
				return false
			}
		}
	}

	return true
}

// HasUniquePoints reports whether no point occurs twice anywhere in a,
// neither within one cycle nor across cycles.
// Complexity: O(P) time, O(P) space for the seen-set.
func HasUniquePoints(a Action) bool {
	seen := make(map[int]struct{})
	for _, c := range a {
		for _, pt := range c {
			if _, dup := seen[pt]; dup {
				return false
			}
			seen[pt] = struct{}{}
		}
	}

	return true
}

// MaxSupport returns the largest point value appearing anywhere in a.
// A result of 0 means a denotes the identity.
// Complexity: O(P).
func MaxSupport(a Action) int {
	m := 0
	for _, c := range a {
		for _, pt := range c {
			if pt > m {
				m = pt
			}
		}
	}

	return m
}

// Degree returns the number of points moved by a: the total point count
// over cycles of length ≥ 2.
// Complexity: O(len(a)).
func Degree(a Action) int {
	d := 0
	for _, c := range a {
		if len(c) >= 2 {
			d += len(c)
		}
	}

	return d
}

// IsIdentity reports whether a denotes the identity permutation, i.e.
// no cycle of length ≥ 2 exists.
// Complexity: O(P).
func IsIdentity(a Action) bool {
	return MaxSupport(a) == 0
}

// NormalizeToMap converts a (shape-valid, point-unique) action into a
// dense total image map over {1..MaxSupport(a)}: index p holds the image
// of p, index 0 is unused and left zero. Points inside a cycle map to the
// next point of that cycle (wrapping to the first); unmentioned points map
// to themselves. For the identity the result is the single unused slot.
//
// Complexity: O(MaxSupport + P) time, O(MaxSupport) space.
func NormalizeToMap(a Action) []int {
	m := MaxSupport(a)

	// 1) Start from the identity map over 1..m.
	img := make([]int, m+1)
	for p := 1; p <= m; p++ {
		img[p] = p
	}

	// 2) Overwrite cycle members with their cyclic successor.
	for _, c := range a {
		for i, pt := range c {
			img[pt] = c[(i+1)%len(c)]
		}
	}

	return img
}

// Validate is the composed construction gate: shape first, then point
// uniqueness. It returns ErrInvalidAction or ErrRepeatedPoint (wrapped
// with call context) and nil for a well-formed action.
// Complexity: O(P).
func Validate(a Action) error {
	if !VerifyShape(a) {
		return fmt.Errorf("Validate: %w", ErrInvalidAction)
	}
	if !HasUniquePoints(a) {
		return fmt.Errorf("Validate: %w", ErrRepeatedPoint)
	}

	return nil
}
