// Package action declares the Action type and the sentinel errors shared
// by the validation routines in validate.go.
package action

import "errors"

// Action is a permutation written in cycle notation: an ordered sequence
// of disjoint cycles, each cycle an ordered sequence of distinct positive
// points. Action{{1, 3, 5}, {2, 4}} denotes (1 3 5)(2 4).
//
// An empty cycle denotes the identity; Identity() returns the canonical
// identity action. A cycle of exactly one point is rejected by Validate.
type Action [][]int

// Sentinel errors for action validation. Branch with errors.Is.
var (
	// ErrInvalidAction indicates a structurally malformed action: nil or
	// empty, a singleton cycle, or a non-positive point.
	ErrInvalidAction = errors.New("action: invalid action")

	// ErrRepeatedPoint indicates a point occurs more than once in the
	// action, violating cycle disjointness.
	ErrRepeatedPoint = errors.New("action: repeated point")
)

// Identity returns the canonical identity action: a single empty cycle.
// It is shape-valid, has MaxSupport 0 and Degree 0.
// Complexity: O(1).
func Identity() Action {
	return Action{{}}
}

// Clone returns a deep copy of a, so callers can retain the input while
// handing the original to code they do not control.
// Complexity: O(P) time and space for P total points.
func Clone(a Action) Action {
	if a == nil {
		return nil
	}
	out := make(Action, len(a))
	for i, c := range a {
		out[i] = append([]int(nil), c...)
	}

	return out
}
