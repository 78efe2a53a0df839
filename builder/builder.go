// Package builder — the action factories.
//
// Every factory validates its parameters early, returns sentinel errors
// (never panics), and emits an action that passes action.Validate. Output
// is deterministic for equal inputs, options and seed.
package builder

import (
	"fmt"

	"github.com/katalvlaran/permgroup/action"
)

// Transposition returns the 2-cycle (i j). Both points must be ≥ 1 and
// distinct. Complexity: O(1).
func Transposition(i, j int) (action.Action, error) {
	if i < 1 || j < 1 {
		return nil, fmt.Errorf("Transposition(%d, %d): %w", i, j, ErrBadPoint)
	}
	if i == j {
		return nil, fmt.Errorf("Transposition(%d, %d): %w", i, j, ErrDuplicatePoint)
	}

	return action.Action{{i, j}}, nil
}

// NCycle returns the full cycle (1 2 ... n), the canonical n-point shift.
// Requires n ≥ 2. Complexity: O(n).
func NCycle(n int) (action.Action, error) {
	if n < 2 {
		return nil, fmt.Errorf("NCycle(%d): %w", n, ErrTooFewPoints)
	}

	c := make([]int, n)
	for i := range c {
		c[i] = i + 1
	}

	return action.Action{c}, nil
}

// Involution returns the fixed-point-free involution
// (1 2)(3 4)...(n-1 n) over 1..n. Requires n ≥ 2 and even.
// Complexity: O(n).
func Involution(n int) (action.Action, error) {
	if n < 2 {
		return nil, fmt.Errorf("Involution(%d): %w", n, ErrTooFewPoints)
	}
	if n%2 != 0 {
		return nil, fmt.Errorf("Involution(%d): %w", n, ErrOddInvolution)
	}

	a := make(action.Action, 0, n/2)
	for i := 1; i <= n; i += 2 {
		a = append(a, []int{i, i + 1})
	}

	return a, nil
}

// Identity returns the canonical identity action. Complexity: O(1).
func Identity() action.Action {
	return action.Identity()
}

// Random draws a uniform random permutation of 1..n (Fisher–Yates under
// the configured RNG) and returns it factored into disjoint cycles of
// length ≥ 2, so the result always passes action.Validate. A sampled
// identity yields Identity().
//
// Requires n ≥ 1 and an explicit RNG (WithSeed or WithRand); without one
// the factory fails with ErrNeedRandSource.
//
// Complexity: O(n) time and space.
func Random(n int, opts ...Option) (action.Action, error) {
	if n < 1 {
		return nil, fmt.Errorf("Random(%d): %w", n, ErrTooFewPoints)
	}
	cfg := newConfig(opts...)
	if cfg.rng == nil {
		return nil, fmt.Errorf("Random(%d): %w", n, ErrNeedRandSource)
	}

	// 1) Fisher–Yates shuffle of the identity map over 1..n.
	img := make([]int, n+1)
	for p := 1; p <= n; p++ {
		img[p] = p
	}
	for p := n; p > 1; p-- {
		q := cfg.rng.Intn(p) + 1
		img[p], img[q] = img[q], img[p]
	}

	// 2) Factor the sampled permutation into cycles of length ≥ 2 by an
	//    ascending orbit scan (same bookkeeping as cycles.Decompose).
	visited := make([]bool, n+1)
	var a action.Action
	for p := 1; p <= n; p++ {
		if visited[p] || img[p] == p {
			continue
		}
		c := []int{p}
		visited[p] = true
		for cur := img[p]; cur != p; cur = img[cur] {
			c = append(c, cur)
			visited[cur] = true
		}
		a = append(a, c)
	}

	// 3) A sampled identity has no non-trivial cycle; fall back to the
	//    canonical identity notation.
	if len(a) == 0 {
		return Identity(), nil
	}

	return a, nil
}
