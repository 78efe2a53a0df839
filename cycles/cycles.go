// Package cycles — the decomposition algorithms.
//
// Every routine here walks orbits through perm.Permutation.Image, the
// unchecked O(1) accessor: the public entry points validate the query
// point once, after which the walk stays inside {1..MaxSupport} ∪ {point}
// by the bijection invariant, so no per-step checks are needed.
package cycles

import (
	"fmt"

	"github.com/katalvlaran/permgroup/perm"
)

// Length returns the orbit length of point under p: the smallest k ≥ 1
// with image^k(point) == point. Fixed points (including every point beyond
// MaxSupport) have length 1. Returns perm.ErrPointOutOfRange for point < 1.
//
// Termination: image restricted to the support is a finite bijection, so
// every orbit is finite. Complexity: O(orbit length).
func Length(p *perm.Permutation, point int) (int, error) {
	if point < 1 {
		return 0, fmt.Errorf("cycles: Length(%d): %w", point, perm.ErrPointOutOfRange)
	}

	n := 1
	for cur := p.Image(point); cur != point; cur = p.Image(cur) {
		n++
	}

	return n, nil
}

// CycleOf materializes the orbit of point under p, starting at point
// (canonicalization choice: the first element is always the query point;
// rotations denote the same orbit, see Equal). A fixed point yields the
// trivial one-element cycle. Returns perm.ErrPointOutOfRange for point < 1.
//
// Complexity: O(orbit length) time and space.
func CycleOf(p *perm.Permutation, point int) (Cycle, error) {
	if point < 1 {
		return nil, fmt.Errorf("cycles: CycleOf(%d): %w", point, perm.ErrPointOutOfRange)
	}

	return orbit(p, point), nil
}

// Decompose partitions the support of p into its disjoint non-trivial
// cycles.
//
// Algorithm:
//  1. Allocate a visited-flags scratch buffer of size MaxSupport+1,
//     seeded true (skip) everywhere and false on the support.
//  2. Scan the support in increasing order; each unvisited point starts a
//     new cycle, extracted by the same orbit walk as CycleOf.
//  3. Mark the whole orbit visited and append the cycle to the result.
//
// Guarantees: each support point lands in exactly one cycle; cycle lengths
// sum to Degree; the identity yields an empty Decomposition; output is
// deterministic — cycles ordered by smallest point, each starting at its
// smallest point.
//
// The scratch buffer is private to the call, so concurrent Decompose
// invocations on a shared Permutation are safe and agree.
//
// Complexity: O(MaxSupport + Degree) time, O(MaxSupport) scratch space.
func Decompose(p *perm.Permutation) Decomposition {
	support := p.Support()
	if len(support) == 0 {
		return nil
	}

	// 1) Seed the scratch buffer: skip everything off-support.
	visited := make([]bool, p.MaxSupport()+1)
	for i := range visited {
		visited[i] = true
	}
	for _, pt := range support {
		visited[pt] = false
	}

	// 2) Ascending scan; every unvisited point opens a fresh orbit.
	var out Decomposition
	for _, pt := range support {
		if visited[pt] {
			continue
		}
		c := orbit(p, pt)
		// 3) Close out the orbit's bookkeeping before moving on.
		for _, q := range c {
			visited[q] = true
		}
		out = append(out, c)
	}

	return out
}

// orbit walks the cycle of point under p, starting at point. The caller
// guarantees point ≥ 1.
func orbit(p *perm.Permutation, point int) Cycle {
	c := Cycle{point}
	for cur := p.Image(point); cur != point; cur = p.Image(cur) {
		c = append(c, cur)
	}

	return c
}
