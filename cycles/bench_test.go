package cycles_test

import (
	"testing"

	"github.com/katalvlaran/permgroup/action"
	"github.com/katalvlaran/permgroup/cycles"
	"github.com/katalvlaran/permgroup/perm"
)

// fixturePerm builds a permutation over n points made of disjoint
// transpositions, giving Decompose the maximal cycle count for its size.
func fixturePerm(b *testing.B, n int) *perm.Permutation {
	b.Helper()
	a := make(action.Action, 0, n/2)
	for i := 1; i+1 <= n; i += 2 {
		a = append(a, []int{i, i + 1})
	}
	p, err := perm.New(a)
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}

	return p
}

// benchmarkDecompose measures a full decomposition at support size n.
func benchmarkDecompose(b *testing.B, n int) {
	p := fixturePerm(b, n)

	b.ResetTimer() // fixture construction excluded
	for i := 0; i < b.N; i++ {
		if d := cycles.Decompose(p); d.Points() != p.Degree() {
			b.Fatalf("decomposition covered %d of %d points", d.Points(), p.Degree())
		}
	}
}

// BenchmarkDecompose_Small decomposes 100 points (50 transpositions).
func BenchmarkDecompose_Small(b *testing.B) { benchmarkDecompose(b, 100) }

// BenchmarkDecompose_Medium decomposes 10_000 points (5_000 transpositions).
func BenchmarkDecompose_Medium(b *testing.B) { benchmarkDecompose(b, 10_000) }

// BenchmarkLength walks one long orbit: a single n-cycle.
func BenchmarkLength(b *testing.B) {
	c := make([]int, 4096)
	for i := range c {
		c[i] = i + 1
	}
	p, err := perm.New(action.Action{c})
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if n, lenErr := cycles.Length(p, 1); lenErr != nil || n != len(c) {
			b.Fatalf("Length = %d, err = %v", n, lenErr)
		}
	}
}
