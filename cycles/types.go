// Package cycles — result types and rotation-aware comparison helpers.
package cycles

// Cycle is one orbit of a permutation: an ordered point sequence
// (p, image(p), image(image(p)), ...) that closes back on p. A Cycle
// returned by CycleOf starts at the query point; one returned by
// Decompose starts at the orbit's smallest point.
type Cycle []int

// Decomposition is the full set of disjoint non-trivial cycles of one
// permutation, ordered by smallest contained point. The cycle lengths sum
// to the permutation's degree; the union of the cycles is its support.
type Decomposition []Cycle

// Points returns the total number of points across all cycles, which for
// a Decomposition produced by Decompose equals the permutation's degree.
// Complexity: O(len(d)).
func (d Decomposition) Points() int {
	n := 0
	for _, c := range d {
		n += len(c)
	}

	return n
}

// Canonical returns the rotation of c that starts at its smallest point.
// Since all points of a cycle are distinct, this is the unique minimal
// rotation, so rotations of the same orbit share one canonical form.
// The input is not mutated.
// Complexity: O(len(c)) time and space.
func Canonical(c Cycle) Cycle {
	if len(c) == 0 {
		return nil
	}

	// 1) Locate the smallest point.
	min := 0
	for i, pt := range c {
		if pt < c[min] {
			min = i
		}
	}

	// 2) Rotate into a fresh slice: c[min:], then the wrapped prefix.
	out := make(Cycle, len(c))
	n := copy(out, c[min:])
	copy(out[n:], c[:min])

	return out
}

// Equal reports whether a and b denote the same orbit, i.e. are rotations
// of one another. (1 3 5), (3 5 1) and (5 1 3) are all Equal.
// Complexity: O(len(a)).
func Equal(a, b Cycle) bool {
	if len(a) != len(b) {
		return false
	}
	ca, cb := Canonical(a), Canonical(b)
	for i := range ca {
		if ca[i] != cb[i] {
			return false
		}
	}

	return true
}
