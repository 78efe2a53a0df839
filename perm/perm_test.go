package perm_test

import (
	"testing"

	"github.com/katalvlaran/permgroup/action"
	"github.com/katalvlaran/permgroup/perm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew_TwoCycles builds (1 3 5)(2 4) and checks every derived field
// and the image of every support point.
func TestNew_TwoCycles(t *testing.T) {
	p, err := perm.New(action.Action{{1, 3, 5}, {2, 4}})
	require.NoError(t, err)

	assert.Equal(t, 5, p.MaxSupport())
	assert.Equal(t, 5, p.Degree())
	assert.False(t, p.IsIdentity())
	assert.Equal(t, []int{1, 2, 3, 4, 5}, p.Support())

	// Images inside the cycles: 1→3→5→1 and 2→4→2.
	for from, to := range map[int]int{1: 3, 3: 5, 5: 1, 2: 4, 4: 2} {
		img, imgErr := p.ImageOf(from)
		require.NoError(t, imgErr)
		assert.Equal(t, to, img, "ImageOf(%d)", from)
	}
}

// TestNew_Transposition checks the minimal non-identity permutation (1 2).
func TestNew_Transposition(t *testing.T) {
	p, err := perm.New(action.Action{{1, 2}})
	require.NoError(t, err)

	assert.Equal(t, 2, p.Degree())
	assert.Equal(t, []int{1, 2}, p.Support())
}

// TestNew_Identity verifies the degenerate bounds of the identity: empty
// support, MaxSupport 0, and every query resolved by the implicit
// fixed-point rule.
func TestNew_Identity(t *testing.T) {
	p, err := perm.New(action.Identity())
	require.NoError(t, err)

	assert.True(t, p.IsIdentity())
	assert.Equal(t, 0, p.Degree())
	assert.Equal(t, 0, p.MaxSupport())
	assert.Empty(t, p.Support())

	img, err := p.ImageOf(7)
	require.NoError(t, err)
	assert.Equal(t, 7, img, "every point is an implicit fixed point")
}

// TestNew_RejectsMalformedInput covers the construction error taxonomy.
func TestNew_RejectsMalformedInput(t *testing.T) {
	_, err := perm.New(action.Action{})
	require.ErrorIs(t, err, action.ErrInvalidAction, "empty action")

	_, err = perm.New(nil)
	require.ErrorIs(t, err, action.ErrInvalidAction, "nil action")

	_, err = perm.New(action.Action{{4}})
	require.ErrorIs(t, err, action.ErrInvalidAction, "singleton cycle")

	_, err = perm.New(action.Action{{1, 2}, {2, 3}})
	require.ErrorIs(t, err, action.ErrRepeatedPoint, "point 2 repeats")
}

// TestImageOf_Boundaries pins down the three domains of ImageOf:
// below 1 (error), inside 1..MaxSupport (stored image), above MaxSupport
// (implicit fixed point).
func TestImageOf_Boundaries(t *testing.T) {
	p, err := perm.New(action.Action{{1, 3, 5}, {2, 4}})
	require.NoError(t, err)

	_, err = p.ImageOf(0)
	require.ErrorIs(t, err, perm.ErrPointOutOfRange)

	_, err = p.ImageOf(-5)
	require.ErrorIs(t, err, perm.ErrPointOutOfRange)

	img, err := p.ImageOf(100)
	require.NoError(t, err)
	assert.Equal(t, 100, img, "points beyond MaxSupport are fixed")
}

// TestSupport_CopyOnRead ensures the accessor hands out a private copy:
// a caller scribbling over the result must not affect later reads.
func TestSupport_CopyOnRead(t *testing.T) {
	p, err := perm.New(action.Action{{2, 6}})
	require.NoError(t, err)

	s := p.Support()
	require.Equal(t, []int{2, 6}, s)
	s[0] = 999

	assert.Equal(t, []int{2, 6}, p.Support(), "internal support must be untouched")
}

// TestNew_SupportMatchesDirectScan cross-checks degree and support against
// an independent scan of the action (property from the construction contract).
func TestNew_SupportMatchesDirectScan(t *testing.T) {
	a := action.Action{{3, 9, 4}, {1, 7}, {2, 8, 6, 5}}
	p, err := perm.New(a)
	require.NoError(t, err)

	// Independent derivation: every point of a cycle of length ≥ 2 is moved.
	want := map[int]struct{}{}
	count := 0
	for _, c := range a {
		if len(c) < 2 {
			continue
		}
		for _, pt := range c {
			want[pt] = struct{}{}
			count++
		}
	}

	assert.Equal(t, count, p.Degree())
	got := p.Support()
	assert.Len(t, got, count)
	prev := 0
	for _, pt := range got {
		assert.Greater(t, pt, prev, "support must be strictly increasing")
		assert.Contains(t, want, pt)
		prev = pt
	}
}

// TestImage_FastPathAgreesWithImageOf checks the unchecked accessor on the
// valid domain and beyond MaxSupport.
func TestImage_FastPathAgreesWithImageOf(t *testing.T) {
	p, err := perm.New(action.Action{{1, 4}, {2, 3}})
	require.NoError(t, err)

	for pt := 1; pt <= 10; pt++ {
		want, imgErr := p.ImageOf(pt)
		require.NoError(t, imgErr)
		assert.Equal(t, want, p.Image(pt), "Image(%d)", pt)
	}
}
