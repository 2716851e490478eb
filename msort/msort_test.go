package msort_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/planar/geom"
	"github.com/katalvlaran/planar/msort"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tagged carries its input position so stability can be observed.
type tagged struct {
	key float64
	pos int
}

func keyOf(t tagged) float64 { return t.key }

// randomTagged builds n elements with keys drawn from a small range,
// which forces many ties.
func randomTagged(rng *rand.Rand, n, distinct int) []tagged {
	s := make([]tagged, n)
	for i := range s {
		s[i] = tagged{key: float64(rng.Intn(distinct)), pos: i}
	}

	return s
}

// TestStable_Empty and single-element inputs return fresh copies.
func TestStable_Trivial(t *testing.T) {
	assert.Empty(t, msort.Stable([]tagged{}, keyOf))
	assert.Empty(t, msort.Stable[tagged](nil, keyOf))

	one := []tagged{{key: 1, pos: 0}}
	out := msort.Stable(one, keyOf)
	require.Len(t, out, 1)
	out[0].key = 42
	assert.Equal(t, 1.0, one[0].key, "result must not alias the input")
}

// TestStable_Laws checks ordering, permutation and stability on random inputs.
func TestStable_Laws(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for _, n := range []int{2, 3, 5, 16, 17, 100, 1000} {
		in := randomTagged(rng, n, 5)
		before := append([]tagged(nil), in...)

		out := msort.Stable(in, keyOf)
		require.Len(t, out, n)
		assert.Equal(t, before, in, "input must be left untouched (n=%d)", n)
		assert.True(t, msort.IsSorted(out, keyOf), "non-decreasing (n=%d)", n)

		// permutation: every position appears exactly once
		seen := make([]bool, n)
		for _, e := range out {
			require.False(t, seen[e.pos], "duplicate element pos=%d", e.pos)
			seen[e.pos] = true
		}

		// stability: equal keys keep increasing input positions
		for i := 1; i < n; i++ {
			if out[i].key == out[i-1].key {
				assert.Less(t, out[i-1].pos, out[i].pos, "stability broken at %d (n=%d)", i, n)
			}
		}
	}
}

// TestStable_Idempotent verifies sorting twice is the same as sorting once.
func TestStable_Idempotent(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	once := msort.Stable(randomTagged(rng, 257, 9), keyOf)
	twice := msort.Stable(once, keyOf)
	assert.Equal(t, once, twice)
}

// TestStable_ReverseInput exercises the full merge path.
func TestStable_ReverseInput(t *testing.T) {
	in := []tagged{{5, 0}, {4, 1}, {3, 2}, {2, 3}, {1, 4}, {0, 5}}
	out := msort.Stable(in, keyOf)
	for i, e := range out {
		assert.Equal(t, float64(i), e.key)
	}
}

// TestByAxis sorts points by X and by Y, keeping ties in input order.
func TestByAxis(t *testing.T) {
	pts := []geom.Point{{X: 4, Y: 70}, {X: 2, Y: 8}, {X: 3, Y: 34}, {X: 5, Y: 98}, {X: 3, Y: 7}}

	byX := msort.ByAxis(pts, geom.AxisX)
	assert.Equal(t, []geom.Point{{X: 2, Y: 8}, {X: 3, Y: 34}, {X: 3, Y: 7}, {X: 4, Y: 70}, {X: 5, Y: 98}}, byX,
		"(3,34) precedes (3,7) because it came first in the input")

	byY := msort.ByAxis(pts, geom.AxisY)
	assert.Equal(t, []geom.Point{{X: 3, Y: 7}, {X: 2, Y: 8}, {X: 3, Y: 34}, {X: 4, Y: 70}, {X: 5, Y: 98}}, byY)
}

// TestIsSorted covers the negative case.
func TestIsSorted(t *testing.T) {
	assert.True(t, msort.IsSorted([]tagged{}, keyOf))
	assert.False(t, msort.IsSorted([]tagged{{2, 0}, {1, 1}}, keyOf))
}
