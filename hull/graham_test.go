package hull_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/planar/geom"
	"github.com/katalvlaran/planar/hull"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGrahamScan_Empty returns ErrNoPoints.
func TestGrahamScan_Empty(t *testing.T) {
	_, err := hull.GrahamScan(nil)
	assert.ErrorIs(t, err, hull.ErrNoPoints)
}

// TestGrahamScan_NonFinite rejects NaN and infinite coordinates.
func TestGrahamScan_NonFinite(t *testing.T) {
	square := []geom.Point{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 0, Y: 4}, {X: 4, Y: 4}}
	for _, bad := range []geom.Point{{X: math.NaN(), Y: 1}, {X: 1, Y: math.Inf(1)}, {X: math.Inf(-1), Y: 0}} {
		in := append(append([]geom.Point{}, square...), bad)
		got, err := hull.GrahamScan(in)
		assert.ErrorIs(t, err, hull.ErrInvalidInput, "%v", bad)
		assert.Nil(t, got)
	}
}

// TestGrahamScan_Square drops the interior point and orders corners CCW.
func TestGrahamScan_Square(t *testing.T) {
	in := []geom.Point{{X: 2, Y: 2}, {X: 0, Y: 4}, {X: 1, Y: 1}, {X: 4, Y: 0}, {X: 0, Y: 0}, {X: 4, Y: 4}}

	got, err := hull.GrahamScan(in)
	require.NoError(t, err)
	assert.Equal(t, []geom.Point{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 0, Y: 4}}, got)
}

// TestGrahamScan_EdgePointsAndDuplicates removes collinear edge points and repeats.
func TestGrahamScan_EdgePointsAndDuplicates(t *testing.T) {
	in := []geom.Point{
		{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 4, Y: 0}, // bottom edge with midpoint
		{X: 4, Y: 4}, {X: 4, Y: 4}, // duplicate corner
		{X: 0, Y: 4}, {X: 0, Y: 2}, // left edge midpoint
		{X: 0, Y: 0},
	}

	got, err := hull.GrahamScan(in)
	require.NoError(t, err)
	assert.Equal(t, []geom.Point{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 0, Y: 4}}, got)
}

// TestGrahamScan_Degenerate covers single, identical and collinear inputs.
func TestGrahamScan_Degenerate(t *testing.T) {
	one := []geom.Point{{X: 3, Y: 3}}
	got, err := hull.GrahamScan(one)
	require.NoError(t, err)
	assert.Equal(t, one, got)

	same := []geom.Point{{X: 1, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 1}}
	got, err = hull.GrahamScan(same)
	require.NoError(t, err)
	assert.Equal(t, []geom.Point{{X: 1, Y: 1}}, got)

	line := []geom.Point{{X: 2, Y: 2}, {X: 0, Y: 0}, {X: 3, Y: 3}, {X: 1, Y: 1}}
	got, err = hull.GrahamScan(line)
	require.NoError(t, err)
	assert.Equal(t, []geom.Point{{X: 0, Y: 0}, {X: 3, Y: 3}}, got)
}

// TestGrahamScan_ConvexAndEnclosing checks, on random inputs, that every turn
// of the hull is counter-clockwise and every input point lies inside or on it.
func TestGrahamScan_ConvexAndEnclosing(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for trial := 0; trial < 100; trial++ {
		n := 3 + rng.Intn(60)
		in := make([]geom.Point, n)
		for i := range in {
			in[i] = geom.Point{X: float64(rng.Intn(30)), Y: float64(rng.Intn(30))}
		}

		h, err := hull.GrahamScan(in)
		require.NoError(t, err)
		if len(h) < 3 {
			continue // collinear sample
		}
		for i := range h {
			a, b, c := h[i], h[(i+1)%len(h)], h[(i+2)%len(h)]
			require.Greater(t, geom.Cross(a, b, c), 0.0, "trial=%d: turn at %v not CCW", trial, b)
		}
		for _, p := range in {
			for i := range h {
				a, b := h[i], h[(i+1)%len(h)]
				require.GreaterOrEqual(t, geom.Cross(a, b, p), 0.0, "trial=%d: %v outside edge %v-%v", trial, p, a, b)
			}
		}
	}
}
