package geom_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/planar/geom"
	"github.com/stretchr/testify/assert"
)

// TestDistance_KnownTriangles checks a few exact Pythagorean distances.
func TestDistance_KnownTriangles(t *testing.T) {
	cases := []struct {
		a, b geom.Point
		want float64
	}{
		{geom.Point{X: 0, Y: 0}, geom.Point{X: 3, Y: 4}, 5},
		{geom.Point{X: -1, Y: -1}, geom.Point{X: 5, Y: 7}, 10},
		{geom.Point{X: 2, Y: 2}, geom.Point{X: 2, Y: 2}, 0},
	}
	for _, tc := range cases {
		assert.InDelta(t, tc.want, geom.Distance(tc.a, tc.b), 1e-12, "%v-%v", tc.a, tc.b)
	}
}

// TestDistance_Symmetric verifies d(a,b) == d(b,a).
func TestDistance_Symmetric(t *testing.T) {
	a := geom.Point{X: 13, Y: 6}
	b := geom.Point{X: 3, Y: 2}
	assert.Equal(t, geom.Distance(a, b), geom.Distance(b, a))
	assert.InDelta(t, math.Sqrt(116), geom.Distance(a, b), 1e-12)
}

// TestCross_Orientation covers all three turn directions.
func TestCross_Orientation(t *testing.T) {
	o := geom.Point{X: 0, Y: 0}
	a := geom.Point{X: 1, Y: 0}

	assert.Greater(t, geom.Cross(o, a, geom.Point{X: 1, Y: 1}), 0.0, "left turn")
	assert.Less(t, geom.Cross(o, a, geom.Point{X: 1, Y: -1}), 0.0, "right turn")
	assert.Equal(t, 0.0, geom.Cross(o, a, geom.Point{X: 2, Y: 0}), "collinear")
}

// TestPoint_CoordAndFinite covers axis selection and finiteness.
func TestPoint_CoordAndFinite(t *testing.T) {
	p := geom.Point{X: 4, Y: 70}
	assert.Equal(t, 4.0, p.Coord(geom.AxisX))
	assert.Equal(t, 70.0, p.Coord(geom.AxisY))
	assert.Equal(t, "x", geom.AxisX.String())
	assert.Equal(t, "y", geom.AxisY.String())

	assert.True(t, p.IsFinite())
	assert.False(t, geom.Point{X: math.NaN(), Y: 0}.IsFinite())
	assert.False(t, geom.Point{X: 0, Y: math.Inf(-1)}.IsFinite())
}
