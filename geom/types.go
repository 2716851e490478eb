package geom

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Point is a location in the plane. Two points with equal coordinates are
// equal values; callers that need identity track input positions instead.
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Axis selects one coordinate of a Point.
type Axis int

const (
	// AxisX selects Point.X.
	AxisX Axis = iota
	// AxisY selects Point.Y.
	AxisY
)

// String implements fmt.Stringer.
func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// Coord returns the coordinate of p selected by a.
// Any value other than AxisY selects X.
func (p Point) Coord(a Axis) float64 {
	if a == AxisY {
		return p.Y
	}

	return p.X
}

// Vec converts p into a gonum r2 vector.
func (p Point) Vec() r2.Vec {
	return r2.Vec{X: p.X, Y: p.Y}
}

// IsFinite reports whether both coordinates are neither NaN nor ±Inf.
func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) &&
		!math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// String implements fmt.Stringer, e.g. "(3, 34)".
func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Pair is the outcome of a closest-pair search.
//
// Fields:
//   - A, B     — the two points, in the order the finder met them.
//   - I, J     — positions of A and B in the caller's input slice; I != J.
//   - Distance — Euclidean distance between A and B (0 for duplicates).
type Pair struct {
	A        Point   `json:"a"`
	B        Point   `json:"b"`
	I        int     `json:"i"`
	J        int     `json:"j"`
	Distance float64 `json:"distance"`
}

// String implements fmt.Stringer.
func (p Pair) String() string {
	return fmt.Sprintf("%v[%d] — %v[%d]: %g", p.A, p.I, p.B, p.J, p.Distance)
}
