package geom

import "gonum.org/v1/gonum/spatial/r2"

// Distance returns the Euclidean distance between a and b,
// sqrt((a.X−b.X)² + (a.Y−b.Y)²).
//
// Complexity: O(1).
func Distance(a, b Point) float64 {
	return r2.Norm(r2.Sub(a.Vec(), b.Vec()))
}

// Cross returns the z component of (a−o) × (b−o).
//
//   - > 0 — o→a→b turns counter-clockwise
//   - < 0 — clockwise
//   - = 0 — collinear
func Cross(o, a, b Point) float64 {
	return r2.Cross(r2.Sub(a.Vec(), o.Vec()), r2.Sub(b.Vec(), o.Vec()))
}
