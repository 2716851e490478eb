// Package geom defines the planar primitives shared by every planar package:
// the Point value type, coordinate axes, the Euclidean distance and the Pair
// result returned by closest-pair finders.
//
// 🚀 What lives here?
//
//	Point  — an immutable (X, Y) value with no identity beyond its coordinates.
//	Axis   — selects the X or Y coordinate (used as a sort key).
//	Pair   — two distinct input elements and the distance between them.
//
// ✨ Key features:
//   - pure functions, no allocations, no shared state
//   - distances and orientation computed with gonum's spatial/r2 vectors
//   - Pair remembers input positions (I, J), so duplicate coordinates stay
//     distinguishable
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/planar/geom"
//
//	a := geom.Point{X: 0, Y: 0}
//	b := geom.Point{X: 3, Y: 4}
//	d := geom.Distance(a, b) // 5
package geom
