// Package msort provides a stable, allocation-bounded top-down merge sort
// over arbitrary elements keyed by a float64, plus helpers for sorting
// planar points by one axis.
//
// 🚀 Why not sort.SliceStable?
//
//	Closest-pair and hull algorithms depend on a *specified* tie-break:
//	equal keys keep their original relative order. msort spells that rule
//	out in its merge step (the left run wins ties) and always returns a new
//	slice, leaving the caller's input untouched.
//
// ✨ Key features:
//   - O(n log n) comparisons, O(n) extra memory (one scratch buffer)
//   - stable: equal-keyed elements keep their input order
//   - idempotent: sorting an already sorted slice yields the same order
//   - generic over the element type (points, indexed points, hull candidates)
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/planar/msort"
//
//	byX := msort.ByAxis(points, geom.AxisX)
//	byAngle := msort.Stable(points, func(p geom.Point) float64 { return angle(p) })
package msort
