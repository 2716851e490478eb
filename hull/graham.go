package hull

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/planar/geom"
	"github.com/katalvlaran/planar/msort"
)

var (
	// ErrNoPoints indicates an empty input.
	ErrNoPoints = errors.New("hull: at least one point is required")

	// ErrInvalidInput indicates a NaN or infinite coordinate.
	ErrInvalidInput = errors.New("hull: non-finite coordinate")
)

// GrahamScan returns the convex hull of points in counter-clockwise order,
// starting from the lowest point. points is not modified.
//
// Degenerate inputs:
//   - all points equal     → a single point
//   - all points collinear → the two extreme points
//
// Errors:
//   - ErrNoPoints     — len(points) == 0.
//   - ErrInvalidInput — a point has a NaN or infinite coordinate.
func GrahamScan(points []geom.Point) ([]geom.Point, error) {
	if len(points) == 0 {
		return nil, ErrNoPoints
	}
	for i, p := range points {
		if !p.IsFinite() {
			return nil, fmt.Errorf("%w: point %d %v", ErrInvalidInput, i, p)
		}
	}

	p0 := lowest(points)
	rest := make([]geom.Point, 0, len(points)-1)
	for _, p := range points {
		if p != p0 {
			rest = append(rest, p)
		}
	}
	if len(rest) == 0 {
		return []geom.Point{p0}, nil
	}

	rest = msort.Stable(rest, func(p geom.Point) float64 { return geom.Distance(p0, p) })
	rest = msort.Stable(rest, func(p geom.Point) float64 { return polarAngle(p0, p) })

	stack := make([]geom.Point, 0, len(rest)+1)
	stack = append(stack, p0)
	for _, p := range rest {
		for len(stack) > 1 && geom.Cross(stack[len(stack)-2], stack[len(stack)-1], p) <= 0 {
			stack = stack[:len(stack)-1]
		}
		stack = append(stack, p)
	}

	return stack, nil
}

// lowest returns the point with the smallest Y, breaking ties by smallest X.
func lowest(points []geom.Point) geom.Point {
	best := points[0]
	for _, p := range points[1:] {
		if p.Y < best.Y || (p.Y == best.Y && p.X < best.X) {
			best = p
		}
	}

	return best
}

// polarAngle is the angle of p around origin in [0, π] for points at or
// above origin's row.
func polarAngle(origin, p geom.Point) float64 {
	return math.Atan2(p.Y-origin.Y, p.X-origin.X)
}
