package closest

import (
	"fmt"

	"github.com/katalvlaran/planar/geom"
)

// validatePoints enforces n ≥ 2 and finite coordinates.
//
// Complexity: O(n).
func validatePoints(points []geom.Point) error {
	if len(points) < 2 {
		return fmt.Errorf("%w: got %d", ErrInvalidInput, len(points))
	}
	for i, p := range points {
		if !p.IsFinite() {
			return fmt.Errorf("%w: point %d %v is not finite", ErrInvalidInput, i, p)
		}
	}

	return nil
}

// validateOptions rejects unknown strategies and negative knobs.
func validateOptions(opts Options) error {
	if _, ok := strategyNames[opts.Strategy]; !ok {
		return fmt.Errorf("%w: unknown strategy %v", ErrBadOptions, opts.Strategy)
	}
	if opts.StripWindow < 0 {
		return fmt.Errorf("%w: StripWindow=%d", ErrBadOptions, opts.StripWindow)
	}
	if opts.ParallelDepth < 0 || opts.ParallelCutoff < 0 {
		return fmt.Errorf("%w: ParallelDepth=%d ParallelCutoff=%d",
			ErrBadOptions, opts.ParallelDepth, opts.ParallelCutoff)
	}

	return nil
}

// index pairs every point with its input position.
func index(points []geom.Point) []indexed {
	items := make([]indexed, len(points))
	for i, p := range points {
		items[i] = indexed{p: p, idx: i}
	}

	return items
}
