package closest

import (
	"github.com/katalvlaran/planar/geom"
	"github.com/katalvlaran/planar/msort"
)

// DivideAndConquer returns the closest pair using the recursive
// divide-and-conquer strategy with DefaultOptions.
//
// Algorithm Outline:
//  1. n ≤ 3: brute force on the input as given.
//  2. Stable-sort by x once.
//  3. Split at n/2; solve each half recursively.
//  4. δ = the smaller half result (left wins ties).
//  5. Strip = points with |x − x[n/2]| < δ, stable-sorted by y.
//  6. Strip search may improve on δ; its answer is the result.
//
// Errors:
//   - ErrInvalidInput — fewer than two points or a non-finite coordinate.
//
// Complexity: O(n log² n) time, O(n) extra space per recursion level.
func DivideAndConquer(points []geom.Point) (geom.Pair, error) {
	return Find(points, DefaultOptions())
}

// Find computes the closest pair of points according to opts.
//
// Errors:
//   - ErrBadOptions   — opts fails validation.
//   - ErrInvalidInput — fewer than two points or a non-finite coordinate.
func Find(points []geom.Point, opts Options) (geom.Pair, error) {
	if err := validateOptions(opts); err != nil {
		return geom.Pair{}, err
	}
	if err := validatePoints(points); err != nil {
		return geom.Pair{}, err
	}

	items := index(points)
	if opts.Strategy == StrategyBruteForce || len(items) <= baseCaseSize {
		return bruteForce(items), nil
	}

	s := &solver{opts: opts}
	sorted := msort.Stable(items, byX)
	if opts.Strategy == StrategyBruteForceHalves {
		return s.halves(sorted), nil
	}

	return s.recurse(sorted, 0), nil
}

// solver carries the immutable options through the recursion.
type solver struct {
	opts Options
}

// recurse solves an x-sorted sub-slice. Sub-slices share the sorted backing
// array read-only; nothing is written after the initial sort.
func (s *solver) recurse(sorted []indexed, depth int) geom.Pair {
	n := len(sorted)
	if n <= baseCaseSize {
		return bruteForce(sorted)
	}
	mid := n / 2
	left, right := sorted[:mid], sorted[mid:]

	var lp, rp geom.Pair
	if s.fork(depth, n) {
		done := make(chan geom.Pair, 1)
		go func() { done <- s.recurse(right, depth+1) }()
		lp = s.recurse(left, depth+1)
		rp = <-done
	} else {
		lp = s.recurse(left, depth+1)
		rp = s.recurse(right, depth+1)
	}

	return s.merge(sorted, mid, better(lp, rp))
}

// halves solves each half by brute force and merges once.
func (s *solver) halves(sorted []indexed) geom.Pair {
	mid := len(sorted) / 2
	best := better(bruteForce(sorted[:mid]), bruteForce(sorted[mid:]))

	return s.merge(sorted, mid, best)
}

// merge builds the strip around sorted[mid] and searches it.
func (s *solver) merge(sorted []indexed, mid int, best geom.Pair) geom.Pair {
	pivot := sorted[mid].p.X
	strip := make([]indexed, 0, len(sorted))
	for _, e := range sorted {
		if abs(e.p.X-pivot) < best.Distance {
			strip = append(strip, e)
		}
	}
	if len(strip) < 2 {
		return best
	}

	return searchStrip(msort.Stable(strip, byY), best, s.opts.StripWindow)
}

// fork reports whether this level may solve its halves concurrently.
func (s *solver) fork(depth, n int) bool {
	return s.opts.Parallel && depth < s.opts.ParallelDepth && n >= s.opts.ParallelCutoff
}

// better returns l unless r is strictly closer.
func better(l, r geom.Pair) geom.Pair {
	if r.Distance < l.Distance {
		return r
	}

	return l
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}

	return x
}
