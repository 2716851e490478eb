package closest

import "github.com/katalvlaran/planar/geom"

// BruteForce returns the closest pair by comparing every unordered pair
// (i < j) exactly once.
//
// Tie-break: a pair replaces the current best only when strictly closer, so
// the first minimal pair in lexicographic (i, j) order is returned.
//
// Errors:
//   - ErrInvalidInput — fewer than two points or a non-finite coordinate.
//
// Complexity: O(n²) time, O(n) space.
func BruteForce(points []geom.Point) (geom.Pair, error) {
	if err := validatePoints(points); err != nil {
		return geom.Pair{}, err
	}

	return bruteForce(index(points)), nil
}

// bruteForce assumes len(items) ≥ 2.
func bruteForce(items []indexed) geom.Pair {
	best := pairOf(items[0], items[1], geom.Distance(items[0].p, items[1].p))
	n := len(items)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if d := geom.Distance(items[i].p, items[j].p); d < best.Distance {
				best = pairOf(items[i], items[j], d)
			}
		}
	}

	return best
}
