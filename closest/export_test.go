package closest

import "github.com/katalvlaran/planar/geom"

// BaseCaseSize exposes the brute-force threshold to tests.
const BaseCaseSize = baseCaseSize

// SearchStrip runs the strip search over points already sorted by y.
// Strip positions stand in for input indices.
func SearchStrip(strip []geom.Point, best geom.Pair, window int) geom.Pair {
	return searchStrip(index(strip), best, window)
}
