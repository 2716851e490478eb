package closest

import "github.com/katalvlaran/planar/geom"

// searchStrip scans a y-sorted strip for a pair strictly closer than
// best.Distance and returns the improved pair, or best unchanged.
//
// For every a, successors b are visited while y[b] − y[a] < δ, where δ is
// re-read after each improvement, so the scan tightens as it goes. A
// positive window additionally stops after that many successors; the
// packing bound guarantees nothing closer than δ lies beyond seven.
//
// Complexity: O(k·w) for k strip points and window w (O(k²) worst case uncapped
// on coincident strips, which collapse δ to 0 immediately).
func searchStrip(strip []indexed, best geom.Pair, window int) geom.Pair {
	n := len(strip)
	for a := 0; a < n; a++ {
		for b := a + 1; b < n && strip[b].p.Y-strip[a].p.Y < best.Distance; b++ {
			if window > 0 && b-a > window {
				break
			}
			if d := geom.Distance(strip[a].p, strip[b].p); d < best.Distance {
				best = pairOf(strip[a], strip[b], d)
			}
		}
	}

	return best
}
