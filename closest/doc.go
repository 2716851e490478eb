// Package closest finds the pair of points with the minimum Euclidean
// distance in a finite planar point set.
//
// 🚀 What is the closest pair problem?
//
//	Given n points in the plane, report the two (distinct input elements)
//	whose distance is smallest. It shows up in:
//	  • collision detection and proximity alerts
//	  • clustering seeds and duplicate detection
//	  • spatial statistics (nearest-neighbour distance)
//
// ✨ Algorithms:
//   - BruteForce          — every unordered pair once, O(n²); the oracle and
//     the base case.
//   - DivideAndConquer    — sort by x once, split at n/2, solve both halves,
//     then reconcile the boundary "strip" sorted by y, O(n log² n) with a
//     stable merge sort per strip.
//   - StrategyBruteForceHalves — the simplified variant: one split, each half
//     solved by brute force, one strip merge. Same results, O(n²).
//
// 🔍 The strip:
//
//	After both halves report their best distance δ, only points whose x lies
//	strictly within δ of the dividing point can form a closer cross pair.
//	Sorted by y, each point needs to be compared only with successors whose
//	y differs by less than δ, at most seven of them (packing bound), which
//	Options.StripWindow encodes as an optional cap.
//
// Determinism:
//   - BruteForce keeps the first minimal pair in (i, j) index order.
//   - On equal half results the left half wins.
//   - All sorting is stable, so duplicate coordinates resolve the same way
//     on every run; Pair.I and Pair.J name the exact input elements.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/planar/closest"
//
//	pair, err := closest.DivideAndConquer(points)
//	if errors.Is(err, closest.ErrInvalidInput) {
//	  // fewer than two points, or a NaN/Inf coordinate
//	}
//	fmt.Println(pair.A, pair.B, pair.Distance)
//
//	opts := closest.DefaultOptions()
//	opts.Parallel = true // fork the two halves near the top of the recursion
//	pair, err = closest.Find(points, opts)
package closest
