package msort

import "github.com/katalvlaran/planar/geom"

// Stable returns a new slice holding the elements of s ordered
// non-decreasingly by key. Elements with equal keys keep their relative
// order from s. s itself is not modified.
//
// Algorithm Outline:
//  1. Copy s into out; allocate a scratch buffer of the same length.
//  2. Split at len/2, sort both halves recursively.
//  3. Merge by repeatedly taking the smaller-keyed front element; on a tie
//     the left element is taken.
//  4. Slices of length ≤ 1 are already sorted.
//
// Keys are computed once per element, so key may be moderately expensive
// (e.g. an atan2 for polar angles).
//
// Complexity: O(n log n) time, O(n) extra space.
func Stable[T any](s []T, key func(T) float64) []T {
	n := len(s)
	out := make([]T, n)
	copy(out, s)
	if n <= 1 {
		return out
	}

	keys := make([]float64, n)
	for i := range out {
		keys[i] = key(out[i])
	}
	mergeSort(out, keys, make([]T, n), make([]float64, n))

	return out
}

// mergeSort sorts s (and its parallel keys) in place using buf/kbuf as scratch.
func mergeSort[T any](s []T, keys []float64, buf []T, kbuf []float64) {
	n := len(s)
	if n <= 1 {
		return
	}
	mid := n / 2
	mergeSort(s[:mid], keys[:mid], buf[:mid], kbuf[:mid])
	mergeSort(s[mid:], keys[mid:], buf[mid:], kbuf[mid:])

	// already in order: the halves concatenate
	if keys[mid-1] <= keys[mid] {
		return
	}

	copy(buf, s)
	copy(kbuf, keys)
	var (
		l, r = 0, mid // front of left and right runs inside buf
		k    int      // write position in s
	)
	for l < mid && r < n {
		if kbuf[l] <= kbuf[r] { // ties: left wins, keeps stability
			s[k], keys[k] = buf[l], kbuf[l]
			l++
		} else {
			s[k], keys[k] = buf[r], kbuf[r]
			r++
		}
		k++
	}
	for ; l < mid; l, k = l+1, k+1 {
		s[k], keys[k] = buf[l], kbuf[l]
	}
	for ; r < n; r, k = r+1, k+1 {
		s[k], keys[k] = buf[r], kbuf[r]
	}
}

// ByAxis returns a new slice of points stably sorted by the selected coordinate.
func ByAxis(points []geom.Point, axis geom.Axis) []geom.Point {
	return Stable(points, func(p geom.Point) float64 { return p.Coord(axis) })
}

// IsSorted reports whether s is non-decreasing by key.
//
// Complexity: O(n).
func IsSorted[T any](s []T, key func(T) float64) bool {
	for i := 1; i < len(s); i++ {
		if key(s[i]) < key(s[i-1]) {
			return false
		}
	}

	return true
}
