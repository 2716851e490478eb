// Package hull computes the convex hull of a planar point set with
// Graham's scan.
//
// Algorithm Outline:
//  1. Pivot p0 = lowest point (smallest Y, then smallest X).
//  2. Order the remaining points by polar angle around p0. Both passes use
//     msort.Stable: first by distance from p0, then by angle, so collinear
//     points with the same angle stay ordered nearest-first.
//  3. Walk the ordered points with a stack, popping while the last two
//     stacked points and the candidate do not make a counter-clockwise turn.
//
// The result is counter-clockwise, starts at p0, and contains only strict
// corners: duplicates and points on a hull edge are dropped.
//
// Complexity: O(n log n) time, O(n) space.
package hull
