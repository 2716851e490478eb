// Package planar is a small toolkit for 2-D point sets, built around the
// classic divide-and-conquer closest pair of points.
//
// 🚀 What is planar?
//
//	A focused, deterministic library that brings together:
//		• geom/     — Point, Pair, Euclidean distance & orientation
//		• msort/    — generic stable merge sort by a float64 key
//		• closest/  — closest pair: brute force and O(n log² n) divide & conquer
//		• hull/     — convex hull by Graham's scan
//		• pointio/  — YAML/JSON point files and seeded random generation
//		• render/   — PNG scatter charts of points, hull and closest pair
//
// ✨ Why choose planar?
//
//   - Deterministic – stable sorts and fixed tie-breaks, same input, same pair
//   - Traceable – every Pair reports the input positions of its two points
//   - Optional parallelism – halves may be solved concurrently, results unchanged
//
// Quick ASCII example:
//
//	y
//	8 ┤ •(2,8)
//	7 ┤   •(3,7)      closest pair: (3,7)–(2,8), d = √2
//	  └──────────── x
//
// The cmd/planar binary wraps the packages in a CLI (pair, hull, render, gen)
// and a REST server (serve).
//
//	go get github.com/katalvlaran/planar
package planar
