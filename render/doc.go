// Package render draws point sets, their convex hull and the closest pair
// into a raster scatter chart.
//
// Layers, bottom to top:
//  1. white background and a light frame
//  2. the hull polygon, outlined
//  3. every input point as a dot
//  4. the closest pair, joined by a segment and ringed
//  5. an optional title and a legend
//
// Drawing uses fogleman/gg; the palette is built in HCL space with
// go-colorful so the three series stay distinguishable.
//
// ⚙️ Usage:
//
//	scene := render.Scene{Points: pts, Hull: h, Pair: &pair, Title: "beacons"}
//	err := render.SavePNG("out.png", scene, render.DefaultOptions())
package render
