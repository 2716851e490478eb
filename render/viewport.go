package render

import (
	"fmt"
	"math"

	"github.com/katalvlaran/planar/geom"
)

// Viewport maps plane coordinates onto canvas pixels, preserving aspect
// ratio and flipping Y so that up is up.
type Viewport struct {
	minX, minY float64
	scale      float64
	offX, offY float64
	height     float64
}

// NewViewport fits points into the padded canvas described by opts.
// A degenerate extent (single point, vertical or horizontal line) is centred.
// An extent that overflows float64 yields ErrNonFinite.
func NewViewport(points []geom.Point, opts Options) (Viewport, error) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range points {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	w := float64(opts.Width - 2*opts.Padding)
	h := float64(opts.Height - 2*opts.Padding)
	spanX, spanY := maxX-minX, maxY-minY

	scale := 1.0
	switch {
	case spanX > 0 && spanY > 0:
		scale = math.Min(w/spanX, h/spanY)
	case spanX > 0:
		scale = w / spanX
	case spanY > 0:
		scale = h / spanY
	}

	vp := Viewport{
		minX:   minX,
		minY:   minY,
		scale:  scale,
		offX:   float64(opts.Padding) + (w-spanX*scale)/2,
		offY:   float64(opts.Padding) + (h-spanY*scale)/2,
		height: float64(opts.Height),
	}
	if !finite(minX, minY, spanX, spanY, vp.scale, vp.offX, vp.offY) || !(vp.scale > 0) {
		return Viewport{}, fmt.Errorf("%w: extent %g x %g", ErrNonFinite, spanX, spanY)
	}

	return vp, nil
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}

// ToPixel returns the canvas position of p.
func (v Viewport) ToPixel(p geom.Point) (x, y float64) {
	x = v.offX + (p.X-v.minX)*v.scale
	y = v.height - (v.offY + (p.Y-v.minY)*v.scale)

	return x, y
}
