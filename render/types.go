package render

import (
	"errors"

	"github.com/katalvlaran/planar/geom"
	"github.com/lucasb-eyer/go-colorful"
)

var (
	// ErrEmptyScene indicates a scene without input points.
	ErrEmptyScene = errors.New("render: scene has no points")

	// ErrBadOptions indicates a canvas too small for its padding or a bad radius.
	ErrBadOptions = errors.New("render: invalid options")

	// ErrNonFinite indicates a NaN or infinite coordinate, or an extent too
	// wide to map onto the canvas in float64.
	ErrNonFinite = errors.New("render: non-finite coordinates")
)

// Scene is everything one chart shows. Hull and Pair are optional.
type Scene struct {
	Points []geom.Point
	Hull   []geom.Point
	Pair   *geom.Pair
	Title  string
}

// Options sizes the canvas.
type Options struct {
	Width, Height int     // canvas size in pixels
	Padding       int     // margin around the plotted area
	PointRadius   float64 // dot radius in pixels
	Legend        bool    // draw the series legend
}

// DefaultOptions returns an 800×600 canvas with a legend.
func DefaultOptions() Options {
	return Options{Width: 800, Height: 600, Padding: 40, PointRadius: 3, Legend: true}
}

// Palette colours for each series.
var (
	Background = colorful.Color{R: 1, G: 1, B: 1}
	Frame      = colorful.Hcl(0, 0, 0.85).Clamped()
	PointColor = colorful.Hcl(255, 0.55, 0.55).Clamped() // blue
	HullColor  = colorful.Hcl(20, 0.65, 0.55).Clamped()  // red
	PairColor  = colorful.Hcl(140, 0.70, 0.60).Clamped() // green
	TextColor  = colorful.Hcl(0, 0, 0.2).Clamped()
)
