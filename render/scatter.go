package render

import (
	"fmt"
	"image"
	"io"
	"math"

	"github.com/fogleman/gg"
	"github.com/katalvlaran/planar/geom"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/font/basicfont"
)

// Scatter draws scene onto a fresh canvas.
//
// Errors:
//   - ErrEmptyScene — scene.Points is empty.
//   - ErrBadOptions — the padded plot area is empty, or PointRadius is not
//     positive and finite.
//   - ErrNonFinite  — a NaN/Inf coordinate, or an extent that overflows.
func Scatter(scene Scene, opts Options) (image.Image, error) {
	dc, err := draw(scene, opts)
	if err != nil {
		return nil, err
	}

	return dc.Image(), nil
}

// EncodePNG draws scene and writes it to w as PNG.
func EncodePNG(w io.Writer, scene Scene, opts Options) error {
	dc, err := draw(scene, opts)
	if err != nil {
		return err
	}

	return dc.EncodePNG(w)
}

// SavePNG draws scene and stores it at path as PNG.
func SavePNG(path string, scene Scene, opts Options) error {
	dc, err := draw(scene, opts)
	if err != nil {
		return err
	}

	return dc.SavePNG(path)
}

func validate(scene Scene, opts Options) error {
	if len(scene.Points) == 0 {
		return ErrEmptyScene
	}
	if opts.Width-2*opts.Padding <= 0 || opts.Height-2*opts.Padding <= 0 || opts.Padding < 0 {
		return fmt.Errorf("%w: %dx%d canvas with padding %d", ErrBadOptions, opts.Width, opts.Height, opts.Padding)
	}
	if !(opts.PointRadius > 0) || math.IsInf(opts.PointRadius, 1) {
		return fmt.Errorf("%w: PointRadius=%g", ErrBadOptions, opts.PointRadius)
	}
	for _, set := range [][]geom.Point{scene.Points, scene.Hull} {
		for _, p := range set {
			if !p.IsFinite() {
				return fmt.Errorf("%w: point %v", ErrNonFinite, p)
			}
		}
	}
	if pr := scene.Pair; pr != nil && !(pr.A.IsFinite() && pr.B.IsFinite()) {
		return fmt.Errorf("%w: pair %v", ErrNonFinite, *pr)
	}

	return nil
}

// extent collects every position the chart plots, so nothing maps off-canvas.
func extent(scene Scene) []geom.Point {
	if len(scene.Hull) == 0 && scene.Pair == nil {
		return scene.Points
	}
	all := make([]geom.Point, 0, len(scene.Points)+len(scene.Hull)+2)
	all = append(all, scene.Points...)
	all = append(all, scene.Hull...)
	if scene.Pair != nil {
		all = append(all, scene.Pair.A, scene.Pair.B)
	}

	return all
}

func draw(scene Scene, opts Options) (*gg.Context, error) {
	if err := validate(scene, opts); err != nil {
		return nil, err
	}
	vp, err := NewViewport(extent(scene), opts)
	if err != nil {
		return nil, err
	}

	dc := gg.NewContext(opts.Width, opts.Height)
	dc.SetColor(Background)
	dc.Clear()

	pad := float64(opts.Padding)
	dc.SetColor(Frame)
	dc.SetLineWidth(1)
	dc.DrawRectangle(pad/2, pad/2, float64(opts.Width)-pad, float64(opts.Height)-pad)
	dc.Stroke()

	if len(scene.Hull) > 1 {
		for i, p := range scene.Hull {
			x, y := vp.ToPixel(p)
			if i == 0 {
				dc.MoveTo(x, y)
			} else {
				dc.LineTo(x, y)
			}
		}
		dc.ClosePath()
		dc.SetColor(HullColor)
		dc.SetLineWidth(2)
		dc.Stroke()
	}

	dc.SetColor(PointColor)
	for _, p := range scene.Points {
		x, y := vp.ToPixel(p)
		dc.DrawCircle(x, y, opts.PointRadius)
		dc.Fill()
	}
	for _, p := range scene.Hull {
		x, y := vp.ToPixel(p)
		dc.DrawCircle(x, y, opts.PointRadius)
	}
	dc.SetColor(HullColor)
	dc.Fill()

	if scene.Pair != nil {
		drawPair(dc, vp, *scene.Pair, opts.PointRadius)
	}

	dc.SetFontFace(basicfont.Face7x13)
	dc.SetColor(TextColor)
	if scene.Title != "" {
		dc.DrawStringAnchored(scene.Title, float64(opts.Width)/2, pad/2+13, 0.5, 0)
	}
	if opts.Legend {
		drawLegend(dc, scene, opts)
	}

	return dc, nil
}

func drawPair(dc *gg.Context, vp Viewport, pair geom.Pair, r float64) {
	ax, ay := vp.ToPixel(pair.A)
	bx, by := vp.ToPixel(pair.B)
	dc.SetColor(PairColor)
	dc.SetLineWidth(2)
	dc.DrawLine(ax, ay, bx, by)
	dc.Stroke()
	dc.DrawCircle(ax, ay, r*2.5)
	dc.DrawCircle(bx, by, r*2.5)
	dc.Stroke()
	dc.DrawCircle(ax, ay, r)
	dc.DrawCircle(bx, by, r)
	dc.Fill()
}

// drawLegend lists the series present in the scene in the top-left margin.
func drawLegend(dc *gg.Context, scene Scene, opts Options) {
	type entry struct {
		label string
		color colorful.Color
	}
	entries := []entry{{label: fmt.Sprintf("points (%d)", len(scene.Points)), color: PointColor}}
	if len(scene.Hull) > 0 {
		entries = append(entries, entry{label: fmt.Sprintf("hull (%d)", len(scene.Hull)), color: HullColor})
	}
	if scene.Pair != nil {
		entries = append(entries, entry{label: fmt.Sprintf("closest pair d=%.4g", scene.Pair.Distance), color: PairColor})
	}

	x := float64(opts.Padding)
	y := float64(opts.Padding) + 8
	for _, e := range entries {
		dc.SetColor(e.color)
		dc.DrawCircle(x, y-4, opts.PointRadius)
		dc.Fill()
		dc.SetColor(TextColor)
		dc.DrawString(e.label, x+2*opts.PointRadius+4, y)
		y += 16
	}
}
