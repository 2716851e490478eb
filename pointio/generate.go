package pointio

import (
	"fmt"
	"math"

	"github.com/katalvlaran/planar/geom"
	"github.com/pbnjay/memory"
	"github.com/valyala/fastrand"
)

const (
	// defaultSeed replaces a zero seed; fastrand reseeds a zero state from
	// the runtime, which would make output irreproducible.
	defaultSeed uint32 = 1

	// bytesPerPoint approximates the peak working set of one point through
	// closest.Find: the input, its indexed copy, the sorted copy, merge
	// scratch and a strip.
	bytesPerPoint = 128

	// fallbackMaxGenerate applies when physical memory cannot be detected.
	fallbackMaxGenerate = 1 << 24
)

// MaxGenerate returns the largest n Generate accepts: a quarter of physical
// memory divided by the per-point working set.
func MaxGenerate() int {
	total := memory.TotalMemory()
	if total == 0 {
		return fallbackMaxGenerate
	}
	n := total / 4 / bytesPerPoint
	if n > math.MaxInt32 {
		return math.MaxInt32
	}

	return int(n)
}

// Generate returns n pseudo-random points inside the box described by opts.
// The same opts always yield the same points.
//
// Errors:
//   - ErrBadOptions — n < 0, non-positive or non-finite box.
//   - ErrTooMany    — n > MaxGenerate().
//
// Complexity: O(n).
func Generate(n int, opts GenOptions) ([]geom.Point, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: n=%d", ErrBadOptions, n)
	}
	if !(opts.Width > 0) || !(opts.Height > 0) ||
		math.IsInf(opts.Width, 0) || math.IsInf(opts.Height, 0) ||
		!(geom.Point{X: opts.MinX, Y: opts.MinY}).IsFinite() {
		return nil, fmt.Errorf("%w: box %gx%g at (%g, %g)", ErrBadOptions, opts.Width, opts.Height, opts.MinX, opts.MinY)
	}
	if limit := MaxGenerate(); n > limit {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooMany, n, limit)
	}

	seed := opts.Seed
	if seed == 0 {
		seed = defaultSeed
	}
	var rng fastrand.RNG
	rng.Seed(seed)

	out := make([]geom.Point, n)
	for i := range out {
		x := unit(&rng) * opts.Width
		y := unit(&rng) * opts.Height
		if opts.Integer {
			x, y = math.Floor(x), math.Floor(y)
		}
		out[i] = geom.Point{X: opts.MinX + x, Y: opts.MinY + y}
	}

	return out, nil
}

// unit maps the next 32-bit draw onto [0, 1).
func unit(rng *fastrand.RNG) float64 {
	return float64(rng.Uint32()) / (1 << 32)
}
