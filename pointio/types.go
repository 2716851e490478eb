package pointio

import (
	"errors"

	"github.com/katalvlaran/planar/geom"
)

var (
	// ErrMalformed indicates the document is not a valid point set.
	ErrMalformed = errors.New("pointio: malformed point set")

	// ErrTooMany indicates a requested point count above MaxGenerate.
	ErrTooMany = errors.New("pointio: too many points for available memory")

	// ErrBadOptions indicates invalid generation options.
	ErrBadOptions = errors.New("pointio: invalid options")
)

// Document is the on-disk shape of a point set.
type Document struct {
	Points []geom.Point `json:"points" yaml:"points"`
}

// GenOptions configures Generate.
//
// Fields:
//   - Seed          — stream seed; 0 selects a fixed default, so output is
//     always reproducible.
//   - MinX, MinY    — lower-left corner of the sampling box.
//   - Width, Height — box size; both must be > 0.
//   - Integer       — floor coordinates to whole numbers, which produces
//     shared coordinates and duplicates on dense sets.
type GenOptions struct {
	Seed          uint32
	MinX, MinY    float64
	Width, Height float64
	Integer       bool
}

// DefaultGenOptions samples the box [0,100)×[0,100) with the default seed.
func DefaultGenOptions() GenOptions {
	return GenOptions{Seed: defaultSeed, Width: 100, Height: 100}
}
