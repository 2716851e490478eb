package pointio

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/planar/geom"
	"gopkg.in/yaml.v3"
)

// wirePoint accepts {x, y} mappings and [x, y] sequences.
type wirePoint geom.Point

// UnmarshalYAML implements yaml.Unmarshaler.
func (w *wirePoint) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.SequenceNode:
		var xy []float64
		if err := node.Decode(&xy); err != nil {
			return err
		}
		if len(xy) != 2 {
			return fmt.Errorf("%w: line %d: point must have exactly two coordinates", ErrMalformed, node.Line)
		}
		*w = wirePoint{X: xy[0], Y: xy[1]}

		return nil
	case yaml.MappingNode:
		var obj struct {
			X *float64 `yaml:"x"`
			Y *float64 `yaml:"y"`
		}
		if err := node.Decode(&obj); err != nil {
			return err
		}
		if obj.X == nil || obj.Y == nil {
			return fmt.Errorf("%w: line %d: point needs both x and y", ErrMalformed, node.Line)
		}
		*w = wirePoint{X: *obj.X, Y: *obj.Y}

		return nil
	default:
		return fmt.Errorf("%w: line %d: point must be a mapping or a pair", ErrMalformed, node.Line)
	}
}

// Parse decodes a YAML or JSON point set.
//
// Errors:
//   - ErrMalformed — syntax errors, wrong shapes, missing or non-finite
//     coordinates (.nan, .inf).
func Parse(data []byte) ([]geom.Point, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return []geom.Point{}, nil
	}

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	doc := &root
	if doc.Kind == yaml.DocumentNode && len(doc.Content) == 1 {
		doc = doc.Content[0]
	}

	var (
		wire []wirePoint
		err  error
	)
	switch doc.Kind {
	case yaml.SequenceNode:
		err = doc.Decode(&wire)
	case yaml.MappingNode:
		var d struct {
			Points []wirePoint `yaml:"points"`
		}
		err = doc.Decode(&d)
		wire = d.Points
	case yaml.ScalarNode:
		if doc.Tag == "!!null" {
			return []geom.Point{}, nil
		}
		fallthrough
	default:
		return nil, fmt.Errorf("%w: expected a list or a mapping with \"points\"", ErrMalformed)
	}
	if err != nil {
		if errors.Is(err, ErrMalformed) {
			return nil, err
		}

		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	out := make([]geom.Point, len(wire))
	for i, w := range wire {
		out[i] = geom.Point(w)
		if !out[i].IsFinite() {
			return nil, fmt.Errorf("%w: point %d %v is not finite", ErrMalformed, i, out[i])
		}
	}

	return out, nil
}

// Read decodes a point set from r.
func Read(r io.Reader) ([]geom.Point, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	return Parse(data)
}

// ReadFile decodes the point set stored at path.
func ReadFile(path string) ([]geom.Point, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	points, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return points, nil
}

// Write encodes points as a YAML Document.
func Write(w io.Writer, points []geom.Point) error {
	if points == nil {
		points = []geom.Point{}
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(Document{Points: points}); err != nil {
		return err
	}

	return enc.Close()
}

// WriteFile encodes points to path, replacing any existing file.
func WriteFile(path string, points []geom.Point) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = Write(f, points); err != nil {
		_ = f.Close()

		return err
	}

	return f.Close()
}
