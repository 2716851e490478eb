// Package pointio reads, writes and generates planar point sets.
//
// File format (YAML 1.2 or JSON, decoded with gopkg.in/yaml.v3):
//
//	points:
//	  - {x: 4, y: 70}
//	  - [2, 8]        # a two-element list is accepted too
//
// A bare top-level list of points is also accepted. Write always emits the
// mapping form with {x, y} objects.
//
// Generate draws reproducible random point sets from a seeded fastrand
// stream; the largest set it will allocate is bounded by physical memory.
package pointio
