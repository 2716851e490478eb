package closest

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/planar/geom"
)

var (
	// ErrInvalidInput indicates fewer than two points, or a non-finite coordinate.
	ErrInvalidInput = errors.New("closest: at least two finite points are required")

	// ErrBadOptions indicates an unknown strategy or a negative tuning knob.
	ErrBadOptions = errors.New("closest: invalid options")
)

// Strategy selects how Find reaches its answer.
type Strategy int

const (
	// StrategyRecursive is the full divide-and-conquer recursion.
	StrategyRecursive Strategy = iota

	// StrategyBruteForceHalves splits once and solves each half by brute
	// force before the strip merge. Correct, but O(n²).
	StrategyBruteForceHalves

	// StrategyBruteForce compares every pair.
	StrategyBruteForce
)

var strategyNames = map[Strategy]string{
	StrategyRecursive:        "recursive",
	StrategyBruteForceHalves: "bruteforce-halves",
	StrategyBruteForce:       "bruteforce",
}

// String implements fmt.Stringer.
func (s Strategy) String() string {
	if name, ok := strategyNames[s]; ok {
		return name
	}

	return fmt.Sprintf("Strategy(%d)", int(s))
}

// ParseStrategy maps a name produced by Strategy.String back to its value.
// Matching is case-insensitive; "" yields StrategyRecursive.
func ParseStrategy(name string) (Strategy, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return StrategyRecursive, nil
	}
	for s, n := range strategyNames {
		if n == name {
			return s, nil
		}
	}

	return 0, fmt.Errorf("%w: unknown strategy %q", ErrBadOptions, name)
}

const (
	// DefaultStripWindow is the packing bound on strip successors worth checking.
	DefaultStripWindow = 7

	// DefaultParallelDepth bounds how many recursion levels may fork (2^depth goroutines).
	DefaultParallelDepth = 3

	// DefaultParallelCutoff is the smallest sub-problem that is still forked.
	DefaultParallelCutoff = 4096

	// baseCaseSize is the largest input handed straight to brute force.
	baseCaseSize = 3
)

// Options configures Find.
//
// Fields:
//   - Strategy       — recursion target; see Strategy.
//   - StripWindow    — max successors compared per strip point; 0 = no cap.
//     The cap never changes the result.
//   - Parallel       — solve the two halves concurrently near the top of the
//     recursion. Results are identical to the sequential run.
//   - ParallelDepth  — number of recursion levels allowed to fork.
//   - ParallelCutoff — sub-problems smaller than this never fork.
type Options struct {
	Strategy       Strategy
	StripWindow    int
	Parallel       bool
	ParallelDepth  int
	ParallelCutoff int
}

// DefaultOptions returns the sequential recursive configuration with the
// 7-successor strip cap.
func DefaultOptions() Options {
	return Options{
		Strategy:       StrategyRecursive,
		StripWindow:    DefaultStripWindow,
		Parallel:       false,
		ParallelDepth:  DefaultParallelDepth,
		ParallelCutoff: DefaultParallelCutoff,
	}
}

// indexed ties a point to its position in the caller's input.
type indexed struct {
	p   geom.Point
	idx int
}

func byX(e indexed) float64 { return e.p.X }
func byY(e indexed) float64 { return e.p.Y }

// pairOf builds the result for two distinct indexed points.
func pairOf(a, b indexed, d float64) geom.Pair {
	return geom.Pair{A: a.p, B: b.p, I: a.idx, J: b.idx, Distance: d}
}
