package percolation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/percolation/unionfind"
)

// Sentinel errors for percolation operations.
var (
	// ErrInvalidArgument indicates a non-positive grid size or an unknown strategy.
	ErrInvalidArgument = errors.New("percolation: invalid argument")

	// ErrIndexOutOfRange indicates a (row, col) pair outside [0, n).
	ErrIndexOutOfRange = errors.New("percolation: index out of range")

	// ErrMalformedInput indicates a site listing that cannot be parsed.
	ErrMalformedInput = errors.New("percolation: malformed input")
)

// Strategy selects how fullness and percolation are resolved.
type Strategy int

const (
	// StrategyVirtual uses virtual top/bottom nodes plus a top-only set for IsFull.
	StrategyVirtual Strategy = iota
	// StrategyScan uses no virtual nodes and scans the boundary rows.
	StrategyScan
)

// String returns the lower-case name used by ParseStrategy.
func (s Strategy) String() string {
	switch s {
	case StrategyVirtual:
		return "virtual"
	case StrategyScan:
		return "scan"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy maps "virtual" or "scan" (case-insensitive) to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "virtual", "":
		return StrategyVirtual, nil
	case "scan":
		return StrategyScan, nil
	default:
		return 0, fmt.Errorf("%w: unknown strategy %q", ErrInvalidArgument, name)
	}
}

// Options configures a Grid. Use DefaultOptions for the default setup.
type Options struct {
	// Strategy picks the fullness/percolation resolution scheme.
	Strategy Strategy
}

// Option mutates Options.
type Option func(*Options)

// WithStrategy returns an Option that selects s.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		o.Strategy = s
	}
}

// DefaultOptions returns Options with Strategy = StrategyVirtual.
func DefaultOptions() Options {
	return Options{Strategy: StrategyVirtual}
}

// Grid is an n×n percolation lattice. The zero value is not usable; build one
// with New. A Grid is not safe for concurrent use.
//
// With StrategyVirtual, full holds n²+2 elements (virtual top at n², virtual
// bottom at n²+1) and top holds n²+1 elements (virtual top at n²).
// With StrategyScan, full holds n² elements and top is nil.
type Grid struct {
	n         int
	open      []bool
	openCount int
	strategy  Strategy

	full *unionfind.DisjointSet
	top  *unionfind.DisjointSet

	virtualTop, virtualBottom int
	neighborOffsets           [4][2]int
}
