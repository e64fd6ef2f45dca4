package montecarlo

import (
	"errors"

	"github.com/katalvlaran/percolation/percolation"
)

// Sentinel errors for estimator construction and queries.
var (
	// ErrInvalidArgument indicates non-positive n, trials or workers, or an
	// out-of-range confidence level.
	ErrInvalidArgument = errors.New("montecarlo: invalid argument")

	// ErrSourceRange indicates an injected Source returned a value outside [0, n).
	ErrSourceRange = errors.New("montecarlo: source returned value out of range")
)

// Confidence95 is the two-sided 95% standard normal critical value used by
// ConfidenceLo and ConfidenceHi.
const Confidence95 = 1.96

// Source yields uniform integers in [0, n) for n > 0.
// *math/rand/v2.Rand satisfies it.
type Source interface {
	IntN(n int) int
}

// Options configures an Estimator run. Use DefaultOptions for defaults.
type Options struct {
	// Source, if non-nil, is shared by all trials; trials then run sequentially.
	Source Source

	// Seed derives one PCG stream per trial when Source is nil.
	// Zero means a fresh seed is drawn from crypto/rand.
	Seed int64

	// Workers bounds the number of concurrently running trials.
	Workers int

	// Strategy selects the percolation.Grid resolution scheme.
	Strategy percolation.Strategy
}

// Option mutates Options.
type Option func(*Options)

// WithSource injects a shared random source.
func WithSource(src Source) Option {
	return func(o *Options) {
		o.Source = src
	}
}

// WithSeed fixes the seed for per-trial streams.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithWorkers sets the number of concurrent trial workers.
func WithWorkers(k int) Option {
	return func(o *Options) {
		o.Workers = k
	}
}

// WithStrategy forwards s to every percolation.Grid built by the estimator.
func WithStrategy(s percolation.Strategy) Option {
	return func(o *Options) {
		o.Strategy = s
	}
}

// DefaultOptions returns Options with one worker, a random seed and
// percolation.StrategyVirtual.
func DefaultOptions() Options {
	return Options{
		Workers:  1,
		Strategy: percolation.StrategyVirtual,
	}
}

// Summary bundles the aggregate statistics of an Estimator.
type Summary struct {
	N, Trials    int
	Mean, StdDev float64
	Min, Max     float64
	Median       float64
	Lo, Hi       float64 // 95% confidence bounds
}

// Estimator holds the per-trial thresholds of a completed simulation. It is
// immutable after New returns and safe for concurrent reads.
type Estimator struct {
	n          int
	thresholds []float64

	seed   int64
	seeded bool

	mean, stddev float64
}
