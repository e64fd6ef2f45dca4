package montecarlo

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/montanaflynn/stats"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/percolation/internal/random"
	"github.com/katalvlaran/percolation/percolation"
)

// New runs trials independent percolation experiments on an n×n grid and
// returns the resulting Estimator.
//
// Error Conditions:
//   - ErrInvalidArgument: n ≤ 0, trials ≤ 0, Workers ≤ 0 or an unknown Strategy.
//     Checked before any trial runs.
//   - ErrSourceRange:     an injected Source misbehaved.
//
// Steps:
//  1. Validate arguments and resolve options.
//  2. Pick the source plan: one shared Source (sequential), or one PCG stream
//     per trial derived from Seed (parallel up to Workers).
//  3. Run every trial, storing its threshold at its own index.
//  4. Compute mean and sample standard deviation once.
func New(n, trials int, opts ...Option) (*Estimator, error) {
	if n <= 0 || trials <= 0 {
		return nil, fmt.Errorf("%w: n and trials must be positive, got n=%d trials=%d", ErrInvalidArgument, n, trials)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Workers <= 0 {
		return nil, fmt.Errorf("%w: workers must be positive, got %d", ErrInvalidArgument, o.Workers)
	}
	switch o.Strategy {
	case percolation.StrategyVirtual, percolation.StrategyScan:
	default:
		return nil, fmt.Errorf("%w: unknown strategy %v", ErrInvalidArgument, o.Strategy)
	}

	e := &Estimator{n: n, thresholds: make([]float64, trials)}

	if o.Source != nil {
		for t := range e.thresholds {
			th, err := runTrial(n, o.Strategy, o.Source)
			if err != nil {
				return nil, fmt.Errorf("trial %d: %w", t, err)
			}
			e.thresholds[t] = th
		}
	} else {
		seed := o.Seed
		if seed == 0 {
			var err error
			if seed, err = random.NewSeed(); err != nil {
				return nil, err
			}
		}
		e.seed, e.seeded = seed, true

		var g errgroup.Group
		g.SetLimit(o.Workers)
		for t := range e.thresholds {
			g.Go(func() error {
				th, err := runTrial(n, o.Strategy, TrialSource(seed, t))
				if err != nil {
					return fmt.Errorf("trial %d: %w", t, err)
				}
				e.thresholds[t] = th
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	}

	e.summarise()

	return e, nil
}

// TrialSource returns the deterministic stream used for trial t under seed.
func TrialSource(seed int64, t int) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), uint64(t)))
}

// runTrial opens uniformly random blocked sites of a fresh grid until it
// percolates and returns the open fraction.
func runTrial(n int, s percolation.Strategy, src Source) (float64, error) {
	g, err := percolation.New(n, percolation.WithStrategy(s))
	if err != nil {
		return 0, err
	}

	blocked := make([]int, n*n)
	for i := range blocked {
		blocked[i] = i
	}
	for !g.Percolates() && len(blocked) > 0 {
		k := src.IntN(len(blocked))
		if k < 0 || k >= len(blocked) {
			return 0, fmt.Errorf("%w: IntN(%d) = %d", ErrSourceRange, len(blocked), k)
		}
		idx := blocked[k]
		last := len(blocked) - 1
		blocked[k] = blocked[last]
		blocked = blocked[:last]

		row, col := g.Coordinate(idx)
		if err = g.Open(row, col); err != nil {
			return 0, err
		}
	}

	return float64(g.NumberOfOpenSites()) / float64(n*n), nil
}

// summarise caches mean and sample standard deviation. thresholds is never
// empty here, so the stats errors (empty input only) cannot occur.
func (e *Estimator) summarise() {
	e.mean, _ = stats.Mean(e.thresholds)
	if len(e.thresholds) < 2 {
		e.stddev = math.NaN()
		return
	}
	e.stddev, _ = stats.StandardDeviationSample(e.thresholds)
}
