package montecarlo

import (
	"fmt"
	"math"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat/distuv"
)

// N returns the grid dimension used for every trial.
func (e *Estimator) N() int {
	return e.n
}

// Trials returns the number of completed trials.
func (e *Estimator) Trials() int {
	return len(e.thresholds)
}

// Seed returns the seed the per-trial streams were derived from. The boolean is
// false when a shared Source was injected instead.
func (e *Estimator) Seed() (int64, bool) {
	return e.seed, e.seeded
}

// Thresholds returns a copy of the per-trial thresholds in trial order.
func (e *Estimator) Thresholds() []float64 {
	out := make([]float64, len(e.thresholds))
	copy(out, e.thresholds)

	return out
}

// Mean returns the sample mean of the thresholds.
func (e *Estimator) Mean() float64 {
	return e.mean
}

// StdDev returns the sample standard deviation (n−1 divisor), NaN for a single trial.
func (e *Estimator) StdDev() float64 {
	return e.stddev
}

// ConfidenceLo returns the low endpoint of the 95% confidence interval.
func (e *Estimator) ConfidenceLo() float64 {
	return e.mean - e.halfWidth(Confidence95)
}

// ConfidenceHi returns the high endpoint of the 95% confidence interval.
func (e *Estimator) ConfidenceHi() float64 {
	return e.mean + e.halfWidth(Confidence95)
}

// Interval returns the two-sided normal-approximation interval at the given
// confidence level, which must lie strictly between 0 and 1.
// The critical value is the standard normal quantile at (1+level)/2, so
// level 0.95 gives ≈1.95996 rather than the rounded Confidence95.
func (e *Estimator) Interval(level float64) (lo, hi float64, err error) {
	if !(level > 0 && level < 1) {
		return 0, 0, fmt.Errorf("%w: confidence level %v not in (0, 1)", ErrInvalidArgument, level)
	}
	z := distuv.UnitNormal.Quantile(0.5 + level/2)
	w := e.halfWidth(z)

	return e.mean - w, e.mean + w, nil
}

// Summary collects every aggregate statistic in one value.
func (e *Estimator) Summary() Summary {
	s := Summary{
		N:      e.n,
		Trials: len(e.thresholds),
		Mean:   e.mean,
		StdDev: e.stddev,
		Lo:     e.ConfidenceLo(),
		Hi:     e.ConfidenceHi(),
	}
	s.Min, _ = stats.Min(e.thresholds)
	s.Max, _ = stats.Max(e.thresholds)
	s.Median, _ = stats.Median(e.thresholds)

	return s
}

func (e *Estimator) halfWidth(z float64) float64 {
	return z * e.stddev / math.Sqrt(float64(len(e.thresholds)))
}
