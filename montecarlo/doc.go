// Package montecarlo estimates the percolation threshold of an n×n lattice by
// running independent trials and summarising them.
//
// Trial:
//
//  1. Build a fresh percolation.Grid(n).
//  2. Draw a uniformly random still-blocked site and open it. The pool of
//     blocked sites shrinks by swap-removal, so no draw is wasted on an open
//     site.
//  3. Stop as soon as the grid percolates and record
//     NumberOfOpenSites()/n² as the trial's threshold, a value in (0, 1].
//
// Statistics:
//
//   - Mean and StdDev are the sample mean and the sample standard deviation
//     (n−1 divisor). StdDev is NaN for a single trial.
//   - ConfidenceLo and ConfidenceHi bound the 95% interval
//     mean ∓ 1.96·stddev/√trials.
//   - Interval generalises the bounds to any confidence level using the
//     standard normal quantile.
//
// Randomness & parallelism:
//
//   - WithSource injects one generator. Trials then run sequentially in order,
//     and the results depend only on that generator's stream.
//   - WithSeed gives every trial its own PCG stream derived from (seed, trial),
//     so the thresholds are identical for any WithWorkers value.
//   - WithWorkers(k) runs up to k trials concurrently. Each trial writes only
//     its own slot of the result slice.
//
// Complexity: O(trials·n²·α(n²)) time, O(workers·n²) memory.
package montecarlo
