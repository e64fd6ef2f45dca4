// Package percolate wires the percolate command: configuration from the
// environment and flags, and the two run modes (Monte Carlo statistics, or
// replaying a site listing).
package percolate

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/google/uuid"

	"github.com/katalvlaran/percolation/montecarlo"
	"github.com/katalvlaran/percolation/percolation"
)

// Config holds percolate command configuration.
type Config struct {
	N         int    `env:"PERCOLATION_N"          envDefault:"200"`
	Trials    int    `env:"PERCOLATION_TRIALS"     envDefault:"100"`
	Seed      int64  `env:"PERCOLATION_SEED"`
	Workers   int    `env:"PERCOLATION_WORKERS"    envDefault:"1"`
	Strategy  string `env:"PERCOLATION_STRATEGY"   envDefault:"virtual"`
	SitesFile string `env:"PERCOLATION_SITES_FILE"`
	OneBased  bool
	Show      bool
	Verbose   bool `env:"PERCOLATION_VERBOSE"`
}

// ParseConfig fills a Config from env vars, then flags, then up to two
// positional arguments: n and trials.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed for reproducibility (0 = random)")
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "number of trials run concurrently")
	fs.StringVar(&cfg.Strategy, "strategy", cfg.Strategy, "connectivity strategy (virtual, scan)")
	fs.StringVar(&cfg.SitesFile, "sites", cfg.SitesFile, "replay a site listing instead of simulating (- = stdin)")
	fs.BoolVar(&cfg.OneBased, "one-based", cfg.OneBased, "site listing uses one-based coordinates")
	fs.BoolVar(&cfg.Show, "show", cfg.Show, "print the lattice after replaying a site listing")
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "enable verbose logging")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	rest := fs.Args()
	if len(rest) > 2 {
		return Config{}, fmt.Errorf("expected at most 2 arguments (n trials), got %d", len(rest))
	}
	for i, dst := range []*int{&cfg.N, &cfg.Trials} {
		if i >= len(rest) {
			break
		}
		v, err := strconv.Atoi(rest[i])
		if err != nil {
			return Config{}, fmt.Errorf("argument %d: %q is not an integer", i+1, rest[i])
		}
		*dst = v
	}

	return cfg, nil
}

// Run executes the percolate command. in is read when cfg.SitesFile is "-".
func Run(ctx context.Context, cfg Config, in io.Reader, out io.Writer, errOut io.Writer) error {
	if out == nil {
		out = io.Discard
	}
	if errOut == nil {
		errOut = io.Discard
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	strategy, err := percolation.ParseStrategy(cfg.Strategy)
	if err != nil {
		return err
	}
	logger := log.New(errOut, "", 0)

	if cfg.SitesFile != "" {
		return replay(cfg, strategy, in, out)
	}

	runID := uuid.New()
	start := time.Now()
	if cfg.Verbose {
		logger.Printf("run %s: n=%d trials=%d workers=%d strategy=%s", runID, cfg.N, cfg.Trials, cfg.Workers, strategy)
	}

	opts := []montecarlo.Option{
		montecarlo.WithSeed(cfg.Seed),
		montecarlo.WithWorkers(cfg.Workers),
		montecarlo.WithStrategy(strategy),
	}
	est, err := montecarlo.New(cfg.N, cfg.Trials, opts...)
	if err != nil {
		return err
	}

	if cfg.Verbose {
		seed, _ := est.Seed()
		logger.Printf("run %s: seed=%d elapsed=%s", runID, seed, time.Since(start).Round(time.Millisecond))
	}
	fmt.Fprintf(out, "mean                    = %.16f\n", est.Mean())
	fmt.Fprintf(out, "stddev                  = %.16f\n", est.StdDev())
	fmt.Fprintf(out, "95%% confidence interval = [%.16f, %.16f]\n", est.ConfidenceLo(), est.ConfidenceHi())

	return nil
}

// replay opens the sites of a listing on a fresh grid and reports the outcome.
func replay(cfg Config, strategy percolation.Strategy, in io.Reader, out io.Writer) error {
	src := in
	if cfg.SitesFile != "-" {
		f, err := os.Open(cfg.SitesFile)
		if err != nil {
			return fmt.Errorf("open sites file: %w", err)
		}
		defer f.Close()
		src = f
	}
	if src == nil {
		return errors.New("no site listing to read")
	}

	n, sites, err := percolation.ReadSites(src)
	if err != nil {
		return err
	}
	g, err := percolation.New(n, percolation.WithStrategy(strategy))
	if err != nil {
		return err
	}
	base := 0
	if cfg.OneBased {
		base = 1
	}
	if err = percolation.Apply(g, sites, base); err != nil {
		return err
	}

	fmt.Fprintf(out, "Number of open sites: %d\n", g.NumberOfOpenSites())
	fmt.Fprintf(out, "Does the system percolate? %t\n", g.Percolates())
	if cfg.Show {
		fmt.Fprint(out, g)
	}

	return nil
}
