// Package main provides a CLI that estimates the percolation threshold of an
// n×n lattice, or replays a site listing on a single lattice.
//
// Usage:
//
//	percolate [-seed S] [-workers K] [-strategy virtual|scan] [-verbose] [n] [trials]
//	percolate -sites FILE|- [-one-based] [-show]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	percolatecmd "github.com/katalvlaran/percolation/internal/cmd/percolate"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		exitf("Error: load .env: %v", err)
	}

	cfg, err := percolatecmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		exitf("Error: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := percolatecmd.Run(ctx, cfg, os.Stdin, os.Stdout, os.Stderr); err != nil {
		exitf("Error: %v", err)
	}
}

// exitf prints a formatted message to stderr and exits with status 1.
func exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
