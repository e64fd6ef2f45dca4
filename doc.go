// Package percolation is a small laboratory for site percolation on square
// lattices: a union-find engine, an n×n lattice model built on it, and a Monte
// Carlo estimator of the percolation threshold.
//
// What is inside?
//
//	• unionfind/     DisjointSet: union by size + iterative path compression
//	• percolation/   Grid: open/blocked sites, IsFull, Percolates, clusters
//	• montecarlo/    Estimator: repeated trials and threshold statistics
//	• cmd/percolate  command-line front end (env + flags)
//
// Quick ASCII example (3×3, '#' blocked, '~' full, '.' open but not full):
//
//	# ~ #
//	# ~ #
//	# # .     ← (2,2) touches no full site, so the lattice does not percolate
//
// The square-lattice site threshold is p* ≈ 0.5927; with n=200 and 100 trials
// the estimator lands within a few thousandths of it.
//
//	go get github.com/katalvlaran/percolation
package percolation
