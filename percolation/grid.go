package percolation

import (
	"fmt"

	"github.com/katalvlaran/percolation/unionfind"
)

// New constructs an n×n Grid with every site blocked.
// Returns ErrInvalidArgument if n ≤ 0 or the selected Strategy is unknown.
// Complexity: O(n²) time and memory.
func New(n int, opts ...Option) (*Grid, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: grid size must be positive, got %d", ErrInvalidArgument, n)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	sites := n * n
	g := &Grid{
		n:               n,
		open:            make([]bool, sites),
		strategy:        o.Strategy,
		virtualTop:      -1,
		virtualBottom:   -1,
		neighborOffsets: orthogonal,
	}

	var err error
	switch o.Strategy {
	case StrategyVirtual:
		g.virtualTop, g.virtualBottom = sites, sites+1
		if g.full, err = unionfind.New(sites + 2); err != nil {
			return nil, err
		}
		if g.top, err = unionfind.New(sites + 1); err != nil {
			return nil, err
		}
	case StrategyScan:
		if g.full, err = unionfind.New(sites); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: unknown strategy %v", ErrInvalidArgument, o.Strategy)
	}

	return g, nil
}

// Strategy reports the resolution scheme the grid was built with.
func (g *Grid) Strategy() Strategy {
	return g.strategy
}

// Open opens site (row, col) if it is not open already.
//
// Steps:
//  1. Validate bounds; on failure nothing is mutated.
//  2. Return early if the site is already open (idempotent).
//  3. Mark open, bump the open counter.
//  4. Link to the virtual nodes when on the top or bottom row.
//  5. Union with every already-open 4-neighbour.
//
// Complexity: O(α(n²)) amortized.
func (g *Grid) Open(row, col int) error {
	if err := g.checkBounds(row, col); err != nil {
		return err
	}
	idx := g.Index(row, col)
	if g.open[idx] {
		return nil
	}
	g.open[idx] = true
	g.openCount++

	if g.strategy == StrategyVirtual {
		if row == 0 {
			g.link(idx, g.virtualTop, true)
		}
		if row == g.n-1 {
			g.link(idx, g.virtualBottom, false)
		}
	}
	for _, d := range g.neighborOffsets {
		nr, nc := row+d[0], col+d[1]
		if !g.InBounds(nr, nc) {
			continue
		}
		if nidx := g.Index(nr, nc); g.open[nidx] {
			g.link(idx, nidx, true)
		}
	}

	return nil
}

// IsOpen reports whether site (row, col) is open.
// Complexity: O(1).
func (g *Grid) IsOpen(row, col int) (bool, error) {
	if err := g.checkBounds(row, col); err != nil {
		return false, err
	}

	return g.open[g.Index(row, col)], nil
}

// IsFull reports whether site (row, col) is open and connected to the top row.
// A blocked in-range site is simply not full.
// Complexity: O(α(n²)) with StrategyVirtual, O(n·α(n²)) with StrategyScan.
func (g *Grid) IsFull(row, col int) (bool, error) {
	if err := g.checkBounds(row, col); err != nil {
		return false, err
	}

	return g.isFull(g.Index(row, col)), nil
}

// Percolates reports whether some open path joins the top row to the bottom row.
// Complexity: O(α(n²)) with StrategyVirtual, O(n·α(n²)) with StrategyScan.
func (g *Grid) Percolates() bool {
	if g.strategy == StrategyVirtual {
		ok, _ := g.full.Connected(g.virtualTop, g.virtualBottom)
		return ok
	}

	tops := g.topRoots()
	if len(tops) == 0 {
		return false
	}
	base := g.Index(g.n-1, 0)
	for col := 0; col < g.n; col++ {
		idx := base + col
		if !g.open[idx] {
			continue
		}
		if root, _ := g.full.Find(idx); tops[root] {
			return true
		}
	}

	return false
}

// NumberOfOpenSites returns how many sites have been opened.
// Complexity: O(1).
func (g *Grid) NumberOfOpenSites() int {
	return g.openCount
}

// isFull assumes idx is a valid site index.
func (g *Grid) isFull(idx int) bool {
	if !g.open[idx] {
		return false
	}
	if g.strategy == StrategyVirtual {
		ok, _ := g.top.Connected(idx, g.virtualTop)
		return ok
	}

	root, _ := g.full.Find(idx)
	for col := 0; col < g.n; col++ {
		if !g.open[col] {
			continue
		}
		if r, _ := g.full.Find(col); r == root {
			return true
		}
	}

	return false
}

// topRoots returns the set of roots of open top-row sites (StrategyScan only).
func (g *Grid) topRoots() map[int]bool {
	roots := make(map[int]bool)
	for col := 0; col < g.n; col++ {
		if g.open[col] {
			r, _ := g.full.Find(col)
			roots[r] = true
		}
	}

	return roots
}

// link unions p and q in the percolation set and, when withTop is set and a
// top-only set exists, in that set too. Every index passed here is in range,
// so the union errors are always nil.
func (g *Grid) link(p, q int, withTop bool) {
	_, _ = g.full.Union(p, q)
	if withTop && g.top != nil {
		_, _ = g.top.Union(p, q)
	}
}
