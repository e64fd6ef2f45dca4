package percolation_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/percolation/percolation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var strategies = []percolation.Strategy{percolation.StrategyVirtual, percolation.StrategyScan}

// newGrid is a test helper that fails the test on construction errors.
func newGrid(t *testing.T, n int, s percolation.Strategy) *percolation.Grid {
	t.Helper()
	g, err := percolation.New(n, percolation.WithStrategy(s))
	require.NoError(t, err)

	return g
}

// openAll opens every (row, col) pair and fails the test on error.
func openAll(t *testing.T, g *percolation.Grid, sites ...[2]int) {
	t.Helper()
	for _, s := range sites {
		require.NoError(t, g.Open(s[0], s[1]), "Open(%d,%d)", s[0], s[1])
	}
}

//----------------------------------------------------------------------------//
// Construction
//----------------------------------------------------------------------------//

func TestNew_Errors(t *testing.T) {
	for _, n := range []int{0, -3} {
		g, err := percolation.New(n)
		assert.ErrorIs(t, err, percolation.ErrInvalidArgument, "n=%d", n)
		assert.Nil(t, g)
	}

	g, err := percolation.New(3, percolation.WithStrategy(percolation.Strategy(99)))
	assert.ErrorIs(t, err, percolation.ErrInvalidArgument)
	assert.Nil(t, g)
}

func TestNew_AllBlocked(t *testing.T) {
	for _, s := range strategies {
		for _, n := range []int{1, 2, 5} {
			g := newGrid(t, n, s)
			assert.Equal(t, n, g.Size())
			assert.Equal(t, s, g.Strategy())
			assert.Equal(t, 0, g.NumberOfOpenSites(), "%v n=%d", s, n)
			assert.False(t, g.Percolates(), "%v n=%d", s, n)
			for row := 0; row < n; row++ {
				for col := 0; col < n; col++ {
					open, err := g.IsOpen(row, col)
					require.NoError(t, err)
					assert.False(t, open)
					full, err := g.IsFull(row, col)
					require.NoError(t, err)
					assert.False(t, full)
				}
			}
		}
	}
}

func TestDefaultStrategyIsVirtual(t *testing.T) {
	g, err := percolation.New(2)
	require.NoError(t, err)
	assert.Equal(t, percolation.StrategyVirtual, g.Strategy())
}

//----------------------------------------------------------------------------//
// Scenarios
//----------------------------------------------------------------------------//

func TestScenarios(t *testing.T) {
	cases := []struct {
		name       string
		n          int
		sites      [][2]int
		percolates bool
		open       int
	}{
		{"SingleSite", 1, [][2]int{{0, 0}}, true, 1},
		{"Diagonal", 2, [][2]int{{0, 0}, {1, 1}}, false, 2},
		{"Column", 2, [][2]int{{0, 0}, {1, 0}}, true, 2},
		{"TopRowOnly", 3, [][2]int{{0, 0}, {0, 1}, {0, 2}}, false, 3},
		{"Snake", 3, [][2]int{{0, 2}, {1, 2}, {1, 1}, {1, 0}, {2, 0}}, true, 5},
		{"BrokenSnake", 3, [][2]int{{0, 2}, {1, 2}, {1, 0}, {2, 0}}, false, 4},
	}
	for _, s := range strategies {
		for _, tc := range cases {
			t.Run(s.String()+"/"+tc.name, func(t *testing.T) {
				g := newGrid(t, tc.n, s)
				openAll(t, g, tc.sites...)
				assert.Equal(t, tc.percolates, g.Percolates())
				assert.Equal(t, tc.open, g.NumberOfOpenSites())
			})
		}
	}
}

func TestOpen_Idempotent(t *testing.T) {
	for _, s := range strategies {
		g := newGrid(t, 4, s)
		openAll(t, g, [2]int{2, 3})
		once := g.NumberOfOpenSites()
		openAll(t, g, [2]int{2, 3})
		assert.Equal(t, once, g.NumberOfOpenSites())
		assert.Equal(t, 1, once)
	}
}

func TestOutOfRange_LeavesStateIntact(t *testing.T) {
	bad := [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 3}, {7, 7}}
	for _, s := range strategies {
		g := newGrid(t, 3, s)
		openAll(t, g, [2]int{0, 0}, [2]int{1, 0})
		before := g.String()

		for _, rc := range bad {
			assert.ErrorIs(t, g.Open(rc[0], rc[1]), percolation.ErrIndexOutOfRange)
			_, err := g.IsOpen(rc[0], rc[1])
			assert.ErrorIs(t, err, percolation.ErrIndexOutOfRange)
			_, err = g.IsFull(rc[0], rc[1])
			assert.ErrorIs(t, err, percolation.ErrIndexOutOfRange)
		}
		assert.Equal(t, 2, g.NumberOfOpenSites())
		assert.Equal(t, before, g.String())
	}
}

// TestIsFull_NoBackwash opens a percolating left column plus an isolated
// bottom-right site; the isolated site must not be reported full.
func TestIsFull_NoBackwash(t *testing.T) {
	for _, s := range strategies {
		g := newGrid(t, 3, s)
		openAll(t, g, [2]int{0, 0}, [2]int{1, 0}, [2]int{2, 0}, [2]int{2, 2})
		require.True(t, g.Percolates())

		full, err := g.IsFull(2, 0)
		require.NoError(t, err)
		assert.True(t, full, "%v: column bottom is full", s)

		full, err = g.IsFull(2, 2)
		require.NoError(t, err)
		assert.False(t, full, "%v: isolated bottom site must not be full", s)
	}
}

func TestIsFull_ClosedSiteIsNotFull(t *testing.T) {
	for _, s := range strategies {
		g := newGrid(t, 2, s)
		openAll(t, g, [2]int{0, 0})
		full, err := g.IsFull(1, 1)
		require.NoError(t, err)
		assert.False(t, full)

		full, err = g.IsFull(0, 0)
		require.NoError(t, err)
		assert.True(t, full)
	}
}

//----------------------------------------------------------------------------//
// Randomized properties
//----------------------------------------------------------------------------//

// reachableFromTop is a BFS oracle returning which sites are full.
func reachableFromTop(g *percolation.Grid) []bool {
	n := g.Size()
	full := make([]bool, n*n)
	var queue []int
	for col := 0; col < n; col++ {
		if open, _ := g.IsOpen(0, col); open {
			full[col] = true
			queue = append(queue, col)
		}
	}
	for qi := 0; qi < len(queue); qi++ {
		row, col := g.Coordinate(queue[qi])
		for _, d := range g.NeighborOffsets() {
			nr, nc := row+d[0], col+d[1]
			if !g.InBounds(nr, nc) {
				continue
			}
			idx := g.Index(nr, nc)
			if open, _ := g.IsOpen(nr, nc); open && !full[idx] {
				full[idx] = true
				queue = append(queue, idx)
			}
		}
	}

	return full
}

// TestRandomOpens_MatchOracle opens sites in random order and, after every
// step, checks monotonicity, IsFull ⇒ IsOpen, and agreement of both
// strategies with a BFS oracle.
func TestRandomOpens_MatchOracle(t *testing.T) {
	const n = 8
	r := rand.New(rand.NewSource(11))
	virtual := newGrid(t, n, percolation.StrategyVirtual)
	scan := newGrid(t, n, percolation.StrategyScan)

	prev := 0
	for step := 0; step < 3*n*n; step++ {
		row, col := r.Intn(n), r.Intn(n)
		require.NoError(t, virtual.Open(row, col))
		require.NoError(t, scan.Open(row, col))

		count := virtual.NumberOfOpenSites()
		require.GreaterOrEqual(t, count, prev, "open count must not decrease")
		require.Equal(t, count, scan.NumberOfOpenSites())
		prev = count

		oracle := reachableFromTop(virtual)
		percolates := false
		for idx, want := range oracle {
			rr, cc := virtual.Coordinate(idx)
			gotV, err := virtual.IsFull(rr, cc)
			require.NoError(t, err)
			gotS, err := scan.IsFull(rr, cc)
			require.NoError(t, err)
			require.Equal(t, want, gotV, "virtual IsFull(%d,%d) at step %d", rr, cc, step)
			require.Equal(t, want, gotS, "scan IsFull(%d,%d) at step %d", rr, cc, step)
			if gotV {
				open, _ := virtual.IsOpen(rr, cc)
				require.True(t, open, "full site (%d,%d) must be open", rr, cc)
			}
			if want && rr == n-1 {
				percolates = true
			}
		}
		require.Equal(t, percolates, virtual.Percolates(), "virtual Percolates at step %d", step)
		require.Equal(t, percolates, scan.Percolates(), "scan Percolates at step %d", step)
	}
}

//----------------------------------------------------------------------------//
// Geometry & strategy parsing
//----------------------------------------------------------------------------//

func TestGeometry(t *testing.T) {
	g := newGrid(t, 4, percolation.StrategyVirtual)
	assert.Equal(t, 9, g.Index(2, 1))
	row, col := g.Coordinate(9)
	assert.Equal(t, [2]int{2, 1}, [2]int{row, col})

	assert.True(t, g.InBounds(0, 0))
	assert.True(t, g.InBounds(3, 3))
	assert.False(t, g.InBounds(4, 0))
	assert.False(t, g.InBounds(0, -1))

	for _, d := range g.NeighborOffsets() {
		assert.Equal(t, 1, abs(d[0])+abs(d[1]), "offset %v must be orthogonal", d)
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func TestParseStrategy(t *testing.T) {
	cases := []struct {
		in   string
		want percolation.Strategy
		err  bool
	}{
		{"virtual", percolation.StrategyVirtual, false},
		{"", percolation.StrategyVirtual, false},
		{" SCAN ", percolation.StrategyScan, false},
		{"quick-find", 0, true},
	}
	for _, tc := range cases {
		got, err := percolation.ParseStrategy(tc.in)
		if tc.err {
			assert.ErrorIs(t, err, percolation.ErrInvalidArgument, "ParseStrategy(%q)", tc.in)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tc.want, got)
		assert.Equal(t, got.String(), tc.want.String())
	}
	assert.Equal(t, "Strategy(7)", percolation.Strategy(7).String())
}

func TestString(t *testing.T) {
	g := newGrid(t, 3, percolation.StrategyVirtual)
	openAll(t, g, [2]int{0, 1}, [2]int{1, 1}, [2]int{2, 2})
	assert.Equal(t, "#~#\n#~#\n##.\n", g.String())
}
