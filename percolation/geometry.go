package percolation

import "fmt"

// orthogonal lists the 4-directional (dRow, dCol) neighbour offsets: N, E, S, W.
var orthogonal = [4][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}

// Size returns the grid dimension n.
func (g *Grid) Size() int {
	return g.n
}

// InBounds reports whether (row, col) lies within [0, n)×[0, n).
// Complexity: O(1).
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.n && col >= 0 && col < g.n
}

// Index maps (row, col) to its row-major index row*n + col.
// The caller must ensure InBounds(row, col).
func (g *Grid) Index(row, col int) int {
	return row*g.n + col
}

// Coordinate converts a row-major index back to (row, col).
func (g *Grid) Coordinate(idx int) (row, col int) {
	return idx / g.n, idx % g.n
}

// NeighborOffsets returns the 4-directional offsets used for adjacency.
func (g *Grid) NeighborOffsets() [4][2]int {
	return g.neighborOffsets
}

// checkBounds returns an ErrIndexOutOfRange-wrapped error for invalid (row, col).
func (g *Grid) checkBounds(row, col int) error {
	if !g.InBounds(row, col) {
		return fmt.Errorf("%w: (%d, %d) not in [0, %d)", ErrIndexOutOfRange, row, col, g.n)
	}

	return nil
}
