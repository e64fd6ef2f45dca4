package percolation

import "strings"

// Glyphs used by String.
const (
	glyphBlocked = '#'
	glyphOpen    = '.'
	glyphFull    = '~'
)

// String renders the lattice one row per line: '#' blocked, '.' open, '~' full.
// Complexity: O(n²) with StrategyVirtual, O(n³) with StrategyScan.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.n * (g.n + 1))
	for row := 0; row < g.n; row++ {
		for col := 0; col < g.n; col++ {
			idx := g.Index(row, col)
			switch {
			case g.isFull(idx):
				sb.WriteByte(glyphFull)
			case g.open[idx]:
				sb.WriteByte(glyphOpen)
			default:
				sb.WriteByte(glyphBlocked)
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
