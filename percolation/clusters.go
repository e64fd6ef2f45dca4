package percolation

import "github.com/katalvlaran/percolation/unionfind"

// OpenClusters returns the 4-connected clusters of open sites. Each cluster is
// a list of row-major indices in ascending order, and clusters are ordered by
// their smallest index. Use Coordinate to convert an index back to (row, col).
//
// The grid's own sets cannot answer this directly: with StrategyVirtual every
// top-row cluster shares the virtual top node. A scratch set over the n² sites
// is built instead.
//
// Time:   O(n²·α(n²)).
// Memory: O(n²).
func (g *Grid) OpenClusters() [][]int {
	if g.openCount == 0 {
		return nil
	}
	scratch, err := unionfind.New(g.n * g.n)
	if err != nil {
		return nil
	}

	for idx, isOpen := range g.open {
		if !isOpen {
			continue
		}
		row, col := g.Coordinate(idx)
		// Looking E and S is enough: every pair is seen once from its N/W side.
		for _, d := range [2][2]int{{0, 1}, {1, 0}} {
			nr, nc := row+d[0], col+d[1]
			if g.InBounds(nr, nc) && g.open[g.Index(nr, nc)] {
				_, _ = scratch.Union(idx, g.Index(nr, nc))
			}
		}
	}

	slot := make(map[int]int) // root -> position in clusters
	var clusters [][]int
	for idx, isOpen := range g.open {
		if !isOpen {
			continue
		}
		root, _ := scratch.Find(idx)
		pos, seen := slot[root]
		if !seen {
			pos = len(clusters)
			slot[root] = pos
			clusters = append(clusters, nil)
		}
		clusters[pos] = append(clusters[pos], idx)
	}

	return clusters
}
