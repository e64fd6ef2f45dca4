// Package percolation models an n×n lattice of sites that are either blocked
// or open, and answers whether open sites connect the top row to the bottom
// row.
//
// What:
//
//   - Grid holds the open/blocked state of every site plus disjoint-set
//     connectivity (see package unionfind) over the open ones.
//   - Sites are addressed by zero-based (row, col) in [0, n). Site (row, col)
//     maps to the row-major index row*n + col.
//   - Adjacency is strictly 4-directional (N, E, S, W); diagonals never
//     connect.
//   - A site is full when it is open and reachable from an open top-row site
//     through open neighbours. The grid percolates when some bottom-row site
//     is full.
//
// Strategies:
//
//   - StrategyVirtual (default): a virtual-top and a virtual-bottom node make
//     Percolates a single Connected query. A second disjoint set without the
//     virtual bottom serves IsFull, so a bottom-row site can never look full
//     merely because the system percolates elsewhere (backwash).
//   - StrategyScan: no virtual nodes. IsFull scans the open top-row sites,
//     Percolates scans the bottom row. It is always correct but costs O(n)
//     per query.
//
// Complexity:
//
//   - New:        O(n²) time and memory.
//   - Open:       O(α(n²)) amortized (at most 4 unions, 6 with virtual nodes).
//   - IsOpen, NumberOfOpenSites: O(1).
//   - IsFull, Percolates: O(α(n²)) with StrategyVirtual, O(n·α(n²)) with StrategyScan.
//   - OpenClusters: O(n²·α(n²)).
//
// Errors:
//
//   - ErrInvalidArgument: n ≤ 0 or an unknown Strategy.
//   - ErrIndexOutOfRange: (row, col) outside [0, n). State is left untouched.
//   - ErrMalformedInput: ReadSites could not parse its input.
package percolation
