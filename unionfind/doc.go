// Package unionfind provides a disjoint-set (union-find) structure over a fixed
// universe of integer elements [0, count).
//
// What & Why
//
//   - A DisjointSet partitions its elements into components and answers
//     "are p and q connected?" after any sequence of Union calls.
//   - It is the connectivity engine behind the percolation lattice: every
//     opened site is merged with its open 4-neighbours, and "does the lattice
//     percolate?" reduces to a single Connected query.
//
// Heuristics
//
//   - Union by size: the root of the smaller tree is attached under the root of
//     the larger one, so tree height stays within O(log count).
//   - Path compression: Find re-points every node on the visited path directly
//     at the root. It is iterative (two passes), so deep chains never grow
//     the call stack.
//
// Together they bound any sequence of m operations to O(m·α(count)), where α is
// the inverse Ackermann function (≤ 4 for any realistic count).
//
// Errors
//
//   - ErrInvalidArgument: New called with count ≤ 0.
//   - ErrIndexOutOfRange: an element index outside [0, count).
//
// Complexity
//
//   - New:                    O(count) time and memory.
//   - Find, Union, Connected: O(α(count)) amortized.
//   - ComponentSize, Count, Components: O(α(count)) / O(1).
//   - Groups:                 O(count·α(count)).
//
// A DisjointSet is not safe for concurrent use; confine each instance to one
// goroutine or guard it externally.
package unionfind
