package unionfind

import "errors"

// Sentinel errors for disjoint-set operations.
var (
	// ErrInvalidArgument indicates a non-positive universe size.
	ErrInvalidArgument = errors.New("unionfind: count must be positive")

	// ErrIndexOutOfRange indicates an element index outside [0, count).
	ErrIndexOutOfRange = errors.New("unionfind: index out of range")
)

// DisjointSet is a weighted quick-union forest with path compression.
//
// parent[i] == i marks i as a root; size[r] is meaningful only for roots and
// equals the number of elements whose root is r.
type DisjointSet struct {
	parent     []int
	size       []int
	components int
}
