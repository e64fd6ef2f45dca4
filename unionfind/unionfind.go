package unionfind

import "fmt"

// New returns a DisjointSet of count singleton components {0}, {1}, ... {count-1}.
// Returns ErrInvalidArgument if count ≤ 0.
// Complexity: O(count) time and memory.
func New(count int) (*DisjointSet, error) {
	if count <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidArgument, count)
	}
	ds := &DisjointSet{
		parent:     make([]int, count),
		size:       make([]int, count),
		components: count,
	}
	for i := range ds.parent {
		ds.parent[i] = i
		ds.size[i] = 1
	}

	return ds, nil
}

// Count returns the size of the universe the set was created with.
func (ds *DisjointSet) Count() int {
	return len(ds.parent)
}

// Components returns the current number of disjoint components.
// Complexity: O(1).
func (ds *DisjointSet) Components() int {
	return ds.components
}

// Find returns the canonical root of p's component.
//
// Steps:
//  1. Validate p.
//  2. Walk parent links until parent[r] == r.
//  3. Walk the same path again, pointing every visited node at r.
//
// Complexity: O(α(count)) amortized.
func (ds *DisjointSet) Find(p int) (int, error) {
	if err := ds.validate(p); err != nil {
		return 0, err
	}

	return ds.find(p), nil
}

// Union merges the components of p and q. It reports whether a merge happened;
// (false, nil) means p and q were already connected.
//
// The smaller tree's root goes under the larger tree's root. On a size tie
// q's root goes under p's root.
// Complexity: O(α(count)) amortized.
func (ds *DisjointSet) Union(p, q int) (bool, error) {
	if err := ds.validate(p); err != nil {
		return false, err
	}
	if err := ds.validate(q); err != nil {
		return false, err
	}

	rootP, rootQ := ds.find(p), ds.find(q)
	if rootP == rootQ {
		return false, nil
	}
	if ds.size[rootP] < ds.size[rootQ] {
		rootP, rootQ = rootQ, rootP
	}
	ds.parent[rootQ] = rootP
	ds.size[rootP] += ds.size[rootQ]
	ds.components--

	return true, nil
}

// Connected reports whether p and q share a component.
// Complexity: O(α(count)) amortized.
func (ds *DisjointSet) Connected(p, q int) (bool, error) {
	if err := ds.validate(p); err != nil {
		return false, err
	}
	if err := ds.validate(q); err != nil {
		return false, err
	}

	return ds.find(p) == ds.find(q), nil
}

// ComponentSize returns the number of elements in p's component.
// Complexity: O(α(count)) amortized.
func (ds *DisjointSet) ComponentSize(p int) (int, error) {
	if err := ds.validate(p); err != nil {
		return 0, err
	}

	return ds.size[ds.find(p)], nil
}

// Groups returns every component keyed by its root. Members are in ascending
// order. Complexity: O(count·α(count)).
func (ds *DisjointSet) Groups() map[int][]int {
	groups := make(map[int][]int, ds.components)
	for i := range ds.parent {
		r := ds.find(i)
		groups[r] = append(groups[r], i) // i ascends, so members stay sorted
	}

	return groups
}

// find assumes p is valid.
func (ds *DisjointSet) find(p int) int {
	root := p
	for ds.parent[root] != root {
		root = ds.parent[root]
	}
	for p != root {
		next := ds.parent[p]
		ds.parent[p] = root
		p = next
	}

	return root
}

func (ds *DisjointSet) validate(p int) error {
	if p < 0 || p >= len(ds.parent) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, p, len(ds.parent))
	}

	return nil
}
