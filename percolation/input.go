package percolation

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// ReadSites parses a site listing: whitespace-separated integers where the
// first is the grid size n and the rest are (row, col) pairs.
//
// The coordinates are returned as written; Apply shifts them by a base so that
// one-based listings can be replayed. Returns ErrMalformedInput for an empty
// listing, a non-integer token, or a dangling row without its column.
func ReadSites(r io.Reader) (n int, sites [][2]int, err error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	var values []int
	for sc.Scan() {
		v, convErr := strconv.Atoi(sc.Text())
		if convErr != nil {
			return 0, nil, fmt.Errorf("%w: token %d: %q is not an integer", ErrMalformedInput, len(values)+1, sc.Text())
		}
		values = append(values, v)
	}
	if err = sc.Err(); err != nil {
		return 0, nil, fmt.Errorf("read sites: %w", err)
	}
	if len(values) == 0 {
		return 0, nil, fmt.Errorf("%w: missing grid size", ErrMalformedInput)
	}
	if len(values[1:])%2 != 0 {
		return 0, nil, fmt.Errorf("%w: row %d has no column", ErrMalformedInput, values[len(values)-1])
	}

	n = values[0]
	sites = make([][2]int, 0, len(values[1:])/2)
	for i := 1; i < len(values); i += 2 {
		sites = append(sites, [2]int{values[i], values[i+1]})
	}

	return n, sites, nil
}

// Apply opens every site in order, subtracting base from both coordinates
// (0 for zero-based listings, 1 for one-based ones). It stops at the first
// failing site; sites opened before it stay open.
func Apply(g *Grid, sites [][2]int, base int) error {
	for i, s := range sites {
		if err := g.Open(s[0]-base, s[1]-base); err != nil {
			return fmt.Errorf("site #%d (%d, %d): %w", i+1, s[0], s[1], err)
		}
	}

	return nil
}
