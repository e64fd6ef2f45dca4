package percolation_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/percolation/percolation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadSites(t *testing.T) {
	n, sites, err := percolation.ReadSites(strings.NewReader("3\n1 1\n 2 1\n3 1\n"))
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, [][2]int{{1, 1}, {2, 1}, {3, 1}}, sites)

	n, sites, err = percolation.ReadSites(strings.NewReader("5"))
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Empty(t, sites)
}

func TestReadSites_Malformed(t *testing.T) {
	for _, in := range []string{"", "   \n", "3 1 1 2", "3 a 1", "2.5"} {
		_, _, err := percolation.ReadSites(strings.NewReader(in))
		assert.ErrorIs(t, err, percolation.ErrMalformedInput, "input %q", in)
	}
}

func TestApply_OneBased(t *testing.T) {
	n, sites, err := percolation.ReadSites(strings.NewReader("3\n1 1\n2 1\n3 1\n"))
	require.NoError(t, err)
	g, err := percolation.New(n)
	require.NoError(t, err)

	require.NoError(t, percolation.Apply(g, sites, 1))
	assert.Equal(t, 3, g.NumberOfOpenSites())
	assert.True(t, g.Percolates())
}

func TestApply_StopsAtFirstBadSite(t *testing.T) {
	g, err := percolation.New(2)
	require.NoError(t, err)

	err = percolation.Apply(g, [][2]int{{0, 0}, {2, 0}, {1, 0}}, 0)
	assert.ErrorIs(t, err, percolation.ErrIndexOutOfRange)
	assert.Contains(t, err.Error(), "site #2")
	assert.Equal(t, 1, g.NumberOfOpenSites())
	assert.False(t, g.Percolates())
}
