// File: gridgraph/components_test.go
package gridgraph_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridnav/gridgraph"
)

// TestRegions_Split tests Regions on a 5×5 grid split by a full wall row.
//
// Grid (S start, E end, # wall):
//
//	S . . . .
//	. . . . .
//	# # # # #
//	. . . . .
//	E . . . .
//
// Expected: 2 regions of 10 cells each; start and end disconnected.
func TestRegions_Split(t *testing.T) {
	var walls []gridgraph.Cell
	for c := 0; c < 5; c++ {
		walls = append(walls, cell(2, c))
	}
	g, err := gridgraph.New(5, 5, cell(0, 0), cell(4, 0), walls)
	require.NoError(t, err)

	regions := g.Regions()
	require.Len(t, regions, 2)
	assert.Len(t, regions[0], 10)
	assert.Len(t, regions[1], 10)
	assert.Equal(t, cell(0, 0), regions[0][0], "regions are discovered row-major")
	assert.Equal(t, cell(3, 0), regions[1][0])
	assert.False(t, g.Connected())
}

// TestRegions_Pockets counts isolated open pockets.
//
//	S # .
//	# # #
//	. # E
func TestRegions_Pockets(t *testing.T) {
	g, err := gridgraph.FromMatrix([][]int{
		{2, 1, 0},
		{1, 1, 1},
		{0, 1, 3},
	})
	require.NoError(t, err)

	regions := g.Regions()
	require.Len(t, regions, 4)
	sizes := make([]int, len(regions))
	for i, r := range regions {
		sizes[i] = len(r)
	}
	sort.Ints(sizes)
	assert.Equal(t, []int{1, 1, 1, 1}, sizes)
}

// TestRegion covers membership, walls and out-of-bounds queries.
func TestRegion(t *testing.T) {
	g, err := gridgraph.New(3, 3, cell(0, 0), cell(2, 2), []gridgraph.Cell{cell(1, 1)})
	require.NoError(t, err)

	assert.Len(t, g.Region(cell(0, 0)), 8)
	assert.Nil(t, g.Region(cell(1, 1)))
	assert.Nil(t, g.Region(cell(5, 5)))
	assert.True(t, g.Connected())
}
