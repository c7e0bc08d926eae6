package bfs_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridnav/bfs"
	"github.com/katalvlaran/gridnav/gridgraph"
	"github.com/katalvlaran/gridnav/internal/gridtest"
)

func cell(r, c int) gridgraph.Cell { return gridgraph.Cell{Row: r, Col: c} }

// TestBFS_NilGrid verifies that a nil grid is rejected.
func TestBFS_NilGrid(t *testing.T) {
	res, err := bfs.BFS(nil)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, bfs.ErrGridNil)
}

// TestBFS_Trace pins the exact visit order and path on an open 3×3 grid.
func TestBFS_Trace(t *testing.T) {
	g := gridtest.Open(t, 3, 3, cell(0, 0), cell(2, 2))
	res, err := bfs.BFS(g)
	require.NoError(t, err)

	assert.Equal(t, []gridgraph.Cell{
		cell(0, 0), cell(0, 1), cell(1, 0), cell(0, 2), cell(1, 1),
		cell(2, 0), cell(1, 2), cell(2, 1), cell(2, 2),
	}, res.Visited)
	assert.Equal(t, []gridgraph.Cell{cell(0, 0), cell(0, 1), cell(0, 2), cell(1, 2), cell(2, 2)}, res.Path)
	gridtest.RequireValid(t, g, res)
}

// TestBFS_OpenGridManhattan searches a wall-free 5×5 board corner to corner;
// the path length is the Manhattan distance.
func TestBFS_OpenGridManhattan(t *testing.T) {
	g := gridtest.Open(t, 5, 5, cell(0, 0), cell(4, 4))
	res, err := bfs.BFS(g)
	require.NoError(t, err)
	require.True(t, res.Found())
	assert.Equal(t, 8, res.Length())
	gridtest.RequireValid(t, g, res)
}

// TestBFS_WallRow cuts the board with a full wall row; the path
// is empty and the visit order is exactly rows 0–1.
func TestBFS_WallRow(t *testing.T) {
	g := gridtest.Parse(t, `
		S....
		.....
		#####
		.....
		E....`)
	res, err := bfs.BFS(g)
	require.NoError(t, err)

	assert.False(t, res.Found())
	assert.Empty(t, res.Path)
	assert.Len(t, res.Visited, 10)
	for _, c := range res.Visited {
		assert.Less(t, c.Row, 2, "visited %v beyond the wall", c)
	}
	assert.True(t, gridtest.SameCells(g.Region(g.Start()), res.Visited))
	gridtest.RequireValid(t, g, res)
}

// TestBFS_Detour places one wall beside the start, which forces a
// detour of two extra moves.
func TestBFS_Detour(t *testing.T) {
	g, err := gridgraph.New(5, 5, cell(2, 0), cell(2, 4), []gridgraph.Cell{cell(2, 1)})
	require.NoError(t, err)
	res, err := bfs.BFS(g)
	require.NoError(t, err)

	assert.Equal(t, g.Start().Manhattan(g.End())+2, res.Length())
	assert.NotContains(t, res.Path, cell(2, 1))
	gridtest.RequireValid(t, g, res)
}

// TestBFS_StopsAtEnd ensures nothing is dequeued after the end cell.
func TestBFS_StopsAtEnd(t *testing.T) {
	g := gridtest.Open(t, 1, 5, cell(0, 0), cell(0, 1))
	res, err := bfs.BFS(g)
	require.NoError(t, err)
	assert.Equal(t, []gridgraph.Cell{cell(0, 0), cell(0, 1)}, res.Visited)
	assert.Equal(t, res.Visited, res.Path)
}

// TestBFS_Hooks asserts that hooks fire with BFS depths.
func TestBFS_Hooks(t *testing.T) {
	g := gridtest.Open(t, 1, 3, cell(0, 0), cell(0, 2))
	var enq, vis []int
	_, err := bfs.BFS(g,
		bfs.WithOnEnqueue(func(_ gridgraph.Cell, d int) { enq = append(enq, d) }),
		bfs.WithOnVisit(func(_ gridgraph.Cell, d int) error { vis = append(vis, d); return nil }),
	)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, enq)
	assert.Equal(t, []int{0, 1, 2}, vis)
}

// TestBFS_HookAbort verifies that an OnVisit error aborts and is wrapped.
func TestBFS_HookAbort(t *testing.T) {
	stop := errors.New("stop")
	g := gridtest.Open(t, 4, 4, cell(0, 0), cell(3, 3))
	res, err := bfs.BFS(g, bfs.WithOnVisit(func(c gridgraph.Cell, _ int) error {
		if c == cell(1, 1) {
			return stop
		}
		return nil
	}))
	assert.Nil(t, res)
	assert.ErrorIs(t, err, stop)
}

// TestBFS_Deterministic runs the same grid twice.
func TestBFS_Deterministic(t *testing.T) {
	g := gridtest.Parse(t, `
		S..#....
		.#.#.##.
		.#...#..
		.####.#.
		......#E`)
	a, err := bfs.BFS(g)
	require.NoError(t, err)
	b, err := bfs.BFS(g)
	require.NoError(t, err)
	assert.Equal(t, a, b)
	gridtest.RequireValid(t, g, a)
}
