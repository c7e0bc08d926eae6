package gridgraph_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridnav/gridgraph"
)

func cell(r, c int) gridgraph.Cell { return gridgraph.Cell{Row: r, Col: c} }

//----------------------------------------------------------------------------//
// New and FromMatrix Tests
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects every invalid layout with ErrInvalidGrid.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name       string
		rows, cols int
		start, end gridgraph.Cell
		walls      []gridgraph.Cell
	}{
		{"ZeroRows", 0, 5, cell(0, 0), cell(0, 1), nil},
		{"NegativeCols", 5, -1, cell(0, 0), cell(0, 1), nil},
		{"ProductWrapsToZero", math.MaxInt/2 + 1, 4, cell(0, 0), cell(0, 1), nil},
		{"ProductWrapsNegative", math.MaxInt/2 + 1, 3, cell(0, 0), cell(0, 1), nil},
		{"AboveMaxCells", gridgraph.MaxCells/2 + 1, 2, cell(0, 0), cell(0, 1), nil},
		{"StartEqualsEnd", 5, 5, cell(2, 2), cell(2, 2), nil},
		{"StartOutOfBounds", 5, 5, cell(5, 0), cell(0, 1), nil},
		{"EndOutOfBounds", 5, 5, cell(0, 0), cell(0, -1), nil},
		{"StartOnWall", 5, 5, cell(0, 0), cell(4, 4), []gridgraph.Cell{cell(0, 0)}},
		{"EndOnWall", 5, 5, cell(0, 0), cell(4, 4), []gridgraph.Cell{cell(1, 1), cell(4, 4)}},
		{"WallOutOfBounds", 5, 5, cell(0, 0), cell(4, 4), []gridgraph.Cell{cell(9, 9)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := gridgraph.New(tc.rows, tc.cols, tc.start, tc.end, tc.walls)
			assert.Nil(t, g)
			assert.ErrorIs(t, err, gridgraph.ErrInvalidGrid)
		})
	}
}

// TestNew_CopiesWalls ensures later mutation of the input does not leak in.
func TestNew_CopiesWalls(t *testing.T) {
	walls := []gridgraph.Cell{cell(1, 1)}
	g, err := gridgraph.New(3, 3, cell(0, 0), cell(2, 2), walls)
	require.NoError(t, err)
	walls[0] = cell(1, 2)

	assert.True(t, g.IsWall(cell(1, 1)))
	assert.False(t, g.IsWall(cell(1, 2)))
	assert.Equal(t, []gridgraph.Cell{cell(1, 1)}, g.Walls())
}

// TestNew_DuplicateWalls tolerates repeated wall entries.
func TestNew_DuplicateWalls(t *testing.T) {
	g, err := gridgraph.New(2, 3, cell(0, 0), cell(1, 2), []gridgraph.Cell{cell(0, 1), cell(0, 1)})
	require.NoError(t, err)
	assert.Equal(t, []gridgraph.Cell{cell(0, 1)}, g.Walls())
}

// TestFromMatrix_Errors verifies that FromMatrix rejects empty, ragged or malformed inputs.
func TestFromMatrix_Errors(t *testing.T) {
	cases := []struct {
		name string
		grid [][]int
		err  error
	}{
		{"EmptyRows", [][]int{}, gridgraph.ErrEmptyGrid},
		{"EmptyCols", [][]int{{}}, gridgraph.ErrEmptyGrid},
		{"NonRectangular", [][]int{{2, 0}, {3}}, gridgraph.ErrNonRectangular},
		{"UnknownCode", [][]int{{2, 7, 3}}, gridgraph.ErrUnknownCellCode},
		{"NoStart", [][]int{{0, 0, 3}}, gridgraph.ErrInvalidGrid},
		{"TwoEnds", [][]int{{2, 3, 3}}, gridgraph.ErrInvalidGrid},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.FromMatrix(tc.grid)
			if !errors.Is(err, tc.err) {
				t.Errorf("FromMatrix(%v) error = %v; want %v", tc.grid, err, tc.err)
			}
			assert.ErrorIs(t, err, gridgraph.ErrInvalidGrid)
		})
	}
}

// TestFromMatrix_RoundTrip checks Matrix reproduces the input codes.
func TestFromMatrix_RoundTrip(t *testing.T) {
	m := [][]int{
		{2, 0, 1},
		{0, 1, 0},
		{0, 0, 3},
	}
	g, err := gridgraph.FromMatrix(m)
	require.NoError(t, err)

	assert.Equal(t, 3, g.Rows())
	assert.Equal(t, 3, g.Cols())
	assert.Equal(t, cell(0, 0), g.Start())
	assert.Equal(t, cell(2, 2), g.End())
	assert.Equal(t, []gridgraph.Cell{cell(0, 2), cell(1, 1)}, g.Walls())
	assert.Equal(t, m, g.Matrix())
}

//----------------------------------------------------------------------------//
// Accessor Tests
//----------------------------------------------------------------------------//

// TestInBounds checks InBounds on a 2×3 grid.
func TestInBounds(t *testing.T) {
	g, err := gridgraph.New(2, 3, cell(0, 0), cell(1, 2), nil)
	require.NoError(t, err)

	for _, c := range []gridgraph.Cell{cell(0, 0), cell(1, 2), cell(1, 1)} {
		assert.True(t, g.InBounds(c), "InBounds(%v)", c)
	}
	for _, c := range []gridgraph.Cell{cell(-1, 0), cell(0, 3), cell(2, 1), cell(1, -1)} {
		assert.False(t, g.InBounds(c), "InBounds(%v)", c)
		assert.False(t, g.IsWall(c), "IsWall(%v)", c)
		assert.False(t, g.IsOpen(c), "IsOpen(%v)", c)
	}
}

// TestNeighbors_Order verifies East, South, West, North ordering and wall/bound filtering.
func TestNeighbors_Order(t *testing.T) {
	g, err := gridgraph.New(3, 3, cell(0, 0), cell(2, 2), nil)
	require.NoError(t, err)
	assert.Equal(t,
		[]gridgraph.Cell{cell(1, 2), cell(2, 1), cell(1, 0), cell(0, 1)},
		g.Neighbors(cell(1, 1)))
	assert.Equal(t, []gridgraph.Cell{cell(0, 1), cell(1, 0)}, g.Neighbors(cell(0, 0)))

	walled, err := gridgraph.New(3, 3, cell(0, 0), cell(2, 2), []gridgraph.Cell{cell(1, 2), cell(0, 1)})
	require.NoError(t, err)
	assert.Equal(t, []gridgraph.Cell{cell(2, 1), cell(1, 0)}, walled.Neighbors(cell(1, 1)))
}

// TestIndexCoordinate checks the row-major mapping in both directions.
func TestIndexCoordinate(t *testing.T) {
	g, err := gridgraph.New(3, 4, cell(0, 0), cell(2, 3), nil)
	require.NoError(t, err)
	for i := 0; i < g.Size(); i++ {
		c := g.Coordinate(i)
		assert.Equal(t, i, g.Index(c))
	}
	assert.Equal(t, cell(1, 2), g.Coordinate(6))
}

// TestCellHelpers covers Adjacent, Manhattan and String.
func TestCellHelpers(t *testing.T) {
	assert.True(t, cell(1, 1).Adjacent(cell(1, 2)))
	assert.True(t, cell(1, 1).Adjacent(cell(0, 1)))
	assert.False(t, cell(1, 1).Adjacent(cell(2, 2)))
	assert.False(t, cell(1, 1).Adjacent(cell(1, 1)))
	assert.Equal(t, 8, cell(0, 0).Manhattan(cell(4, 4)))
	assert.Equal(t, "(3,7)", cell(3, 7).String())
}

// TestResult_FoundLength covers the Result helpers including nil and empty paths.
func TestResult_FoundLength(t *testing.T) {
	var nilRes *gridgraph.Result
	assert.False(t, nilRes.Found())
	assert.Equal(t, 0, nilRes.Length())

	empty := &gridgraph.Result{Visited: []gridgraph.Cell{cell(0, 0)}, Path: []gridgraph.Cell{}}
	assert.False(t, empty.Found())
	assert.Equal(t, 0, empty.Length())

	res := &gridgraph.Result{Path: []gridgraph.Cell{cell(0, 0), cell(0, 1), cell(1, 1)}}
	assert.True(t, res.Found())
	assert.Equal(t, 2, res.Length())
}
