// Package gridgraph defines core types and sentinel errors for the
// gridgraph subpackage of github.com/katalvlaran/gridnav.
package gridgraph

import (
	"errors"
	"fmt"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrInvalidGrid indicates a grid model that cannot be searched: bad
	// dimensions, missing/out-of-bounds/equal endpoints, or an endpoint on a wall.
	// Every construction failure wraps it.
	ErrInvalidGrid = errors.New("gridgraph: invalid grid")
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrUnknownCellCode indicates a matrix value outside {Empty, Wall, Start, End}.
	ErrUnknownCellCode = errors.New("gridgraph: unknown cell code")
	// ErrTooLarge indicates rows×cols above MaxCells.
	ErrTooLarge = errors.New("gridgraph: grid too large")
)

// MaxCells bounds rows×cols for any Grid; larger boards are rejected
// before the wall mask is allocated.
const MaxCells = 1 << 28

// Matrix cell codes, as produced by the grid editor.
const (
	CodeEmpty = iota // CodeEmpty marks an open cell.
	CodeWall         // CodeWall marks an impassable cell.
	CodeStart        // CodeStart marks the start cell.
	CodeEnd          // CodeEnd marks the end cell.
)

// Cell addresses one grid square. Cells are values; equality is by coordinate.
type Cell struct {
	Row int `json:"row" yaml:"row"`
	Col int `json:"col" yaml:"col"`
}

// String formats the cell as "(row,col)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Adjacent reports whether c and o share an edge (4-connectivity).
func (c Cell) Adjacent(o Cell) bool {
	dr, dc := c.Row-o.Row, c.Col-o.Col
	if dr < 0 {
		dr = -dr
	}
	if dc < 0 {
		dc = -dc
	}

	return dr+dc == 1
}

// Manhattan returns the L1 distance between c and o.
func (c Cell) Manhattan(o Cell) int {
	dr, dc := c.Row-o.Row, c.Col-o.Col
	if dr < 0 {
		dr = -dr
	}
	if dc < 0 {
		dc = -dc
	}

	return dr + dc
}

// neighborOffsets lists (dRow, dCol) in the fixed expansion order:
// East, South, West, North. Search traces depend on this order.
var neighborOffsets = [4][2]int{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}

// Grid is an immutable snapshot of one puzzle instance: dimensions, start,
// end and the wall mask. walls is row-major: walls[row*cols+col].
type Grid struct {
	rows, cols int
	start, end Cell
	walls      []bool
}

// Result is the outcome of one search invocation.
//
//   - Visited: cells in the exact order the algorithm finalized them; no duplicates.
//   - Path: start..end inclusive, or empty when end is unreachable.
type Result struct {
	Visited []Cell `json:"visited"`
	Path    []Cell `json:"path"`
}

// Found reports whether a path to the end cell was recovered.
func (r *Result) Found() bool {
	return r != nil && len(r.Path) > 0
}

// Length returns the path length in edges, or 0 when no path exists.
func (r *Result) Length() int {
	if !r.Found() {
		return 0
	}

	return len(r.Path) - 1
}
