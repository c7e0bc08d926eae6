// Package gridgraph provides an immutable model of a rectangular obstacle grid
// and treats it as an unweighted 4-connected graph. It supports:
//
//   - Validated construction from dimensions + endpoints + walls, or from a code matrix
//   - Fixed-order neighbor expansion (East, South, West, North)
//   - Identification of connected regions of open cells
//   - Predecessor-chain path reconstruction shared by all searches
package gridgraph

import (
	"fmt"
)

// New constructs a Grid of rows×cols with the given endpoints and walls.
// The walls slice is copied; duplicate entries are tolerated.
// Returns an error wrapping ErrInvalidGrid if dimensions are not positive
// or exceed MaxCells,
// an endpoint is out of bounds, start equals end, a wall lies outside the
// grid, or an endpoint coincides with a wall.
// Algorithmic complexity: O(rows×cols + len(walls)) time and memory.
func New(rows, cols int, start, end Cell, walls []Cell) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %w (rows=%d, cols=%d)", ErrInvalidGrid, ErrEmptyGrid, rows, cols)
	}
	if rows > MaxCells/cols {
		return nil, fmt.Errorf("%w: %w (rows=%d, cols=%d, max %d cells)", ErrInvalidGrid, ErrTooLarge, rows, cols, MaxCells)
	}
	g := &Grid{
		rows:  rows,
		cols:  cols,
		start: start,
		end:   end,
		walls: make([]bool, rows*cols),
	}
	if !g.InBounds(start) {
		return nil, fmt.Errorf("%w: start %v out of bounds %dx%d", ErrInvalidGrid, start, rows, cols)
	}
	if !g.InBounds(end) {
		return nil, fmt.Errorf("%w: end %v out of bounds %dx%d", ErrInvalidGrid, end, rows, cols)
	}
	if start == end {
		return nil, fmt.Errorf("%w: start and end are both %v", ErrInvalidGrid, start)
	}
	for _, w := range walls {
		if !g.InBounds(w) {
			return nil, fmt.Errorf("%w: wall %v out of bounds %dx%d", ErrInvalidGrid, w, rows, cols)
		}
		switch w {
		case start:
			return nil, fmt.Errorf("%w: start %v is a wall", ErrInvalidGrid, w)
		case end:
			return nil, fmt.Errorf("%w: end %v is a wall", ErrInvalidGrid, w)
		}
		g.walls[g.Index(w)] = true
	}

	return g, nil
}

// FromMatrix constructs a Grid from a non-empty, rectangular code matrix where
// values[row][col] is one of CodeEmpty, CodeWall, CodeStart or CodeEnd.
// Exactly one start and one end are required.
func FromMatrix(values [][]int) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, fmt.Errorf("%w: %w", ErrInvalidGrid, ErrEmptyGrid)
	}
	rows, cols := len(values), len(values[0])
	var (
		walls  []Cell
		starts []Cell
		ends   []Cell
	)
	for r, row := range values {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: %w (row %d has %d columns, want %d)",
				ErrInvalidGrid, ErrNonRectangular, r, len(row), cols)
		}
		for c, v := range row {
			cell := Cell{Row: r, Col: c}
			switch v {
			case CodeEmpty:
			case CodeWall:
				walls = append(walls, cell)
			case CodeStart:
				starts = append(starts, cell)
			case CodeEnd:
				ends = append(ends, cell)
			default:
				return nil, fmt.Errorf("%w: %w %d at %v", ErrInvalidGrid, ErrUnknownCellCode, v, cell)
			}
		}
	}
	if len(starts) != 1 {
		return nil, fmt.Errorf("%w: want exactly one start, got %d", ErrInvalidGrid, len(starts))
	}
	if len(ends) != 1 {
		return nil, fmt.Errorf("%w: want exactly one end, got %d", ErrInvalidGrid, len(ends))
	}

	return New(rows, cols, starts[0], ends[0], walls)
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Size returns rows×cols.
func (g *Grid) Size() int { return g.rows * g.cols }

// Start returns the start cell.
func (g *Grid) Start() Cell { return g.start }

// End returns the end cell.
func (g *Grid) End() Cell { return g.end }

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// IsWall reports whether c is an in-bounds wall cell.
// Complexity: O(1).
func (g *Grid) IsWall(c Cell) bool {
	return g.InBounds(c) && g.walls[g.Index(c)]
}

// IsOpen reports whether c is in bounds and not a wall.
func (g *Grid) IsOpen(c Cell) bool {
	return g.InBounds(c) && !g.walls[g.Index(c)]
}

// Walls returns the wall cells in row-major order.
func (g *Grid) Walls() []Cell {
	var out []Cell
	for i, w := range g.walls {
		if w {
			out = append(out, g.Coordinate(i))
		}
	}

	return out
}

// Neighbors returns the open in-bounds neighbors of c in the fixed order
// East, South, West, North.
// Complexity: O(1).
func (g *Grid) Neighbors(c Cell) []Cell {
	out := make([]Cell, 0, len(neighborOffsets))
	for _, d := range neighborOffsets {
		n := Cell{Row: c.Row + d[0], Col: c.Col + d[1]}
		if g.IsOpen(n) {
			out = append(out, n)
		}
	}

	return out
}

// Matrix returns the grid as a fresh code matrix (see FromMatrix).
func (g *Grid) Matrix() [][]int {
	m := make([][]int, g.rows)
	for r := 0; r < g.rows; r++ {
		m[r] = make([]int, g.cols)
		for c := 0; c < g.cols; c++ {
			if g.walls[r*g.cols+c] {
				m[r][c] = CodeWall
			}
		}
	}
	m[g.start.Row][g.start.Col] = CodeStart
	m[g.end.Row][g.end.Col] = CodeEnd

	return m
}

// Index maps c to a row-major index: row*Cols + col.
// Complexity: O(1).
func (g *Grid) Index(c Cell) int {
	return c.Row*g.cols + c.Col
}

// Coordinate converts a row-major index back to a Cell.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Cell {
	return Cell{Row: idx / g.cols, Col: idx % g.cols}
}
