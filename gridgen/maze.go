package gridgen

import (
	"fmt"

	"github.com/katalvlaran/gridnav/gridgraph"
)

const methodMaze = "Maze"

// mazeSteps are the moves between maze rooms in East, South, West, North
// order.
var mazeSteps = [4][2]int{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}

// Maze carves a perfect maze of cellRows×cellCols rooms with Wilson's
// loop-erased random walk. Rooms sit on odd coordinates of a
// (2·cellRows+1)×(2·cellCols+1) grid; everything not carved is a wall,
// so exactly one simple path joins any two open cells.
//
// Start defaults to the top-left room and End to the bottom-right room;
// pinning either onto a wall fails with gridgraph.ErrInvalidGrid.
// An RNG is always required.
func Maze(cellRows, cellCols int, opts ...Option) (*gridgraph.Grid, error) {
	if cellRows < 1 || cellCols < 1 {
		return nil, fmt.Errorf("%s: %dx%d rooms: %w", methodMaze, cellRows, cellCols, ErrTooFewCells)
	}
	if cellRows > gridgraph.MaxCells/2 || cellCols > gridgraph.MaxCells/2 ||
		2*cellRows+1 > gridgraph.MaxCells/(2*cellCols+1) {
		return nil, fmt.Errorf("%s: %dx%d rooms: %w: %w", methodMaze, cellRows, cellCols, gridgraph.ErrInvalidGrid, gridgraph.ErrTooLarge)
	}
	if cellRows*cellCols < minCells {
		return nil, fmt.Errorf("%s: %dx%d rooms: %w", methodMaze, cellRows, cellCols, ErrTooFewCells)
	}
	cfg := newConfig(opts...)
	if cfg.rng == nil {
		return nil, fmt.Errorf("%s: %w", methodMaze, ErrNeedRandSource)
	}

	rows, cols := 2*cellRows+1, 2*cellCols+1
	open := make([]bool, rows*cols)
	room := func(k int) (int, int) { return 2*(k/cellCols) + 1, 2*(k%cellCols) + 1 }

	n := cellRows * cellCols
	inTree := make([]bool, n)
	next := make([]int, n)
	root := cfg.rng.Intn(n)
	inTree[root] = true
	r, c := room(root)
	open[r*cols+c] = true

	var steps []int
	for k := 0; k < n; k++ {
		// Random walk until the tree is hit; next[] keeps only the last
		// exit from each room, which erases loops.
		for u := k; !inTree[u]; u = next[u] {
			steps = steps[:0]
			ur, uc := u/cellCols, u%cellCols
			for _, d := range mazeSteps {
				vr, vc := ur+d[0], uc+d[1]
				if vr >= 0 && vr < cellRows && vc >= 0 && vc < cellCols {
					steps = append(steps, vr*cellCols+vc)
				}
			}
			next[u] = steps[cfg.rng.Intn(len(steps))]
		}
		for u := k; !inTree[u]; u = next[u] {
			inTree[u] = true
			ur, uc := room(u)
			vr, vc := room(next[u])
			open[ur*cols+uc] = true
			open[((ur+vr)/2)*cols+(uc+vc)/2] = true
		}
	}

	start := gridgraph.Cell{Row: 1, Col: 1}
	end := gridgraph.Cell{Row: rows - 2, Col: cols - 2}
	if cfg.start != nil {
		start = *cfg.start
	}
	if cfg.end != nil {
		end = *cfg.end
	}

	walls := make([]gridgraph.Cell, 0, len(open))
	for i, ok := range open {
		if !ok {
			walls = append(walls, gridgraph.Cell{Row: i / cols, Col: i % cols})
		}
	}

	g, err := gridgraph.New(rows, cols, start, end, walls)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodMaze, err)
	}

	return g, nil
}
