// Package dfs implements stack-based depth-first search on a gridgraph.Grid.
//
// Key features:
//   - DFS(g, opts...): explore from Grid.Start until Grid.End is finalized
//   - Hooks: OnVisit (finalize, may abort) and OnPush
//   - Iterative: no recursion, so large open grids cannot exhaust the goroutine stack
//
// Complexity:
//
//   - Time:   O(W·H) cells, each pushed at most 4 times.
//   - Memory: O(W·H) for the stack, state and predecessor map.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/gridnav/gridgraph"
)

// stackItem is a stack entry: a cell and its depth along the DFS tree.
type stackItem struct {
	cell  gridgraph.Cell
	depth int
}

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	grid  *gridgraph.Grid
	opts  DFSOptions
	state []int // White, Gray or Black, row-major
	stack []stackItem
	prev  map[gridgraph.Cell]gridgraph.Cell
	order []gridgraph.Cell
}

// DFS performs depth-first search on grid g from g.Start().
//
// The stack is seeded with the start cell. Each pop skips Black cells,
// otherwise finalizes the cell (Black, appended to Visited) and stops if it
// is the end cell. Every open, non-Black neighbor is then pushed in the
// order East, South, West, North with its predecessor set to the popped
// cell; a neighbor already on the stack is pushed again and relinked, so
// the most recent discovery wins. LIFO order means North is explored first.
//
// The recovered path is a valid start→end path but not necessarily shortest.
// Returns ErrGridNil for a nil grid, or a wrapped OnVisit error.
func DFS(g *gridgraph.Grid, opts ...Option) (*gridgraph.Result, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	n := g.Size()
	w := &dfsWalker{
		grid:  g,
		opts:  dopts,
		state: make([]int, n),
		stack: make([]stackItem, 0, n),
		prev:  make(map[gridgraph.Cell]gridgraph.Cell, n),
		order: make([]gridgraph.Cell, 0, n),
	}
	w.push(g.Start(), 0)
	if err := w.run(); err != nil {
		return nil, err
	}

	return &gridgraph.Result{
		Visited: w.order,
		Path:    gridgraph.Reconstruct(w.prev, g.Start(), g.End()),
	}, nil
}

// push marks c Gray and places it on top of the stack.
func (w *dfsWalker) push(c gridgraph.Cell, depth int) {
	w.state[w.grid.Index(c)] = Gray
	w.stack = append(w.stack, stackItem{cell: c, depth: depth})
	if w.opts.OnPush != nil {
		w.opts.OnPush(c)
	}
}

// run drains the stack until it is empty or the end cell is finalized.
func (w *dfsWalker) run() error {
	end := w.grid.End()
	for len(w.stack) > 0 {
		top := w.stack[len(w.stack)-1]
		w.stack = w.stack[:len(w.stack)-1]
		idx := w.grid.Index(top.cell)
		if w.state[idx] == Black {
			continue
		}
		w.state[idx] = Black
		w.order = append(w.order, top.cell)
		if w.opts.OnVisit != nil {
			if err := w.opts.OnVisit(top.cell, top.depth); err != nil {
				return fmt.Errorf("dfs: OnVisit hook for %v: %w", top.cell, err)
			}
		}
		if top.cell == end {
			return nil
		}
		for _, nbr := range w.grid.Neighbors(top.cell) {
			if w.state[w.grid.Index(nbr)] == Black {
				continue
			}
			w.prev[nbr] = top.cell
			w.push(nbr, top.depth+1)
		}
	}

	return nil
}
