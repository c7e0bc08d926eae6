// Package bfs provides breadth-first search over a gridgraph.Grid,
// returning the visit order and the shortest path by edge count.
//
// BFS explores cells in increasing distance from the start cell and stops
// as soon as the end cell is dequeued.
package bfs

import (
	"fmt"

	"github.com/katalvlaran/gridnav/gridgraph"
)

// queueItem pairs a cell with its BFS depth.
type queueItem struct {
	cell  gridgraph.Cell
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	grid    *gridgraph.Grid
	opts    BFSOptions
	queue   []queueItem
	visited []bool
	prev    map[gridgraph.Cell]gridgraph.Cell
	order   []gridgraph.Cell
}

// BFS runs breadth-first search on g from g.Start() towards g.End(),
// applying any number of functional Options.
// Returns ErrGridNil for a nil grid, or any user-supplied hook error.
// An unreachable end is not an error: the result has an empty Path.
func BFS(g *gridgraph.Grid, opts ...Option) (*gridgraph.Result, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	n := g.Size()
	w := &walker{
		grid:    g,
		opts:    o,
		queue:   make([]queueItem, 0, n),
		visited: make([]bool, n),
		prev:    make(map[gridgraph.Cell]gridgraph.Cell, n),
		order:   make([]gridgraph.Cell, 0, n),
	}

	// Seed queue with start cell (no predecessor)
	w.visited[g.Index(g.Start())] = true
	w.queue = append(w.queue, queueItem{cell: g.Start()})
	if err := w.loop(); err != nil {
		return nil, err
	}

	return &gridgraph.Result{
		Visited: w.order,
		Path:    gridgraph.Reconstruct(w.prev, g.Start(), g.End()),
	}, nil
}

// loop processes the queue until empty, end dequeued, or hook error.
func (w *walker) loop() error {
	end := w.grid.End()
	for len(w.queue) > 0 {
		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		if item.cell == end {
			return nil
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

// dequeue pops the first item.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]

	return item
}

// visit records the cell in the visit order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.order = append(w.order, item.cell)
	if err := w.opts.OnVisit(item.cell, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %v: %w", item.cell, err)
	}

	return nil
}

// enqueueNeighbors marks, links and enqueues each unseen open neighbor.
func (w *walker) enqueueNeighbors(item queueItem) {
	for _, nbr := range w.grid.Neighbors(item.cell) {
		idx := w.grid.Index(nbr)
		if w.visited[idx] {
			continue
		}
		w.visited[idx] = true
		w.prev[nbr] = item.cell
		w.opts.OnEnqueue(nbr, item.depth+1)
		w.queue = append(w.queue, queueItem{cell: nbr, depth: item.depth + 1})
	}
}
