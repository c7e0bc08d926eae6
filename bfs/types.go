// Package bfs provides tunable options and error definitions
// for breadth‐first search over a gridgraph.Grid.
package bfs

import (
	"errors"

	"github.com/katalvlaran/gridnav/gridgraph"
)

// Sentinel errors for BFS execution.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("bfs: grid is nil")
)

// Option configures BFS behavior via functional arguments.
type Option func(*BFSOptions)

// BFSOptions holds callbacks to observe BFS execution.
type BFSOptions struct {
	// OnEnqueue is called when a cell is discovered and enqueued.
	// Receives the cell and its depth (edges from start).
	OnEnqueue func(c gridgraph.Cell, depth int)

	// OnVisit is called when a cell is dequeued and appended to the visit
	// order. If it returns an error, BFS aborts and propagates that error.
	OnVisit func(c gridgraph.Cell, depth int) error
}

// DefaultOptions returns a BFSOptions with no-op hooks.
func DefaultOptions() BFSOptions {
	return BFSOptions{
		OnEnqueue: func(gridgraph.Cell, int) {},
		OnVisit:   func(gridgraph.Cell, int) error { return nil },
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(c gridgraph.Cell, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(c gridgraph.Cell, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}
