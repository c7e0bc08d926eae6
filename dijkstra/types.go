// Package dijkstra defines options and sentinel errors for uniform-cost
// search over a gridgraph.Grid.
//
// Every move costs 1, so distances equal BFS depths, but the frontier is a
// cost-ordered min-heap rather than a FIFO queue: ties are broken by
// insertion order, which yields its own visit order and, among equally
// short paths, its own choice of path.
//
// Options:
//
//	– OnFinalize: called when a cell's distance becomes final; may abort.
//	– OnRelax:    called when a neighbor's best-known distance improves.
//
// Errors (sentinel):
//
//	– ErrGridNil if the provided grid pointer is nil.
package dijkstra

import (
	"errors"

	"github.com/katalvlaran/gridnav/gridgraph"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrGridNil indicates that a nil *gridgraph.Grid was passed to Dijkstra.
	ErrGridNil = errors.New("dijkstra: grid is nil")
)

// Options configures the observable behavior of the Dijkstra search.
//
// OnFinalize – invoked once per cell, in Visited order, with its final distance.
//
//	Returning an error aborts the search.
//
// OnRelax – invoked each time dist[to] strictly improves via from.
type Options struct {
	OnFinalize func(c gridgraph.Cell, dist int) error
	OnRelax    func(from, to gridgraph.Cell, dist int)
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithOnFinalize installs a hook called when a cell is finalized.
func WithOnFinalize(fn func(c gridgraph.Cell, dist int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnFinalize = fn
		}
	}
}

// WithOnRelax installs a hook called on every successful relaxation.
func WithOnRelax(fn func(from, to gridgraph.Cell, dist int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRelax = fn
		}
	}
}

// DefaultOptions returns Options with no-op hooks.
func DefaultOptions() Options {
	return Options{
		OnFinalize: func(gridgraph.Cell, int) error { return nil },
		OnRelax:    func(gridgraph.Cell, gridgraph.Cell, int) {},
	}
}
