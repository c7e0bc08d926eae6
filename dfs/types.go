// Package dfs defines types and options for depth-first search over a
// gridgraph.Grid, including a visit hook and per-cell visitation states.
package dfs

import (
	"errors"

	"github.com/katalvlaran/gridnav/gridgraph"
)

// Cell visitation states during DFS.
const (
	White = iota // White: the cell has not been discovered yet.
	Gray         // Gray: the cell is on the stack (discovered, not finalized).
	Black        // Black: the cell has been popped and finalized.
)

var (
	// ErrGridNil is returned when a nil *gridgraph.Grid is passed to DFS.
	ErrGridNil = errors.New("dfs: grid is nil")
)

// Option configures optional behavior of DFS traversal.
// Use with DFS(g, opts...).
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS traversal.
type DFSOptions struct {
	// OnVisit, if non-nil, is invoked when a cell is finalized, with its depth
	// (edges from start along the DFS tree).
	// Returning an error aborts traversal with that error.
	OnVisit func(c gridgraph.Cell, depth int) error

	// OnPush, if non-nil, is invoked each time a cell is pushed on the stack.
	OnPush func(c gridgraph.Cell)
}

// DefaultOptions returns a DFSOptions struct with no hooks.
func DefaultOptions() DFSOptions {
	return DFSOptions{
		OnVisit: nil,
		OnPush:  nil,
	}
}

// WithOnVisit returns an Option that installs fn as a finalize hook.
func WithOnVisit(fn func(c gridgraph.Cell, depth int) error) Option {
	return func(o *DFSOptions) {
		o.OnVisit = fn
	}
}

// WithOnPush returns an Option that installs fn as a push hook.
func WithOnPush(fn func(c gridgraph.Cell)) Option {
	return func(o *DFSOptions) {
		o.OnPush = fn
	}
}
