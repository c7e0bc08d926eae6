// Package pathfind selects one of the grid search strategies by name and
// runs it over a gridgraph.Grid.
//
// Supported selectors, in canonical order: "dijkstra", "bfs", "dfs".
// An unknown selector is rejected with ErrUnknownAlgorithm before the grid
// is touched; a nil grid is rejected with gridgraph.ErrInvalidGrid.
package pathfind

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/gridnav/bfs"
	"github.com/katalvlaran/gridnav/dfs"
	"github.com/katalvlaran/gridnav/dijkstra"
	"github.com/katalvlaran/gridnav/gridgraph"
)

// ErrUnknownAlgorithm indicates a selector outside Algorithms().
var ErrUnknownAlgorithm = errors.New("pathfind: unknown algorithm")

// Algorithm names a search strategy.
type Algorithm string

// Supported algorithms.
const (
	Dijkstra Algorithm = "dijkstra"
	BFS      Algorithm = "bfs"
	DFS      Algorithm = "dfs"
)

// Algorithms returns the supported algorithms in canonical order.
func Algorithms() []Algorithm {
	return []Algorithm{Dijkstra, BFS, DFS}
}

// Valid reports whether a is a supported algorithm.
func (a Algorithm) Valid() bool {
	switch a {
	case Dijkstra, BFS, DFS:
		return true
	}

	return false
}

// String returns the selector.
func (a Algorithm) String() string { return string(a) }

// ParseAlgorithm maps a selector to an Algorithm, ignoring case and
// surrounding space.
func ParseAlgorithm(s string) (Algorithm, error) {
	a := Algorithm(strings.ToLower(strings.TrimSpace(s)))
	if !a.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
	}

	return a, nil
}

// Run executes algorithm a on g with the given hooks.
func Run(g *gridgraph.Grid, a Algorithm, opts ...Option) (*gridgraph.Result, error) {
	if !a.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, string(a))
	}
	if g == nil {
		return nil, fmt.Errorf("%w: grid is nil", gridgraph.ErrInvalidGrid)
	}
	cfg := newConfig(opts...)

	switch a {
	case BFS:
		return bfs.BFS(g, bfs.WithOnVisit(cfg.onVisit))
	case DFS:
		return dfs.DFS(g, dfs.WithOnVisit(cfg.onVisit))
	default:
		return dijkstra.Dijkstra(g, dijkstra.WithOnFinalize(cfg.onVisit))
	}
}

// Search parses selector and runs the matching algorithm on g.
func Search(g *gridgraph.Grid, selector string, opts ...Option) (*gridgraph.Result, error) {
	a, err := ParseAlgorithm(selector)
	if err != nil {
		return nil, err
	}

	return Run(g, a, opts...)
}
