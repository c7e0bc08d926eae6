package pathfind

import "github.com/katalvlaran/gridnav/gridgraph"

// Option customizes a Run.
type Option func(*config)

type config struct {
	onVisit func(c gridgraph.Cell, step int) error
}

func newConfig(opts ...Option) config {
	cfg := config{
		onVisit: func(gridgraph.Cell, int) error { return nil },
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithOnVisit installs a hook invoked for every cell appended to
// Result.Visited. step is the cell's depth (BFS, DFS) or distance
// (Dijkstra) from the start. A returned error aborts the search.
func WithOnVisit(fn func(c gridgraph.Cell, step int) error) Option {
	return func(c *config) {
		if fn != nil {
			c.onVisit = fn
		}
	}
}
