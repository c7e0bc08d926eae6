package gridgen

import (
	"math/rand"

	"github.com/katalvlaran/gridnav/gridgraph"
)

// Option customizes a generator call.
type Option func(*config)

type config struct {
	rng   *rand.Rand
	start *gridgraph.Cell
	end   *gridgraph.Cell
}

func newConfig(opts ...Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithRand supplies the RNG used for every draw. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("gridgen: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithSeed seeds a fresh RNG so outcomes are reproducible.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithStart pins the start cell instead of drawing it.
func WithStart(cell gridgraph.Cell) Option {
	return func(c *config) {
		c.start = &cell
	}
}

// WithEnd pins the end cell instead of drawing it.
func WithEnd(cell gridgraph.Cell) Option {
	return func(c *config) {
		c.end = &cell
	}
}
