package gridgen_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridnav/gridgen"
	"github.com/katalvlaran/gridnav/gridgraph"
)

func TestRandom_Validation(t *testing.T) {
	_, err := gridgen.Random(0, 5, 0.2, gridgen.WithSeed(1))
	assert.ErrorIs(t, err, gridgen.ErrTooFewCells)

	_, err = gridgen.Random(1, 1, 0.2, gridgen.WithSeed(1))
	assert.ErrorIs(t, err, gridgen.ErrTooFewCells)

	_, err = gridgen.Random(5, 5, -0.1, gridgen.WithSeed(1))
	assert.ErrorIs(t, err, gridgen.ErrInvalidProbability)

	_, err = gridgen.Random(5, 5, 1.5, gridgen.WithSeed(1))
	assert.ErrorIs(t, err, gridgen.ErrInvalidProbability)

	_, err = gridgen.Random(5, 5, 0.3)
	assert.ErrorIs(t, err, gridgen.ErrNeedRandSource)

	_, err = gridgen.Random(math.MaxInt/2+1, 4, 0.3, gridgen.WithSeed(1))
	assert.ErrorIs(t, err, gridgraph.ErrInvalidGrid)
	assert.ErrorIs(t, err, gridgraph.ErrTooLarge)
}

func TestRandom_Deterministic(t *testing.T) {
	a, err := gridgen.Random(20, 30, 0.3, gridgen.WithSeed(7))
	require.NoError(t, err)
	b, err := gridgen.Random(20, 30, 0.3, gridgen.WithSeed(7))
	require.NoError(t, err)

	assert.Equal(t, a.Start(), b.Start())
	assert.Equal(t, a.End(), b.End())
	assert.Equal(t, a.Walls(), b.Walls())
	assert.NotEqual(t, a.Start(), a.End())
}

func TestRandom_PinnedEndpointsNoRNG(t *testing.T) {
	start := gridgraph.Cell{Row: 0, Col: 0}
	end := gridgraph.Cell{Row: 2, Col: 3}

	open, err := gridgen.Random(3, 4, 0, gridgen.WithStart(start), gridgen.WithEnd(end))
	require.NoError(t, err)
	assert.Empty(t, open.Walls())

	full, err := gridgen.Random(3, 4, 1, gridgen.WithStart(start), gridgen.WithEnd(end))
	require.NoError(t, err)
	assert.Len(t, full.Walls(), 3*4-2)
	assert.False(t, full.IsWall(start))
	assert.False(t, full.IsWall(end))
}

func TestRandom_PinnedOutOfBounds(t *testing.T) {
	_, err := gridgen.Random(3, 3, 0.5,
		gridgen.WithSeed(1),
		gridgen.WithStart(gridgraph.Cell{Row: 5, Col: 5}),
	)
	assert.ErrorIs(t, err, gridgraph.ErrInvalidGrid)
}

func TestRandom_DrawAvoidsPinnedEnd(t *testing.T) {
	end := gridgraph.Cell{Row: 0, Col: 1}
	for seed := int64(0); seed < 50; seed++ {
		g, err := gridgen.Random(1, 2, 0, gridgen.WithSeed(seed), gridgen.WithEnd(end))
		require.NoError(t, err)
		assert.Equal(t, gridgraph.Cell{Row: 0, Col: 0}, g.Start())
	}
}

func TestRandom_Density(t *testing.T) {
	g, err := gridgen.Random(50, 100, 0.3, gridgen.WithRand(rand.New(rand.NewSource(42))))
	require.NoError(t, err)
	ratio := float64(len(g.Walls())) / float64(g.Size()-2)
	assert.InDelta(t, 0.3, ratio, 0.05)
}

func TestWithRandNilPanics(t *testing.T) {
	assert.Panics(t, func() { gridgen.WithRand(nil) })
}
