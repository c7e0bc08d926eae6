package cache_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridnav/cache"
	"github.com/katalvlaran/gridnav/gridgraph"
	"github.com/katalvlaran/gridnav/internal/gridtest"
	"github.com/katalvlaran/gridnav/pathfind"
)

func TestKey(t *testing.T) {
	a := gridtest.Parse(t, "S.#\n...\n#.E")
	b := gridtest.Parse(t, "S.#\n...\n#.E")
	c := gridtest.Parse(t, "S..\n...\n#.E")

	assert.Equal(t, cache.Key(a, pathfind.BFS), cache.Key(b, pathfind.BFS))
	assert.NotEqual(t, cache.Key(a, pathfind.BFS), cache.Key(a, pathfind.DFS))
	assert.NotEqual(t, cache.Key(a, pathfind.BFS), cache.Key(c, pathfind.BFS))
	assert.Len(t, cache.Key(a, pathfind.Dijkstra), 64)
}

func TestMemory_GetSet(t *testing.T) {
	ctx := context.Background()
	m := cache.NewMemory(0, 0)

	_, ok, err := m.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)

	in := &gridgraph.Result{
		Visited: []gridgraph.Cell{{Row: 0, Col: 0}},
		Path:    []gridgraph.Cell{},
	}
	require.NoError(t, m.Set(ctx, "k", in))
	in.Visited[0] = gridgraph.Cell{Row: 9, Col: 9}

	out, ok, err := m.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, gridgraph.Cell{Row: 0, Col: 0}, out.Visited[0])
	assert.Equal(t, 1, m.Len())
}

func TestMemory_TTL(t *testing.T) {
	ctx := context.Background()
	m := cache.NewMemory(10*time.Millisecond, 0)
	require.NoError(t, m.Set(ctx, "k", &gridgraph.Result{}))

	_, ok, _ := m.Get(ctx, "k")
	assert.True(t, ok)

	time.Sleep(20 * time.Millisecond)
	_, ok, _ = m.Get(ctx, "k")
	assert.False(t, ok)
	assert.Equal(t, 0, m.Len())
}

// TestMemory_Bounded evicts the least recently used entry once full.
func TestMemory_Bounded(t *testing.T) {
	ctx := context.Background()
	m := cache.NewMemory(0, 3)
	for _, k := range []string{"a", "b", "c"} {
		require.NoError(t, m.Set(ctx, k, &gridgraph.Result{}))
	}
	_, ok, _ := m.Get(ctx, "a") // a becomes most recent
	require.True(t, ok)

	for _, k := range []string{"d", "e", "f", "g"} {
		require.NoError(t, m.Set(ctx, k, &gridgraph.Result{}))
		assert.LessOrEqual(t, m.Len(), 3)
	}
	assert.Equal(t, 3, m.Len())
	_, ok, _ = m.Get(ctx, "a")
	assert.False(t, ok)
	_, ok, _ = m.Get(ctx, "g")
	assert.True(t, ok)
}

// TestMemory_SweepsExpired drops expired keys that are never read again.
func TestMemory_SweepsExpired(t *testing.T) {
	ctx := context.Background()
	m := cache.NewMemory(10*time.Millisecond, 100)
	require.NoError(t, m.Set(ctx, "a", &gridgraph.Result{}))
	require.NoError(t, m.Set(ctx, "b", &gridgraph.Result{}))
	require.Equal(t, 2, m.Len())

	time.Sleep(20 * time.Millisecond)
	require.NoError(t, m.Set(ctx, "c", &gridgraph.Result{}))
	assert.Equal(t, 1, m.Len())
}

func TestLookup(t *testing.T) {
	ctx := context.Background()
	g := gridtest.Open(t, 4, 4, gridgraph.Cell{Row: 0, Col: 0}, gridgraph.Cell{Row: 3, Col: 3})
	m := cache.NewMemory(0, 0)

	first, cached, err := cache.Lookup(ctx, m, g, pathfind.BFS)
	require.NoError(t, err)
	assert.False(t, cached)

	second, cached, err := cache.Lookup(ctx, m, g, pathfind.BFS)
	require.NoError(t, err)
	assert.True(t, cached)
	assert.Equal(t, first, second)

	_, cached, err = cache.Lookup(ctx, m, g, pathfind.DFS)
	require.NoError(t, err)
	assert.False(t, cached)
	assert.Equal(t, 2, m.Len())
}

func TestLookup_Errors(t *testing.T) {
	ctx := context.Background()
	_, _, err := cache.Lookup(ctx, cache.Nop{}, nil, pathfind.Algorithm("astar"))
	assert.ErrorIs(t, err, pathfind.ErrUnknownAlgorithm)

	_, _, err = cache.Lookup(ctx, cache.Nop{}, nil, pathfind.BFS)
	assert.ErrorIs(t, err, gridgraph.ErrInvalidGrid)
}

type brokenCache struct{}

func (brokenCache) Get(context.Context, string) (*gridgraph.Result, bool, error) {
	return nil, false, errors.New("down")
}

func (brokenCache) Set(context.Context, string, *gridgraph.Result) error {
	return errors.New("down")
}

// TestLookup_BackendDown checks that a failing backend degrades to an
// uncached search.
func TestLookup_BackendDown(t *testing.T) {
	g := gridtest.Open(t, 2, 2, gridgraph.Cell{Row: 0, Col: 0}, gridgraph.Cell{Row: 1, Col: 1})
	res, cached, err := cache.Lookup(context.Background(), brokenCache{}, g, pathfind.Dijkstra)
	require.NoError(t, err)
	assert.False(t, cached)
	assert.True(t, res.Found())
}

func TestNew(t *testing.T) {
	c, err := cache.New(cache.Options{})
	require.NoError(t, err)
	assert.IsType(t, &cache.Memory{}, c)

	c, err = cache.New(cache.Options{Backend: "none"})
	require.NoError(t, err)
	assert.IsType(t, cache.Nop{}, c)

	c, err = cache.New(cache.Options{Backend: "redis", RedisAddr: "localhost:6379"})
	require.NoError(t, err)
	assert.IsType(t, &cache.Redis{}, c)

	_, err = cache.New(cache.Options{Backend: "redis"})
	assert.Error(t, err)

	_, err = cache.New(cache.Options{Backend: "memcached"})
	assert.ErrorIs(t, err, cache.ErrUnknownBackend)
}
