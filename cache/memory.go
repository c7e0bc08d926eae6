package cache

import (
	"context"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/simplelru"

	"github.com/katalvlaran/gridnav/gridgraph"
)

// DefaultMaxEntries bounds a Memory cache when no size is given.
const DefaultMaxEntries = 256

type memoryItem struct {
	res     *gridgraph.Result
	expires time.Time
}

// Memory is a process-local Cache holding at most maxEntries Results;
// the least recently used entry is evicted first. A zero TTL keeps entries
// until they are evicted. Expired entries are swept on Set at most once per
// TTL. Stored Results are copied on the way in and out.
type Memory struct {
	mu        sync.Mutex
	items     *simplelru.LRU
	ttl       time.Duration
	now       func() time.Time
	nextSweep time.Time
}

// NewMemory returns an empty Memory cache. maxEntries <= 0 selects
// DefaultMaxEntries.
func NewMemory(ttl time.Duration, maxEntries int) *Memory {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	// NewLRU only fails on a non-positive size.
	items, _ := simplelru.NewLRU(maxEntries, nil)

	return &Memory{
		items: items,
		ttl:   ttl,
		now:   time.Now,
	}
}

// Get implements Cache.
func (m *Memory) Get(_ context.Context, key string) (*gridgraph.Result, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	v, ok := m.items.Get(key)
	if !ok {
		return nil, false, nil
	}
	it := v.(memoryItem)
	if m.expired(it, m.now()) {
		m.items.Remove(key)
		return nil, false, nil
	}

	return clone(it.res), true, nil
}

// Set implements Cache.
func (m *Memory) Set(_ context.Context, key string, res *gridgraph.Result) error {
	now := m.now()
	it := memoryItem{res: clone(res)}
	if m.ttl > 0 {
		it.expires = now.Add(m.ttl)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.sweep(now)
	m.items.Add(key, it)

	return nil
}

// Len returns the number of stored entries, expired ones not yet swept
// included.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.items.Len()
}

// sweep drops every expired entry once the previous sweep is a TTL old.
// Callers hold m.mu.
func (m *Memory) sweep(now time.Time) {
	if m.ttl <= 0 || now.Before(m.nextSweep) {
		return
	}
	for _, k := range m.items.Keys() {
		if v, ok := m.items.Peek(k); ok && m.expired(v.(memoryItem), now) {
			m.items.Remove(k)
		}
	}
	m.nextSweep = now.Add(m.ttl)
}

func (m *Memory) expired(it memoryItem, now time.Time) bool {
	return !it.expires.IsZero() && !now.Before(it.expires)
}

func clone(res *gridgraph.Result) *gridgraph.Result {
	if res == nil {
		return nil
	}

	return &gridgraph.Result{
		Visited: append([]gridgraph.Cell{}, res.Visited...),
		Path:    append([]gridgraph.Cell{}, res.Path...),
	}
}
