// Package cache memoises Search Results keyed by a content hash of the
// grid and the algorithm.
//
// Two backends are provided: Memory (process-local, mutex guarded) and
// Redis (shared, JSON values with a TTL). Nop disables caching.
// Lookup ties a backend to pathfind.Run; backend failures are logged and
// the search runs uncached.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridnav/gridgraph"
	"github.com/katalvlaran/gridnav/pathfind"
)

// ErrUnknownBackend indicates a backend name outside memory|redis|none.
var ErrUnknownBackend = errors.New("cache: unknown backend")

// Backend names accepted by configuration.
const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
	BackendNone   = "none"
)

// Cache stores Results by key. Get reports a miss with ok == false and a
// nil error.
type Cache interface {
	Get(ctx context.Context, key string) (res *gridgraph.Result, ok bool, err error)
	Set(ctx context.Context, key string, res *gridgraph.Result) error
}

// Locker is implemented by backends shared between processes; Lookup holds
// the lock while it searches so one process computes each key.
type Locker interface {
	Lock(ctx context.Context, key string) (unlock func(), err error)
}

// Key returns a stable hex digest of (g, a). Equal grids give equal keys;
// different algorithms give different keys.
func Key(g *gridgraph.Grid, a pathfind.Algorithm) string {
	h := sha256.New()
	h.Write([]byte(a))
	h.Write([]byte{0})

	var buf [8]byte
	put := func(v int) {
		binary.BigEndian.PutUint64(buf[:], uint64(v))
		h.Write(buf[:])
	}
	put(g.Rows())
	put(g.Cols())
	put(g.Index(g.Start()))
	put(g.Index(g.End()))
	for _, w := range g.Walls() {
		put(g.Index(w))
	}

	return hex.EncodeToString(h.Sum(nil))
}

// Lookup returns the cached Result for (g, a) or runs the search and
// stores it. cached reports whether the Result came from c.
func Lookup(ctx context.Context, c Cache, g *gridgraph.Grid, a pathfind.Algorithm) (res *gridgraph.Result, cached bool, err error) {
	if !a.Valid() || g == nil {
		res, err = pathfind.Run(g, a)
		return res, false, err
	}
	key := Key(g, a)
	log := logrus.WithFields(logrus.Fields{"key": key[:12], "algorithm": a})

	if res, ok := get(ctx, c, key, log); ok {
		return res, true, nil
	}
	if l, ok := c.(Locker); ok {
		unlock, err := l.Lock(ctx, key)
		if err != nil {
			log.Warnf("cache lock failed: %v", err)
		} else {
			defer unlock()
			if res, ok := get(ctx, c, key, log); ok {
				return res, true, nil
			}
		}
	}

	res, err = pathfind.Run(g, a)
	if err != nil {
		return nil, false, err
	}
	if err := c.Set(ctx, key, res); err != nil {
		log.Warnf("cache set failed: %v", err)
	}

	return res, false, nil
}

func get(ctx context.Context, c Cache, key string, log *logrus.Entry) (*gridgraph.Result, bool) {
	res, ok, err := c.Get(ctx, key)
	if err != nil {
		log.Warnf("cache get failed: %v", err)
		return nil, false
	}
	if ok {
		log.Debug("cache hit")
	}

	return res, ok
}

// Nop never stores anything.
type Nop struct{}

// Get always misses.
func (Nop) Get(context.Context, string) (*gridgraph.Result, bool, error) { return nil, false, nil }

// Set discards res.
func (Nop) Set(context.Context, string, *gridgraph.Result) error { return nil }
