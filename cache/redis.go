package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"

	"github.com/katalvlaran/gridnav/gridgraph"
)

const redisPrefix = "gridnav:result:"

// Redis is a Cache shared through a Redis server. Values are JSON encoded
// Results stored with the configured TTL.
type Redis struct {
	client *redis.Client
	locker *redsync.Redsync
	ttl    time.Duration
}

// NewRedis wraps client. A zero ttl stores keys without expiry.
func NewRedis(client *redis.Client, ttl time.Duration) *Redis {
	return &Redis{
		client: client,
		locker: redsync.New(goredis.NewPool(client)),
		ttl:    ttl,
	}
}

// Get implements Cache.
func (r *Redis) Get(ctx context.Context, key string) (*gridgraph.Result, bool, error) {
	data, err := r.client.Get(ctx, redisPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("cache: redis get: %w", err)
	}

	var res gridgraph.Result
	if err := json.Unmarshal(data, &res); err != nil {
		return nil, false, fmt.Errorf("cache: decode %s: %w", key, err)
	}

	return &res, true, nil
}

// Set implements Cache.
func (r *Redis) Set(ctx context.Context, key string, res *gridgraph.Result) error {
	data, err := json.Marshal(res)
	if err != nil {
		return fmt.Errorf("cache: encode %s: %w", key, err)
	}
	if err := r.client.Set(ctx, redisPrefix+key, data, r.ttl).Err(); err != nil {
		return fmt.Errorf("cache: redis set: %w", err)
	}

	return nil
}

// Lock implements Locker with a redsync mutex on the key.
func (r *Redis) Lock(ctx context.Context, key string) (func(), error) {
	mutex := r.locker.NewMutex(redisPrefix + key + ":lock")
	if err := mutex.LockContext(ctx); err != nil {
		return nil, err
	}

	return func() {
		_, _ = mutex.Unlock()
	}, nil
}

// Ping checks connectivity.
func (r *Redis) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
