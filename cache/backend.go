package cache

import (
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// Options selects and configures a backend.
type Options struct {
	Backend   string
	RedisAddr string
	TTL       time.Duration
	// MaxEntries bounds the memory backend; <= 0 selects DefaultMaxEntries.
	MaxEntries int
}

// New builds the backend named by opts.Backend. An empty name selects
// memory.
func New(opts Options) (Cache, error) {
	switch strings.ToLower(strings.TrimSpace(opts.Backend)) {
	case "", BackendMemory:
		return NewMemory(opts.TTL, opts.MaxEntries), nil
	case BackendRedis:
		if opts.RedisAddr == "" {
			return nil, fmt.Errorf("cache: redis backend needs an address")
		}
		client := redis.NewClient(&redis.Options{Addr: opts.RedisAddr})
		return NewRedis(client, opts.TTL), nil
	case BackendNone:
		return Nop{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, opts.Backend)
	}
}
