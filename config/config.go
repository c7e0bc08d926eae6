// Package config loads gridnav settings from defaults, an optional YAML
// file, a .env file and GRIDNAV_* environment variables, in increasing
// order of precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/katalvlaran/gridnav/cache"
	"github.com/katalvlaran/gridnav/replay"
)

// EnvPrefix prefixes every environment override, e.g. GRIDNAV_SERVER_ADDR.
const EnvPrefix = "GRIDNAV"

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid")

// Config is the full application configuration.
type Config struct {
	Server ServerConfig  `mapstructure:"server"`
	Cache  CacheConfig   `mapstructure:"cache"`
	Grid   GridConfig    `mapstructure:"grid"`
	Replay replay.Timing `mapstructure:"replay"`
	Log    LogConfig     `mapstructure:"log"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr string `mapstructure:"addr"`
	// Mode is the gin mode: debug, release or test.
	Mode string `mapstructure:"mode"`
}

// CacheConfig selects the Result cache backend.
type CacheConfig struct {
	Backend    string        `mapstructure:"backend"`
	Redis      RedisConfig   `mapstructure:"redis"`
	TTL        time.Duration `mapstructure:"ttl"`
	MaxEntries int           `mapstructure:"max_entries"`
}

// RedisConfig addresses the Redis backend.
type RedisConfig struct {
	Addr string `mapstructure:"addr"`
}

// GridConfig is the default board size for generated grids.
type GridConfig struct {
	Rows int `mapstructure:"rows"`
	Cols int `mapstructure:"cols"`
}

// LogConfig configures logging.
type LogConfig struct {
	Debug bool   `mapstructure:"debug"`
	Color bool   `mapstructure:"color"`
	Dir   string `mapstructure:"dir"`
}

// CacheOptions converts c into cache.Options.
func (c CacheConfig) CacheOptions() cache.Options {
	return cache.Options{Backend: c.Backend, RedisAddr: c.Redis.Addr, TTL: c.TTL, MaxEntries: c.MaxEntries}
}

// SetDefaults registers every key with its default value.
func SetDefaults(v *viper.Viper) {
	t := replay.DefaultTiming()
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.mode", "release")
	v.SetDefault("cache.backend", cache.BackendMemory)
	v.SetDefault("cache.redis.addr", "localhost:6379")
	v.SetDefault("cache.ttl", "10m")
	v.SetDefault("cache.max_entries", cache.DefaultMaxEntries)
	v.SetDefault("grid.rows", 50)
	v.SetDefault("grid.cols", 100)
	v.SetDefault("replay.visited_step", t.VisitedStep.String())
	v.SetDefault("replay.path_delay", t.PathDelay.String())
	v.SetDefault("replay.path_step", t.PathStep.String())
	v.SetDefault("replay.finish_delay", t.FinishDelay.String())
	v.SetDefault("log.debug", false)
	v.SetDefault("log.color", true)
	v.SetDefault("log.dir", "")
}

// Load resolves the configuration into v and decodes it. A missing file is
// not an error; an unreadable or malformed one is.
func Load(v *viper.Viper, file string) (*Config, error) {
	LoadDotEnv(".env")

	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("config: read %s: %w", file, err)
			}
			logrus.Debugf("config file %s not found, using defaults", file)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadDotEnv loads the given .env files into the process environment
// without overriding variables that are already set. Missing files are
// skipped.
func LoadDotEnv(files ...string) {
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			logrus.Warnf("failed to load %s: %v", f, err)
		}
	}
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	switch c.Cache.Backend {
	case cache.BackendMemory, cache.BackendRedis, cache.BackendNone:
	default:
		return fmt.Errorf("%w: cache.backend %q", ErrInvalidConfig, c.Cache.Backend)
	}
	if c.Cache.TTL < 0 {
		return fmt.Errorf("%w: cache.ttl %s", ErrInvalidConfig, c.Cache.TTL)
	}
	if c.Cache.MaxEntries < 0 {
		return fmt.Errorf("%w: cache.max_entries %d", ErrInvalidConfig, c.Cache.MaxEntries)
	}
	if c.Grid.Rows < 1 || c.Grid.Cols < 1 {
		return fmt.Errorf("%w: grid %dx%d", ErrInvalidConfig, c.Grid.Rows, c.Grid.Cols)
	}
	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("%w: server.mode %q", ErrInvalidConfig, c.Server.Mode)
	}
	if err := c.Replay.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}
