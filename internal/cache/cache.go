package cache

import (
	"context"
	"errors"
	"fmt"
	"time"
)

const (
	RedisBackend  = "redis"
	MemoryBackend = "memory"
)

var ErrCacheMiss = errors.New("cache: key not found")

// Cache is our generic cache interface.
type Cache[V any] interface {
	// Get returns the value or ErrCacheMiss.
	Get(ctx context.Context, key string) (V, error)
	// Set stores value under key, with TTL. Zero ttl = no expiration.
	Set(ctx context.Context, key string, value V, ttl time.Duration) error
	// Delete removes the key.
	Delete(ctx context.Context, key string) error
}

// Config selects and tunes a cache backend
type Config struct {
	Backend       string        `env:"CACHE_BACKEND" env-default:"memory" validate:"oneof=memory redis"`
	TTL           time.Duration `env:"CACHE_TTL" env-default:"10m"`
	RedisAddr     string        `env:"REDIS_ADDR" env-default:"localhost:6379"`
	RedisPassword string        `env:"REDIS_PASSWORD"`
	RedisDB       int           `env:"REDIS_DB" env-default:"0"`
	RedisPoolSize int           `env:"REDIS_POOL_SIZE" env-default:"10"`
}

// Validate checks the config values
func (c *Config) Validate() error {
	switch c.Backend {
	case MemoryBackend:
		return nil
	case RedisBackend:
		if c.RedisAddr == "" {
			return fmt.Errorf("cache: redis backend requires an address")
		}
		return nil
	default:
		return fmt.Errorf("cache: unknown backend %q", c.Backend)
	}
}

// GetDefaultConfig returns an in-process cache config
func GetDefaultConfig() Config {
	return Config{Backend: MemoryBackend, TTL: 10 * time.Minute}
}

// New builds the backend named in cfg
func New[V any](cfg Config) (Cache[V], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Backend == RedisBackend {
		return NewRedisCache[V](&RedisOptions{
			Addr:            cfg.RedisAddr,
			Password:        cfg.RedisPassword,
			DB:              cfg.RedisDB,
			PoolSize:        cfg.RedisPoolSize,
			MaxRetries:      2,
			MinRetryBackoff: 8 * time.Millisecond,
			MaxRetryBackoff: 512 * time.Millisecond,
		}), nil
	}
	return NewMemoryCache[V](), nil
}
