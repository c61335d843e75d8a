// Package redis opens the optional Redis client used for catalog caching.
package redis

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultCacheTTL is used when CACHE_TTL is unset or unparsable.
const DefaultCacheTTL = 5 * time.Minute

// ErrNotConfigured is returned by NewRedisClient when REDIS_HOST is empty.
var ErrNotConfigured = errors.New("redis not configured")

// Config holds the Redis connection settings.
type Config struct {
	Host     string
	Port     string
	Password string
	// CacheTTL is how long catalog query results stay cached.
	CacheTTL time.Duration
}

// Addr returns host:port, defaulting the port to 6379.
func (c Config) Addr() string {
	port := c.Port
	if port == "" {
		port = "6379"
	}
	return c.Host + ":" + port
}

// LoadConfigFromEnv reads REDIS_HOST, REDIS_PORT, REDIS_PASSWORD and CACHE_TTL.
// CACHE_TTL is a Go duration such as "10m".
func LoadConfigFromEnv() Config {
	ttl := DefaultCacheTTL
	if s := os.Getenv("CACHE_TTL"); s != "" {
		if d, err := time.ParseDuration(s); err == nil && d > 0 {
			ttl = d
		} else {
			slog.Warn("invalid CACHE_TTL, using default", "value", s, "default", DefaultCacheTTL)
		}
	}
	return Config{
		Host:     os.Getenv("REDIS_HOST"),
		Port:     os.Getenv("REDIS_PORT"),
		Password: os.Getenv("REDIS_PASSWORD"),
		CacheTTL: ttl,
	}
}

// NewRedisClient connects to Redis and pings it.
// Without a host it returns ErrNotConfigured so that callers can run without a cache.
func NewRedisClient(ctx context.Context, cfg Config) (*redis.Client, error) {
	if cfg.Host == "" {
		return nil, ErrNotConfigured
	}
	addr := cfg.Addr()
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: cfg.Password,
		DB:       0,
	})

	// 接続確認
	if err := rdb.Ping(ctx).Err(); err != nil {
		slog.Error("Redis connection failed", "address", addr, "error", err)
		_ = rdb.Close()
		return nil, err
	}

	slog.Info("Redis connection successful", "address", addr)
	return rdb, nil
}
