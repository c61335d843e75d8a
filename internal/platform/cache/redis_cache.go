// Package cache provides Redis caching decorators for the catalog repositories.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/url"
	"time"

	"github.com/redis/go-redis/v9"
)

// defaultTTL applies when a decorator is created with a non-positive ttl.
const defaultTTL = 5 * time.Minute

// redisCache holds the JSON read-through and pattern invalidation shared by the decorators.
// A nil client disables caching.
type redisCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func newRedisCache(rdb *redis.Client, ttl time.Duration) redisCache {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return redisCache{rdb: rdb, ttl: ttl}
}

// readThrough returns the cached value for key, or calls load and caches its result.
// Cache failures are never returned to the caller.
func readThrough[T any](ctx context.Context, c redisCache, key string, load func() (T, error)) (T, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return load()
	}

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out T
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to database
	out, err := load()
	if err != nil {
		return out, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}
	return out, nil
}

// invalidate deletes every key under the given namespaces.
func (c redisCache) invalidate(ctx context.Context, namespaces ...string) {
	if c.rdb == nil {
		return
	}
	for _, ns := range namespaces {
		if err := c.deleteByPattern(ctx, ns+":*"); err != nil {
			slog.Warn("cache invalidation failed", "namespace", ns, "error", err)
		}
	}
}

// deleteByPattern deletes all cache keys matching a given pattern using SCAN.
func (c redisCache) deleteByPattern(ctx context.Context, pattern string) error {
	var cursor uint64
	for {
		keys, cur, err := c.rdb.Scan(ctx, cursor, pattern, 200).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		cursor = cur
		if cursor == 0 {
			break
		}
	}
	return nil
}

// safe escapes a user-supplied key part so that it cannot contain ':' or '*'.
func safe(s string) string {
	return url.QueryEscape(s)
}
