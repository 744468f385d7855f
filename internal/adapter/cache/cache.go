// Package cache provides a small JSON cache on top of Redis. A nil *JSONCache is a
// valid, always-missing cache so callers never branch on whether Redis is configured.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Berlkot/django-proj-kek-2025/internal/config"
)

// NewClient connects to Redis. It returns nil when no address is configured or the
// server does not answer a ping, and the application runs without a cache.
func NewClient(ctx context.Context, cfg config.RedisConfig, log *slog.Logger) *redis.Client {
	if cfg.Addr == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		log.Warn("redis unavailable, caching disabled", slog.String("addr", cfg.Addr), slog.String("error", err.Error()))
		_ = client.Close()
		return nil
	}
	return client
}

// JSONCache stores JSON-encoded values under a common key prefix.
type JSONCache struct {
	rdb    redis.Cmdable
	prefix string
	ttl    time.Duration
}

// NewJSONCache returns nil when rdb is nil.
func NewJSONCache(rdb *redis.Client, prefix string, ttl time.Duration) *JSONCache {
	if rdb == nil {
		return nil
	}
	return &JSONCache{rdb: rdb, prefix: prefix, ttl: ttl}
}

// Key returns the full Redis key for name.
func (c *JSONCache) Key(name string) string {
	if c == nil {
		return name
	}
	return c.prefix + name
}

// Get decodes the value stored under name into dst. found is false on a miss.
func (c *JSONCache) Get(ctx context.Context, name string, dst any) (found bool, err error) {
	if c == nil {
		return false, nil
	}

	raw, err := c.rdb.Get(ctx, c.Key(name)).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("cache get %s: %w", name, err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return false, fmt.Errorf("cache decode %s: %w", name, err)
	}
	return true, nil
}

// Set stores v under name with the cache TTL.
func (c *JSONCache) Set(ctx context.Context, name string, v any) error {
	if c == nil {
		return nil
	}

	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("cache encode %s: %w", name, err)
	}
	if err := c.rdb.Set(ctx, c.Key(name), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set %s: %w", name, err)
	}
	return nil
}

// Delete removes the given names.
func (c *JSONCache) Delete(ctx context.Context, names ...string) error {
	if c == nil || len(names) == 0 {
		return nil
	}

	keys := make([]string, len(names))
	for i, n := range names {
		keys[i] = c.Key(n)
	}
	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("cache delete: %w", err)
	}
	return nil
}
