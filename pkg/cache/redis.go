// Package cache provides a Redis-backed response cache for the public movie
// catalog. The cache is optional: when Redis is unreachable at startup the
// application runs without it.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"moviebuzz/pkg/utils"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Cache struct {
	client *redis.Client
	ttl    time.Duration
	log    *zap.Logger
}

// NewCache connects to Redis and returns nil when the server cannot be
// reached, so callers degrade to uncached reads.
func NewCache(config utils.RedisConfig, log *zap.Logger) *Cache {
	client := redis.NewClient(&redis.Options{
		Addr:     config.Addr,
		Password: config.Password,
		DB:       config.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Warn("Redis unreachable, caching disabled", zap.Error(err), zap.String("addr", config.Addr))
		return nil
	}

	ttl := time.Duration(config.CacheTTLSeconds) * time.Second
	if ttl <= 0 {
		ttl = time.Minute
	}

	return &Cache{
		client: client,
		ttl:    ttl,
		log:    log.With(zap.String("component", "cache")),
	}
}

// Get unmarshals the cached value for key into dest. It reports false on a
// miss or any Redis failure; cache errors never surface to callers.
func (c *Cache) Get(ctx context.Context, key string, dest any) bool {
	if c == nil {
		return false
	}

	raw, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return false
	}
	if err != nil {
		c.log.Warn("Cache read failed", zap.Error(err), zap.String("key", key))
		return false
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		c.log.Warn("Cache entry corrupt, dropping", zap.Error(err), zap.String("key", key))
		c.client.Del(ctx, key)
		return false
	}

	return true
}

// Set stores value under key for the configured TTL, best-effort.
func (c *Cache) Set(ctx context.Context, key string, value any) {
	if c == nil {
		return
	}

	raw, err := json.Marshal(value)
	if err != nil {
		c.log.Warn("Cache marshal failed", zap.Error(err), zap.String("key", key))
		return
	}

	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		c.log.Warn("Cache write failed", zap.Error(err), zap.String("key", key))
	}
}

// Invalidate removes a key after a write invalidates it, best-effort.
func (c *Cache) Invalidate(ctx context.Context, key string) {
	if c == nil {
		return
	}

	if err := c.client.Del(ctx, key).Err(); err != nil {
		c.log.Warn("Cache invalidation failed", zap.Error(err), zap.String("key", key))
	}
}
