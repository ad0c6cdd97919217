// Package cache provides the Redis-backed allow-list membership cache.
package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"sayma/config"
	"sayma/internal/domain/service"
)

const allowlistKeyPrefix = "allowlist:"

// NewRedisClient builds the Redis client, or returns nil when no Redis
// address is configured. Callers must tolerate a nil client.
func NewRedisClient(cfg *config.Config) *redis.Client {
	if cfg.Redis == nil || cfg.Redis.Addr == "" {
		return nil
	}

	return redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
}

// allowlistCache caches admin allow-list membership in Redis. Every
// method degrades to a no-op or a miss on cache errors, so a Redis
// outage only costs extra database lookups.
type allowlistCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewAllowlistCache is the constructor for allowlistCache. A nil client
// yields a cache that always misses.
func NewAllowlistCache(client *redis.Client, cfg *config.Config, logger *slog.Logger) service.AllowlistCache {
	ttl := 5 * time.Minute
	if cfg.Redis != nil && cfg.Redis.TTL > 0 {
		ttl = cfg.Redis.TTL
	}

	return &allowlistCache{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

func (c *allowlistCache) Get(ctx context.Context, email string) (allowed bool, ok bool) {
	if c.client == nil {
		return false, false
	}

	val, err := c.client.Get(ctx, allowlistKeyPrefix+email).Result()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("allowlist cache read failed", slog.Any("error", err))
		}

		return false, false
	}

	return val == "1", true
}

func (c *allowlistCache) Set(ctx context.Context, email string, allowed bool, ttl time.Duration) {
	if c.client == nil {
		return
	}
	if ttl <= 0 {
		ttl = c.ttl
	}

	val := "0"
	if allowed {
		val = "1"
	}
	if err := c.client.Set(ctx, allowlistKeyPrefix+email, val, ttl).Err(); err != nil {
		c.logger.Warn("allowlist cache write failed", slog.Any("error", err))
	}
}

func (c *allowlistCache) Invalidate(ctx context.Context, email string) {
	if c.client == nil {
		return
	}

	if err := c.client.Del(ctx, allowlistKeyPrefix+email).Err(); err != nil {
		c.logger.Warn("allowlist cache invalidate failed", slog.Any("error", err))
	}
}
