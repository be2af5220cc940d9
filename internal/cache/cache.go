// Package cache provides a fail-safe Redis client. Every Redis error is
// logged and then treated as a cache miss, so callers never fail because
// the cache is down. A nil *Client is valid and caches nothing.
package cache

import (
	"context"
	"errors"
	"time"

	"github.com/ralona/nutritracker/internal/config"
	"github.com/ralona/nutritracker/internal/logger"
	"github.com/redis/go-redis/v9"
)

// Client wraps redis.Client but fails safe by swallowing connectivity errors.
type Client struct {
	client *redis.Client
	logger *logger.Logger
}

// New creates a Redis-backed client. It returns nil when cfg.Address is
// empty, which disables caching.
func New(cfg config.Cache, logger *logger.Logger) *Client {
	if cfg.Address == "" {
		return nil
	}

	logger.Info().Str("address", cfg.Address).Int("db", cfg.DB).Msg("summary cache enabled")

	return &Client{
		client: redis.NewClient(&redis.Options{
			Addr:        cfg.Address,
			Password:    cfg.Password,
			DB:          cfg.DB,
			DialTimeout: time.Second,
			ReadTimeout: time.Second,
			MaxRetries:  1,
		}),
		logger: logger,
	}
}

// Get returns the value stored at key, or nil on a miss or when Redis is
// unavailable.
func (c *Client) Get(ctx context.Context, key string) []byte {
	if c == nil || c.client == nil {
		return nil
	}

	res, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil
	}
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("func", "cache.Get").Str("key", key).Msg("cache read failed")
		return nil
	}

	return res
}

// Set stores value with ttl, ignoring Redis errors.
func (c *Client) Set(ctx context.Context, key string, value []byte, ttl time.Duration) {
	if c == nil || c.client == nil {
		return
	}

	if err := c.client.Set(ctx, key, value, ttl).Err(); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("func", "cache.Set").Str("key", key).Msg("cache write failed")
	}
}

// Delete removes keys, ignoring Redis errors.
func (c *Client) Delete(ctx context.Context, keys ...string) {
	if c == nil || c.client == nil || len(keys) == 0 {
		return
	}

	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("func", "cache.Delete").Strs("keys", keys).Msg("cache invalidation failed")
	}
}

// Ping checks connectivity. A disabled client is always healthy.
func (c *Client) Ping(ctx context.Context) error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Ping(ctx).Err()
}

// Close releases the underlying connection pool.
func (c *Client) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}
