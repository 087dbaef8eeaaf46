// Package cache is the read-through result cache in front of the query
// engine. It is a performance layer only: every store failure is treated
// as a miss and the request proceeds against the database.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/maplecrest/listings-api/internal/logger"
	"github.com/maplecrest/listings-api/internal/metrics"
	"github.com/maplecrest/listings-api/internal/storage/redis"
)

// Store is the key-value contract the façade consumes.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// TTLs holds per-view expirations. Map entries churn fastest.
type TTLs struct {
	Search time.Duration
	Detail time.Duration
	Map    time.Duration
}

// DefaultTTLs mirror the service defaults: search 180s, detail 300s, map 60s.
func DefaultTTLs() TTLs {
	return TTLs{
		Search: 180 * time.Second,
		Detail: 300 * time.Second,
		Map:    60 * time.Second,
	}
}

// Cache wraps an optional Store. The disabled state is a first-class
// value: every method is a no-op miss, so callers never nil-check.
type Cache struct {
	store Store
	ttls  TTLs
}

// New creates an enabled cache façade.
func New(store Store, ttls TTLs) *Cache {
	return &Cache{store: store, ttls: ttls}
}

// Disabled creates a cache façade that always misses.
func Disabled() *Cache {
	return &Cache{}
}

// Enabled reports whether a backing store is configured.
func (c *Cache) Enabled() bool { return c.store != nil }

// TTLs returns the configured expirations.
func (c *Cache) TTLs() TTLs { return c.ttls }

// GetJSON loads and decodes a cached value into v. Returns true only on a
// clean hit; store errors and decode failures count as misses.
func (c *Cache) GetJSON(ctx context.Context, key string, v any) bool {
	if c.store == nil {
		return false
	}
	data, err := c.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, redis.ErrKeyNotFound) {
			metrics.CacheErrorsTotal.WithLabelValues("get").Inc()
			logger.FromContext(ctx).Warn("cache read failed, bypassing",
				zap.String("key", key), zap.Error(err))
		}
		metrics.CacheTotal.WithLabelValues("miss").Inc()
		return false
	}
	if err := json.Unmarshal(data, v); err != nil {
		logger.FromContext(ctx).Warn("cache entry undecodable, bypassing",
			zap.String("key", key), zap.Error(err))
		metrics.CacheTotal.WithLabelValues("miss").Inc()
		return false
	}
	metrics.CacheTotal.WithLabelValues("hit").Inc()
	return true
}

// SetJSON encodes and stores v under key. Failures are logged and dropped.
func (c *Cache) SetJSON(ctx context.Context, key string, v any, ttl time.Duration) {
	if c.store == nil {
		return
	}
	data, err := json.Marshal(v)
	if err != nil {
		logger.FromContext(ctx).Warn("cache encode failed",
			zap.String("key", key), zap.Error(err))
		return
	}
	if err := c.store.SetWithTTL(ctx, key, data, ttl); err != nil {
		metrics.CacheErrorsTotal.WithLabelValues("set").Inc()
		logger.FromContext(ctx).Warn("cache write failed",
			zap.String("key", key), zap.Error(err))
	}
}
