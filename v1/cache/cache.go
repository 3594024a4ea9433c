package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/helioslabs/sharedredis/v1/observability"
	"github.com/helioslabs/sharedredis/v1/redis"
)

// Cache is a TTL-bounded JSON cache over a Redis store. It holds no mutable
// cache state of its own; all durable state lives in the store, and multiple
// facades may run concurrently against the same store with no coordination
// beyond the store's own per-key atomicity.
//
// A Cache constructed with a nil client is in the disabled state: every
// operation degrades to a no-op or miss, nothing fails.
type Cache struct {
	store    store
	ttl      time.Duration
	policy   ErrorPolicy
	logger   Logger
	metrics  *metricsCollector
	observer observability.Observer
}

// New creates a cache facade over the given client. A nil client is valid and
// yields a facade in the disabled state ("cache disabled" or "store
// unreachable"); see redis.OpenOptional for producing one from environment
// configuration.
func New(cfg Config, client *redis.RedisClient) *Cache {
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultTTL
	}

	var s store = disabledStore{}
	if client != nil {
		s = connectedStore{client: client}
	}

	c := &Cache{
		store:    s,
		ttl:      cfg.TTL,
		policy:   cfg.OnStoreError,
		logger:   cfg.Logger,
		observer: cfg.Observer,
	}

	if cfg.Registerer != nil {
		c.metrics = newMetricsCollector(cfg.Registerer)
	}

	return c
}

// Available reports whether the facade holds a live store connection.
func (c *Cache) Available() bool {
	return c.store.available()
}

// TTL returns the expiration applied to writes.
func (c *Cache) TTL() time.Duration {
	return c.ttl
}

// Get retrieves the envelope stored under key. A store miss returns (nil, nil).
// An entry that exists but cannot be deserialized (schema drift or corruption)
// is deleted as a side effect and reported as a miss, so stale formats heal
// themselves on first read.
func Get[T any](ctx context.Context, c *Cache, key string) (*Envelope[T], error) {
	start := time.Now()
	defer func() { c.metrics.observeDuration("get", time.Since(start)) }()

	raw, err := c.store.get(ctx, key)
	if err != nil {
		if redis.IsNilError(err) {
			c.debug("Cache MISS", map[string]interface{}{"cache_key": key})
			c.metrics.miss()
			c.observe("get", key, time.Since(start), nil, 0, nil)
			return nil, nil
		}
		c.metrics.miss()
		c.observe("get", key, time.Since(start), err, 0, nil)
		return nil, c.storeFailure("get", key, err)
	}

	var envelope Envelope[T]
	if err := json.Unmarshal([]byte(raw), &envelope); err != nil {
		c.error("Failed to deserialize cached data, deleting corrupt entry", err, map[string]interface{}{"cache_key": key})
		if _, delErr := c.store.del(ctx, key); delErr != nil && !errors.Is(delErr, ErrNotConnected) {
			c.error("Failed to delete corrupt cache entry", delErr, map[string]interface{}{"cache_key": key})
		}
		c.metrics.selfHeal()
		c.metrics.miss()
		c.observe("get", key, time.Since(start), err, 0, map[string]interface{}{"self_heal": true})
		return nil, nil
	}

	c.debug("Cache HIT", map[string]interface{}{"cache_key": key})
	c.metrics.hit()
	c.observe("get", key, time.Since(start), nil, int64(len(raw)), nil)
	return &envelope, nil
}

// Set serializes the envelope to JSON and stores it under key with the
// configured TTL. It returns true when the write succeeded and false when the
// store is disabled or the write failed. A payload that cannot be serialized
// is a hard error regardless of the error policy.
func Set[T any](ctx context.Context, c *Cache, key string, envelope *Envelope[T]) (bool, error) {
	start := time.Now()
	defer func() { c.metrics.observeDuration("set", time.Since(start)) }()

	serialized, err := json.Marshal(envelope)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrSerialization, err)
	}

	if err := c.store.set(ctx, key, string(serialized), c.ttl); err != nil {
		c.observe("set", key, time.Since(start), err, 0, nil)
		return false, c.storeFailure("set", key, err)
	}

	c.debug("Cache SET", map[string]interface{}{"cache_key": key, "ttl": c.ttl.String()})
	c.observe("set", key, time.Since(start), nil, int64(len(serialized)), map[string]interface{}{"ttl": c.ttl.String()})
	return true, nil
}

// CacheResponse derives the cache key for (prefix, request), wraps payload in
// an envelope, and stores it. The envelope is always returned to the caller,
// even when the underlying write was skipped or failed; the stored flag
// reports whether the write actually happened. Key derivation failure is the
// only case that returns a nil envelope.
func CacheResponse[T any, R any](ctx context.Context, c *Cache, prefix string, request R, payload T) (*Envelope[T], bool, error) {
	key, err := Key(prefix, request)
	if err != nil {
		return nil, false, err
	}

	envelope := NewEnvelope(payload, key)
	stored, err := Set(ctx, c, key, envelope)
	if stored {
		c.info("Successfully cached response", map[string]interface{}{"cache_key": key})
	}

	return envelope, stored, err
}

// GetCachedResponse derives the cache key for (prefix, request) and retrieves
// the envelope stored under it, if any.
func GetCachedResponse[T any, R any](ctx context.Context, c *Cache, prefix string, request R) (*Envelope[T], error) {
	key, err := Key(prefix, request)
	if err != nil {
		return nil, err
	}

	return Get[T](ctx, c, key)
}

// Delete removes the entry stored under key. It returns true iff at least one
// key was removed.
func (c *Cache) Delete(ctx context.Context, key string) (bool, error) {
	start := time.Now()
	defer func() { c.metrics.observeDuration("delete", time.Since(start)) }()

	deleted, err := c.store.del(ctx, key)
	if err != nil {
		c.observe("delete", key, time.Since(start), err, 0, nil)
		return false, c.storeFailure("delete", key, err)
	}

	c.debug("Cache DELETE", map[string]interface{}{"cache_key": key, "deleted": deleted})
	c.observe("delete", key, time.Since(start), nil, deleted, nil)
	return deleted > 0, nil
}

// ClearPattern deletes all keys matching a glob pattern and returns how many
// were removed. This is best-effort, not atomic: keys written by concurrent
// writers between listing and deletion survive, and if deletion fails partway
// through, the partial count is returned with no rollback.
func (c *Cache) ClearPattern(ctx context.Context, pattern string) (int64, error) {
	start := time.Now()
	defer func() { c.metrics.observeDuration("clear_pattern", time.Since(start)) }()

	matched, err := c.store.keys(ctx, pattern)
	if err != nil {
		c.observe("clear_pattern", pattern, time.Since(start), err, 0, nil)
		return 0, c.storeFailure("clear_pattern", pattern, err)
	}

	var deleted int64
	for _, key := range matched {
		count, err := c.store.del(ctx, key)
		if err != nil {
			c.error("Failed to delete cache entry during pattern clear", err, map[string]interface{}{"cache_key": key})
			continue
		}
		deleted += count
	}

	c.info("Cleared cache entries matching pattern", map[string]interface{}{
		"pattern": pattern,
		"deleted": deleted,
	})
	c.observe("clear_pattern", pattern, time.Since(start), nil, deleted, map[string]interface{}{"matched": len(matched)})
	return deleted, nil
}

// Stats returns backend-reported memory metrics as key-value pairs, parsed
// from INFO memory. When the facade is disabled it returns a single
// {"status": "unavailable"} entry.
func (c *Cache) Stats(ctx context.Context) (map[string]string, error) {
	start := time.Now()
	defer func() { c.metrics.observeDuration("stats", time.Since(start)) }()

	if !c.store.available() {
		return map[string]string{"status": "unavailable"}, nil
	}

	raw, err := c.store.info(ctx, "memory")
	if err != nil {
		c.observe("stats", "", time.Since(start), err, 0, nil)
		if failure := c.storeFailure("stats", "", err); failure != nil {
			return nil, failure
		}
		return map[string]string{}, nil
	}

	stats := make(map[string]string)
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimRight(line, "\r")
		if key, value, found := strings.Cut(line, ":"); found {
			stats[key] = value
		}
	}

	c.observe("stats", "", time.Since(start), nil, int64(len(stats)), nil)
	return stats, nil
}

// storeFailure applies the error policy to a store-level failure. The
// disabled-store case is not a failure at all: it degrades silently under
// either policy, since "no connection" is a supported state.
func (c *Cache) storeFailure(operation, resource string, err error) error {
	if errors.Is(err, ErrNotConnected) {
		c.debug("Redis not available, skipping cache "+operation, map[string]interface{}{"resource": resource})
		return nil
	}

	c.metrics.storeError()
	c.error("Redis error during cache "+operation, err, map[string]interface{}{"resource": resource})
	if c.policy == Propagate {
		return err
	}
	return nil
}

func (c *Cache) observe(operation, resource string, duration time.Duration, err error, size int64, metadata map[string]interface{}) {
	if c.observer == nil {
		return
	}
	c.observer.ObserveOperation(observability.OperationContext{
		Component: "cache",
		Operation: operation,
		Resource:  resource,
		Duration:  duration,
		Error:     err,
		Size:      size,
		Metadata:  metadata,
	})
}

func (c *Cache) debug(msg string, fields map[string]interface{}) {
	if c.logger != nil {
		c.logger.Debug(msg, nil, fields)
	}
}

func (c *Cache) info(msg string, fields map[string]interface{}) {
	if c.logger != nil {
		c.logger.Info(msg, nil, fields)
	}
}

func (c *Cache) error(msg string, err error, fields map[string]interface{}) {
	if c.logger != nil {
		c.logger.Error(msg, err, fields)
	}
}
