package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Ping checks if the Redis server is reachable and responsive.
// It returns an error if the connection fails.
func (r *RedisClient) Ping(ctx context.Context) error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.client.Ping(ctx).Err()
}

// PoolStats returns connection pool statistics.
// Useful for monitoring connection pool health.
func (r *RedisClient) PoolStats() *redis.PoolStats {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.client.PoolStats()
}

// Get retrieves the value associated with the given key.
// Returns Nil if the key does not exist.
func (r *RedisClient) Get(ctx context.Context, key string) (string, error) {
	start := time.Now()
	r.mu.RLock()
	defer r.mu.RUnlock()

	result, err := r.client.Get(ctx, key).Result()
	r.observeOperation("get", key, "", time.Since(start), err, int64(len(result)), nil)
	return result, err
}

// Set sets the value for the given key with an optional TTL.
// If ttl is 0, the key will not expire.
func (r *RedisClient) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	start := time.Now()
	r.mu.RLock()
	defer r.mu.RUnlock()

	err := r.client.Set(ctx, key, value, ttl).Err()
	metadata := map[string]interface{}{}
	if ttl > 0 {
		metadata["ttl"] = ttl.String()
	}
	r.observeOperation("set", key, "", time.Since(start), err, 0, metadata)
	return err
}

// SetNX sets the value for the given key only if the key does not exist.
// Returns true if the key was set, false if it already existed.
//
// With a TTL this is the SET NX EX form, which makes it a natural idempotency
// guard: the first writer wins and the guard expires on its own.
func (r *RedisClient) SetNX(ctx context.Context, key string, value interface{}, ttl time.Duration) (bool, error) {
	start := time.Now()
	r.mu.RLock()
	defer r.mu.RUnlock()

	result, err := r.client.SetNX(ctx, key, value, ttl).Result()
	metadata := map[string]interface{}{"was_set": result}
	if ttl > 0 {
		metadata["ttl"] = ttl.String()
	}
	r.observeOperation("setnx", key, "", time.Since(start), err, 0, metadata)
	return result, err
}

// Delete deletes one or more keys.
// Returns the number of keys that were deleted.
func (r *RedisClient) Delete(ctx context.Context, keys ...string) (int64, error) {
	start := time.Now()
	r.mu.RLock()
	defer r.mu.RUnlock()

	result, err := r.client.Del(ctx, keys...).Result()
	resource := ""
	if len(keys) > 0 {
		resource = keys[0]
	}
	r.observeOperation("delete", resource, "", time.Since(start), err, result, map[string]interface{}{
		"key_count": len(keys),
	})
	return result, err
}

// Exists checks if one or more keys exist.
// Returns the number of keys that exist.
func (r *RedisClient) Exists(ctx context.Context, keys ...string) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.client.Exists(ctx, keys...).Result()
}

// Expire sets a timeout on a key.
// After the timeout has expired, the key will be automatically deleted.
func (r *RedisClient) Expire(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.client.Expire(ctx, key, ttl).Result()
}

// TTL returns the remaining time to live of a key that has a timeout.
// Returns -1 if the key exists but has no associated expire.
// Returns -2 if the key does not exist.
func (r *RedisClient) TTL(ctx context.Context, key string) (time.Duration, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.client.TTL(ctx, key).Result()
}

// Keys returns all keys matching the given pattern.
// WARNING: Use with caution in production as it can be slow on large datasets.
// Consider using Scan instead.
func (r *RedisClient) Keys(ctx context.Context, pattern string) ([]string, error) {
	start := time.Now()
	r.mu.RLock()
	defer r.mu.RUnlock()

	result, err := r.client.Keys(ctx, pattern).Result()
	r.observeOperation("keys", pattern, "", time.Since(start), err, int64(len(result)), nil)
	return result, err
}

// Scan iterates over keys in the database using a cursor.
// This is safer than Keys for large datasets as it doesn't block.
func (r *RedisClient) Scan(ctx context.Context, cursor uint64, match string, count int64) *redis.ScanIterator {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.client.Scan(ctx, cursor, match, count).Iterator()
}

// Info returns server information and statistics, optionally limited to the
// given sections (e.g. "memory").
func (r *RedisClient) Info(ctx context.Context, sections ...string) (string, error) {
	start := time.Now()
	r.mu.RLock()
	defer r.mu.RUnlock()

	result, err := r.client.Info(ctx, sections...).Result()
	r.observeOperation("info", "", "", time.Since(start), err, int64(len(result)), nil)
	return result, err
}

// --- Pub/Sub Operations ---

// Publish posts a message to the given channel.
// Returns the number of clients that received the message.
func (r *RedisClient) Publish(ctx context.Context, channel string, message interface{}) (int64, error) {
	start := time.Now()
	r.mu.RLock()
	defer r.mu.RUnlock()

	result, err := r.client.Publish(ctx, channel, message).Result()
	r.observeOperation("publish", channel, "", time.Since(start), err, result, nil)
	return result, err
}

// Subscribe subscribes to the given channels.
// Returns a PubSub instance that can be used to receive messages.
func (r *RedisClient) Subscribe(ctx context.Context, channels ...string) *redis.PubSub {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.client.Subscribe(ctx, channels...)
}

// PSubscribe subscribes to channels matching the given patterns.
func (r *RedisClient) PSubscribe(ctx context.Context, patterns ...string) *redis.PubSub {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.client.PSubscribe(ctx, patterns...)
}
