package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Client provides a high-level interface for interacting with Redis.
// It covers the key-value, key-scanning, server-info, and pub/sub operations
// that the cache facade and pub/sub helpers in this module are built on.
//
// This interface is implemented by the concrete *RedisClient type.
type Client interface {
	// Connection and lifecycle
	Ping(ctx context.Context) error
	PoolStats() *redis.PoolStats
	Client() redis.UniversalClient
	Close() error

	// String operations
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	SetNX(ctx context.Context, key string, value interface{}, ttl time.Duration) (bool, error)

	// Key operations
	Delete(ctx context.Context, keys ...string) (int64, error)
	Exists(ctx context.Context, keys ...string) (int64, error)
	Expire(ctx context.Context, key string, ttl time.Duration) (bool, error)
	TTL(ctx context.Context, key string) (time.Duration, error)
	Keys(ctx context.Context, pattern string) ([]string, error)
	Scan(ctx context.Context, cursor uint64, match string, count int64) *redis.ScanIterator

	// Server operations
	Info(ctx context.Context, sections ...string) (string, error)

	// Pub/Sub operations
	Publish(ctx context.Context, channel string, message interface{}) (int64, error)
	Subscribe(ctx context.Context, channels ...string) *redis.PubSub
	PSubscribe(ctx context.Context, patterns ...string) *redis.PubSub
}
