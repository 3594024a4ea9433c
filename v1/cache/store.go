package cache

import (
	"context"
	"time"

	"github.com/helioslabs/sharedredis/v1/redis"
)

// store is the two-state capability behind the facade: a connected variant
// holding a live client, or a disabled variant with no handle at all. Every
// facade operation dispatches through this interface, so "cache unavailable"
// is a first-class state rather than a nil check scattered across call sites.
type store interface {
	available() bool
	get(ctx context.Context, key string) (string, error)
	set(ctx context.Context, key, value string, ttl time.Duration) error
	del(ctx context.Context, keys ...string) (int64, error)
	keys(ctx context.Context, pattern string) ([]string, error)
	info(ctx context.Context, section string) (string, error)
}

// connectedStore delegates to a live Redis client.
type connectedStore struct {
	client *redis.RedisClient
}

func (s connectedStore) available() bool { return true }

func (s connectedStore) get(ctx context.Context, key string) (string, error) {
	return s.client.Get(ctx, key)
}

func (s connectedStore) set(ctx context.Context, key, value string, ttl time.Duration) error {
	return s.client.Set(ctx, key, value, ttl)
}

func (s connectedStore) del(ctx context.Context, keys ...string) (int64, error) {
	return s.client.Delete(ctx, keys...)
}

// keys lists keys matching a glob pattern using SCAN, which doesn't block the
// server the way KEYS does on large datasets.
func (s connectedStore) keys(ctx context.Context, pattern string) ([]string, error) {
	var matched []string
	iter := s.client.Scan(ctx, 0, pattern, 100)
	for iter.Next(ctx) {
		matched = append(matched, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return matched, err
	}
	return matched, nil
}

func (s connectedStore) info(ctx context.Context, section string) (string, error) {
	return s.client.Info(ctx, section)
}

// disabledStore is the no-connection state. Every operation reports
// ErrNotConnected, which the facade maps to the miss/false/empty outcome.
type disabledStore struct{}

func (disabledStore) available() bool { return false }

func (disabledStore) get(ctx context.Context, key string) (string, error) {
	return "", ErrNotConnected
}

func (disabledStore) set(ctx context.Context, key, value string, ttl time.Duration) error {
	return ErrNotConnected
}

func (disabledStore) del(ctx context.Context, keys ...string) (int64, error) {
	return 0, ErrNotConnected
}

func (disabledStore) keys(ctx context.Context, pattern string) ([]string, error) {
	return nil, ErrNotConnected
}

func (disabledStore) info(ctx context.Context, section string) (string, error) {
	return "", ErrNotConnected
}
