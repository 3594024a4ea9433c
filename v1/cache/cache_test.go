package cache

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helioslabs/sharedredis/v1/observability"
	"github.com/helioslabs/sharedredis/v1/redis"
)

type userProfile struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	Preferences []string `json:"preferences"`
}

func newTestCache(t *testing.T, cfg Config) (*Cache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)

	client, err := redis.NewClientFromURI("redis://" + mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	return New(cfg, client), mr
}

func TestRoundTrip(t *testing.T) {
	c, _ := newTestCache(t, Config{})

	profile := userProfile{
		ID:          123,
		Name:        "John Doe",
		Email:       "john@example.com",
		Preferences: []string{"dark_mode", "notifications"},
	}
	envelope := NewEnvelope(profile, "manual:user:123")

	ctx := context.Background()
	stored, err := Set(ctx, c, "manual:user:123", envelope)
	require.NoError(t, err)
	assert.True(t, stored)

	got, err := Get[userProfile](ctx, c, "manual:user:123")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, profile, got.Payload)
	assert.Equal(t, "manual:user:123", got.CacheKey)
	assert.True(t, got.CachedAt.Equal(envelope.CachedAt))
}

func TestGetMiss(t *testing.T) {
	c, _ := newTestCache(t, Config{})

	got, err := Get[userProfile](context.Background(), c, "never:written")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestExpiry(t *testing.T) {
	c, mr := newTestCache(t, Config{TTL: time.Second})

	ctx := context.Background()
	envelope := NewEnvelope("transient", "expiry:key")
	stored, err := Set(ctx, c, "expiry:key", envelope)
	require.NoError(t, err)
	require.True(t, stored)

	got, err := Get[string](ctx, c, "expiry:key")
	require.NoError(t, err)
	require.NotNil(t, got)

	mr.FastForward(2 * time.Second)

	got, err = Get[string](ctx, c, "expiry:key")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCorruptionSelfHeal(t *testing.T) {
	c, mr := newTestCache(t, Config{})

	require.NoError(t, mr.Set("corrupt:key", "this is not json{{"))

	got, err := Get[userProfile](context.Background(), c, "corrupt:key")
	require.NoError(t, err)
	assert.Nil(t, got)

	// The offending entry was deleted as a side effect of the read.
	assert.False(t, mr.Exists("corrupt:key"))
}

func TestDisabledStoreIdempotence(t *testing.T) {
	c := New(Config{}, nil)
	ctx := context.Background()

	assert.False(t, c.Available())

	stored, err := Set(ctx, c, "any:key", NewEnvelope("value", "any:key"))
	require.NoError(t, err)
	assert.False(t, stored)

	got, err := Get[string](ctx, c, "any:key")
	require.NoError(t, err)
	assert.Nil(t, got)

	deleted, err := c.Delete(ctx, "any:key")
	require.NoError(t, err)
	assert.False(t, deleted)

	count, err := c.ClearPattern(ctx, "any:*")
	require.NoError(t, err)
	assert.Zero(t, count)

	stats, err := c.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"status": "unavailable"}, stats)
}

func TestDisabledCacheResponseStillReturnsEnvelope(t *testing.T) {
	c := New(Config{}, nil)

	envelope, stored, err := CacheResponse(context.Background(), c, "user_profile",
		userRequest{UserID: 123, IncludePreferences: true}, "payload")
	require.NoError(t, err)
	assert.False(t, stored)
	require.NotNil(t, envelope)
	assert.Equal(t, "payload", envelope.Payload)
	assert.Regexp(t, keyPattern, envelope.CacheKey)
}

func TestDelete(t *testing.T) {
	c, _ := newTestCache(t, Config{})
	ctx := context.Background()

	_, err := Set(ctx, c, "del:key", NewEnvelope("value", "del:key"))
	require.NoError(t, err)

	deleted, err := c.Delete(ctx, "del:key")
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = c.Delete(ctx, "del:key")
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestClearPattern(t *testing.T) {
	c, mr := newTestCache(t, Config{})
	ctx := context.Background()

	for _, key := range []string{
		"bulk_0", "bulk_1", "bulk_2", "bulk_3", "bulk_4",
		"bulk_5", "bulk_6", "bulk_7", "bulk_8", "bulk_9",
	} {
		_, err := Set(ctx, c, key, NewEnvelope("value", key))
		require.NoError(t, err)
	}
	_, err := Set(ctx, c, "other_0", NewEnvelope("value", "other_0"))
	require.NoError(t, err)

	count, err := c.ClearPattern(ctx, "bulk_*")
	require.NoError(t, err)
	assert.Equal(t, int64(10), count)

	// Keys outside the pattern survive.
	assert.True(t, mr.Exists("other_0"))
	assert.False(t, mr.Exists("bulk_0"))
}

func TestCacheResponseScenario(t *testing.T) {
	c, _ := newTestCache(t, Config{})
	ctx := context.Background()

	request := userRequest{UserID: 123, IncludePreferences: true}
	profile := userProfile{
		ID:          123,
		Name:        "User 123",
		Email:       "user123@example.com",
		Preferences: []string{"theme", "language"},
	}

	envelope, stored, err := CacheResponse(ctx, c, "user_profile", request, profile)
	require.NoError(t, err)
	assert.True(t, stored)
	require.NotNil(t, envelope)
	assert.Regexp(t, keyPattern, envelope.CacheKey)

	// The stored envelope's cache_key equals the key it is stored under.
	derived, err := Key("user_profile", request)
	require.NoError(t, err)
	assert.Equal(t, derived, envelope.CacheKey)

	got, err := GetCachedResponse[userProfile](ctx, c, "user_profile", request)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, profile, got.Payload)
	assert.Equal(t, envelope.CacheKey, got.CacheKey)
	assert.True(t, got.CachedAt.Equal(envelope.CachedAt))
}

func TestCacheResponseSerializationError(t *testing.T) {
	c, _ := newTestCache(t, Config{})

	_, _, err := CacheResponse(context.Background(), c, "bad",
		map[string]interface{}{"ch": make(chan int)}, "payload")
	require.Error(t, err)
	assert.True(t, IsSerializationError(err))
}

func TestStatsConnected(t *testing.T) {
	c, _ := newTestCache(t, Config{})

	stats, err := c.Stats(context.Background())
	require.NoError(t, err)
	assert.NotContains(t, stats, "status")
}

type stubStore struct {
	store
	infoPayload string
}

func (s stubStore) available() bool { return true }

func (s stubStore) info(ctx context.Context, section string) (string, error) {
	return s.infoPayload, nil
}

func TestStatsParsesInfoLines(t *testing.T) {
	c := New(Config{}, nil)
	c.store = stubStore{infoPayload: "# Memory\r\nused_memory:1048576\r\nused_memory_human:1.00M\r\nmaxmemory:0\r\n"}

	stats, err := c.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"used_memory":       "1048576",
		"used_memory_human": "1.00M",
		"maxmemory":         "0",
	}, stats)
}

func TestLogAndDegradeOnStoreFailure(t *testing.T) {
	c, mr := newTestCache(t, Config{})
	mr.Close()
	ctx := context.Background()

	got, err := Get[string](ctx, c, "some:key")
	require.NoError(t, err)
	assert.Nil(t, got)

	stored, err := Set(ctx, c, "some:key", NewEnvelope("value", "some:key"))
	require.NoError(t, err)
	assert.False(t, stored)

	deleted, err := c.Delete(ctx, "some:key")
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestPropagateOnStoreFailure(t *testing.T) {
	c, mr := newTestCache(t, Config{OnStoreError: Propagate})
	mr.Close()
	ctx := context.Background()

	_, err := Get[string](ctx, c, "some:key")
	require.Error(t, err)

	stored, err := Set(ctx, c, "some:key", NewEnvelope("value", "some:key"))
	require.Error(t, err)
	assert.False(t, stored)

	_, err = c.ClearPattern(ctx, "some:*")
	require.Error(t, err)
}

func TestMetrics(t *testing.T) {
	registry := prometheus.NewRegistry()
	c, mr := newTestCache(t, Config{Registerer: registry})
	ctx := context.Background()

	_, err := Set(ctx, c, "metrics:key", NewEnvelope("value", "metrics:key"))
	require.NoError(t, err)

	_, err = Get[string](ctx, c, "metrics:key")
	require.NoError(t, err)

	_, err = Get[string](ctx, c, "metrics:missing")
	require.NoError(t, err)

	require.NoError(t, mr.Set("metrics:corrupt", "not json"))
	_, err = Get[string](ctx, c, "metrics:corrupt")
	require.NoError(t, err)

	assert.Equal(t, float64(1), testutil.ToFloat64(c.metrics.hits))
	assert.Equal(t, float64(2), testutil.ToFloat64(c.metrics.misses))
	assert.Equal(t, float64(1), testutil.ToFloat64(c.metrics.selfHeals))
	assert.Equal(t, float64(0), testutil.ToFloat64(c.metrics.storeErrors))
}

type recordingObserver struct {
	mu     sync.Mutex
	events []observability.OperationContext
}

func (r *recordingObserver) ObserveOperation(ctx observability.OperationContext) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ctx)
}

func (r *recordingObserver) operations() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	ops := make([]string, len(r.events))
	for i, e := range r.events {
		ops[i] = e.Operation
	}
	return ops
}

func TestObserverReceivesEvents(t *testing.T) {
	obs := &recordingObserver{}
	c, _ := newTestCache(t, Config{Observer: obs})
	ctx := context.Background()

	_, err := Set(ctx, c, "obs:key", NewEnvelope("value", "obs:key"))
	require.NoError(t, err)

	_, err = Get[string](ctx, c, "obs:key")
	require.NoError(t, err)

	assert.Equal(t, []string{"set", "get"}, obs.operations())
	for _, e := range obs.events {
		assert.Equal(t, "cache", e.Component)
	}
}
