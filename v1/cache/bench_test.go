package cache

import (
	"context"
	"fmt"
	"testing"

	"github.com/alicebob/miniredis/v2"

	"github.com/helioslabs/sharedredis/v1/redis"
)

type benchmarkPayload struct {
	ID       int               `json:"id"`
	Name     string            `json:"name"`
	Data     []byte            `json:"data"`
	Metadata map[string]string `json:"metadata"`
}

type benchmarkRequest struct {
	Query   string   `json:"query"`
	Filters []string `json:"filters"`
	Limit   int      `json:"limit"`
}

func newBenchmarkPayload() benchmarkPayload {
	metadata := make(map[string]string, 10)
	for i := 0; i < 10; i++ {
		metadata[fmt.Sprintf("key_%d", i)] = fmt.Sprintf("value_%d", i)
	}

	return benchmarkPayload{
		ID:       12345,
		Name:     "Benchmark Test Data",
		Data:     make([]byte, 1024),
		Metadata: metadata,
	}
}

func newBenchmarkRequest() benchmarkRequest {
	return benchmarkRequest{
		Query:   "SELECT * FROM users WHERE active = true",
		Filters: []string{"active", "verified"},
		Limit:   100,
	}
}

func newBenchCache(b *testing.B) *Cache {
	b.Helper()

	mr := miniredis.RunT(b)

	client, err := redis.NewClientFromURI("redis://" + mr.Addr())
	if err != nil {
		b.Fatal(err)
	}
	b.Cleanup(func() { _ = client.Close() })

	return New(Config{}, client)
}

func BenchmarkKey(b *testing.B) {
	request := newBenchmarkRequest()

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := Key("benchmark", request); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSet(b *testing.B) {
	c := newBenchCache(b)
	ctx := context.Background()
	envelope := NewEnvelope(newBenchmarkPayload(), "benchmark:set")

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Set(ctx, c, "benchmark:set", envelope); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkGet(b *testing.B) {
	c := newBenchCache(b)
	ctx := context.Background()

	if _, err := Set(ctx, c, "benchmark:get", NewEnvelope(newBenchmarkPayload(), "benchmark:get")); err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		envelope, err := Get[benchmarkPayload](ctx, c, "benchmark:get")
		if err != nil {
			b.Fatal(err)
		}
		if envelope == nil {
			b.Fatal("expected a stored envelope")
		}
	}
}

func BenchmarkCacheHit(b *testing.B) {
	c := newBenchCache(b)
	ctx := context.Background()
	request := newBenchmarkRequest()

	if _, _, err := CacheResponse(ctx, c, "benchmark_hit", request, newBenchmarkPayload()); err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		envelope, err := GetCachedResponse[benchmarkPayload](ctx, c, "benchmark_hit", request)
		if err != nil {
			b.Fatal(err)
		}
		if envelope == nil {
			b.Fatal("expected a cache hit")
		}
	}
}

func BenchmarkCacheMiss(b *testing.B) {
	c := newBenchCache(b)
	ctx := context.Background()
	request := newBenchmarkRequest()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		envelope, err := GetCachedResponse[benchmarkPayload](ctx, c, "benchmark_miss", request)
		if err != nil {
			b.Fatal(err)
		}
		if envelope != nil {
			b.Fatal("expected a cache miss")
		}
	}
}
