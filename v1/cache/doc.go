// Package cache implements a TTL-bounded JSON cache over Redis with
// deterministic key derivation and graceful degradation when the store is
// unreachable.
//
// Two cooperating pieces:
//
//   - Key Deriver: Key(prefix, request) hashes the canonical JSON form of a
//     request with SHA-256 into a key of the form "prefix:hexdigest", so
//     structurally equal requests share a cache entry.
//   - TTL Cache Facade: Cache wraps get/set/delete/clear-pattern/stats against
//     the store, storing values inside an Envelope carrying the payload, the
//     write timestamp, and the key it was stored under.
//
// # Cache States
//
// The facade is a two-state capability. Constructed with a live client it is
// connected; constructed with nil it is disabled, and every operation degrades
// to a no-op or miss instead of failing:
//
//	env, _ := config.FromEnv()
//	client := redis.OpenOptional(env, log) // nil when disabled or unreachable
//	c := cache.New(cache.Config{TTL: env.CacheTTL(), Logger: log}, client)
//
// # Typical Usage
//
//	type UserRequest struct {
//		UserID             int  `json:"user_id"`
//		IncludePreferences bool `json:"include_preferences"`
//	}
//
//	if envelope, _ := cache.GetCachedResponse[UserProfile](ctx, c, "user_profile", req); envelope != nil {
//		return envelope.Payload // cache hit
//	}
//
//	profile := expensiveLookup(req)
//	envelope, stored, err := cache.CacheResponse(ctx, c, "user_profile", req, profile)
//
// CacheResponse always hands the envelope back even if the write silently
// failed; the stored flag is how callers detect a degraded write.
//
// # Failure Policy
//
// Store-level errors (network, protocol) are logged and converted to the
// miss/false/empty outcome by default (LogAndDegrade). Configure
// OnStoreError: Propagate to receive them instead. Two cases ignore the
// policy: the disabled state always degrades silently, and serialization
// failures of caller-supplied values always fail loudly.
//
// Corrupt entries, meaning stored bytes that no longer deserialize into an
// Envelope (typically after a schema change under an unchanged prefix), are
// deleted on read and reported as a miss.
//
// # Metrics
//
// Pass a prometheus.Registerer in Config to export hit/miss/store-error/
// self-heal counters and a per-operation latency histogram under the
// sharedredis_cache_* names.
//
// # Concurrency
//
// The facade holds no mutable shared state; all state lives in the store.
// Operations are independent and safe for concurrent use, and multiple
// facades may share one store. ClearPattern is explicitly best-effort: it is
// not atomic with respect to concurrent writers.
package cache
