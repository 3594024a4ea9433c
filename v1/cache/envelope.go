package cache

import "time"

// Envelope wraps a cached value with provenance metadata: when it was written
// and under which key. Envelopes are created at write time and immutable; the
// CacheKey field always equals the key the facade stored the envelope under.
// The field is carried for diagnostics, not enforced by the store.
type Envelope[T any] struct {
	Payload  T         `json:"payload"`
	CachedAt time.Time `json:"cached_at"`
	CacheKey string    `json:"cache_key"`
}

// NewEnvelope wraps payload for storage under key, stamping the current UTC time.
func NewEnvelope[T any](payload T, key string) *Envelope[T] {
	return &Envelope[T]{
		Payload:  payload,
		CachedAt: time.Now().UTC(),
		CacheKey: key,
	}
}
