package cache

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/helioslabs/sharedredis/v1/observability"
)

// ErrorPolicy controls what the facade does when the backing store fails
// mid-operation (network errors, protocol errors, timeouts).
type ErrorPolicy int

const (
	// LogAndDegrade logs the store error and converts it to the miss/false/empty
	// outcome. Callers never see store-level errors. This matches the behavior
	// services relying on this facade were built against.
	LogAndDegrade ErrorPolicy = iota

	// Propagate returns store-level errors to the caller alongside the
	// degraded result. Useful in tests and for callers that need to
	// distinguish "not cached" from "store broken".
	Propagate
)

// DefaultTTL is the expiration applied to cache writes when Config.TTL is zero.
const DefaultTTL = 3600 * time.Second

// Config defines the configuration for the cache facade.
type Config struct {
	// TTL is the expiration applied to every write. It is a single global
	// value, not per-key.
	// Default: 1 hour
	TTL time.Duration

	// OnStoreError selects the failure policy for store-level errors.
	// Default: LogAndDegrade
	OnStoreError ErrorPolicy

	// Logger is an optional logger from v1/logger.
	Logger Logger

	// Registerer is an optional Prometheus registerer. When set, the facade
	// registers hit/miss/error/self-heal counters and an operation latency
	// histogram with it.
	Registerer prometheus.Registerer

	// Observer is an optional observability hook receiving one event per
	// facade operation.
	Observer observability.Observer
}

// Logger is an interface that matches v1/logger.Logger
type Logger interface {
	Debug(msg string, err error, fields ...map[string]interface{})
	Info(msg string, err error, fields ...map[string]interface{})
	Warn(msg string, err error, fields ...map[string]interface{})
	Error(msg string, err error, fields ...map[string]interface{})
}
