package config

import "time"

// Default values applied when the corresponding environment variable is unset.
const (
	DefaultHost                  = "127.0.0.1"
	DefaultPort                  = 6379
	DefaultCacheTTLSeconds       = 3600
	DefaultIdempotencyTTLSeconds = 120
)

// Env is the environment-derived configuration for connecting to Redis and
// tuning cache behavior. Load it once at startup with FromEnv and pass it to
// the package constructors; nothing in this module reads the environment after
// that point.
type Env struct {
	// Host is the Redis server hostname or IP address.
	Host string `envconfig:"REDIS_HOST" default:"127.0.0.1"`

	// Port is the Redis server port.
	Port int `envconfig:"REDIS_PORT" default:"6379"`

	// Username is the Redis username for ACL authentication (Redis 6.0+).
	Username string `envconfig:"REDIS_USERNAME"`

	// Password is the Redis password. If unset, AuthPassword is used instead.
	Password string `envconfig:"REDIS_PASSWORD"`

	// AuthPassword is an alternate password variable honored when Password
	// is empty. Some deployments only expose this name.
	AuthPassword string `envconfig:"REDIS_AUTH_PASSWORD"`

	// URL is a full connection URI. When set it takes precedence over the
	// individual host/port/credential fields.
	URL string `envconfig:"REDIS_URL"`

	// CacheEnabled toggles caching globally. When false, OpenOptional returns
	// no client and the cache facade degrades to the disabled state.
	CacheEnabled bool `envconfig:"CACHE_ENABLED" default:"true"`

	// CacheTTLSeconds is the expiration applied to every cache write.
	CacheTTLSeconds int `envconfig:"CACHE_TTL_SECONDS" default:"3600"`

	// IdempotencyTTLSeconds is the expiration used with SetNX when guarding
	// against duplicate processing.
	IdempotencyTTLSeconds int `envconfig:"IDEMPOTENT_EXPIRY_IN_SEC" default:"120"`
}

// CacheTTL returns the configured cache expiration as a duration.
func (e Env) CacheTTL() time.Duration {
	if e.CacheTTLSeconds <= 0 {
		return DefaultCacheTTLSeconds * time.Second
	}
	return time.Duration(e.CacheTTLSeconds) * time.Second
}

// IdempotencyTTL returns the configured idempotency-guard expiration as a duration.
func (e Env) IdempotencyTTL() time.Duration {
	if e.IdempotencyTTLSeconds <= 0 {
		return DefaultIdempotencyTTLSeconds * time.Second
	}
	return time.Duration(e.IdempotencyTTLSeconds) * time.Second
}
