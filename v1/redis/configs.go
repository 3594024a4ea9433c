package redis

import "time"

// Config defines the configuration for the Redis client.
// Zero values are replaced with the package defaults by NewClient.
type Config struct {
	// Host is the Redis server hostname or IP address
	// Default: "127.0.0.1"
	Host string

	// Port is the Redis server port
	// Default: 6379
	Port int

	// Username is the Redis username for ACL authentication (Redis 6.0+)
	// Leave empty for no username-based authentication
	Username string

	// Password is the Redis password for authentication
	// Leave empty for no authentication
	Password string

	// DB is the Redis database number to use (0-15 by default)
	// Default: 0
	DB int

	// PoolSize is the maximum number of socket connections
	// Default: 10 per CPU (set by go-redis)
	PoolSize int

	// MinIdleConns is the minimum number of idle connections to maintain
	// Default: 0 (no minimum)
	MinIdleConns int

	// MaxRetries is the maximum number of retries before giving up
	// Default: 3
	// Set to -1 to disable retries
	MaxRetries int

	// DialTimeout is the timeout for establishing new connections
	// Default: 5 seconds
	DialTimeout time.Duration

	// ReadTimeout is the timeout for socket reads
	// If reached, commands will fail with a timeout instead of blocking
	// Default: 3 seconds
	ReadTimeout time.Duration

	// WriteTimeout is the timeout for socket writes
	// Default: ReadTimeout
	WriteTimeout time.Duration

	// Logger is an optional logger from v1/logger
	// If provided, it will be used for Redis error logging
	Logger Logger
}

// Logger is an interface that matches v1/logger.Logger
type Logger interface {
	Error(msg string, err error, fields ...map[string]interface{})
	Info(msg string, err error, fields ...map[string]interface{})
	Warn(msg string, err error, fields ...map[string]interface{})
}

// Default values for configuration
const (
	DefaultHost        = "127.0.0.1"
	DefaultPort        = 6379
	DefaultDB          = 0
	DefaultMaxRetries  = 3
	DefaultDialTimeout = 5 * time.Second
	DefaultReadTimeout = 3 * time.Second
	DefaultPingTimeout = 5 * time.Second
)
