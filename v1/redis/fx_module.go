package redis

import (
	"context"
	"log"

	"go.uber.org/fx"
)

// FXModule is an fx.Module that provides and configures the Redis client.
//
// Usage:
//
//	app := fx.New(
//	    redis.FXModule,
//	    fx.Provide(func() redis.Config { return loadConfig() }),
//	    // other modules...
//	)
var FXModule = fx.Module("redis",
	fx.Provide(
		NewClientWithDI,
	),
	fx.Invoke(RegisterRedisLifecycle),
)

// RedisParams groups the dependencies needed to create a Redis client
type RedisParams struct {
	fx.In

	Config Config
	Logger Logger `optional:"true"` // Optional logger from v1/logger
}

// NewClientWithDI creates a new Redis client using dependency injection.
// The optional logger is injected into the config before delegating to NewClient.
func NewClientWithDI(params RedisParams) (*RedisClient, error) {
	if params.Logger != nil {
		params.Config.Logger = params.Logger
	}

	return NewClient(params.Config)
}

// RedisLifecycleParams groups the dependencies needed for Redis lifecycle management
type RedisLifecycleParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Client    *RedisClient
}

// RegisterRedisLifecycle registers the Redis client with the fx lifecycle system.
//
// The function:
//  1. On application start: Pings Redis to ensure the connection is healthy
//  2. On application stop: Closes the client, releasing pooled connections cleanly.
func RegisterRedisLifecycle(params RedisLifecycleParams) {
	params.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := params.Client.Ping(ctx); err != nil {
				log.Printf("WARN: Failed to ping Redis on startup: %v", err)
				return err
			}
			log.Println("INFO: Redis client started and healthy")
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("INFO: Shutting down Redis client")
			return params.Client.Close()
		},
	})
}
