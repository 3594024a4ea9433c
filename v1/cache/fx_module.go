package cache

import (
	"go.uber.org/fx"

	"github.com/helioslabs/sharedredis/v1/redis"
)

// FXModule is an fx.Module that provides the cache facade.
//
// Usage:
//
//	app := fx.New(
//	    redis.FXModule,
//	    cache.FXModule,
//	    fx.Provide(
//	        func() redis.Config { return redisConfig },
//	        func() cache.Config { return cacheConfig },
//	    ),
//	)
var FXModule = fx.Module("cache",
	fx.Provide(
		NewWithDI,
	),
)

// CacheParams groups the dependencies needed to create the cache facade.
// The client is optional: without one the facade starts in the disabled state.
type CacheParams struct {
	fx.In

	Config Config
	Client *redis.RedisClient `optional:"true"`
	Logger Logger             `optional:"true"`
}

// NewWithDI creates the cache facade using dependency injection.
func NewWithDI(params CacheParams) *Cache {
	if params.Logger != nil {
		params.Config.Logger = params.Logger
	}

	return New(params.Config, params.Client)
}
