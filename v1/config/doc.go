// Package config loads the environment-derived configuration shared by the
// sharedredis packages.
//
// The configuration is deliberately loaded exactly once, at startup:
//
//	env, err := config.FromEnv()
//	if err != nil {
//		log.Fatal(err)
//	}
//	client, err := redis.Open(env)
//
// Recognized variables:
//
//	REDIS_HOST                (default 127.0.0.1)
//	REDIS_PORT                (default 6379)
//	REDIS_USERNAME
//	REDIS_PASSWORD
//	REDIS_AUTH_PASSWORD       (fallback when REDIS_PASSWORD is unset)
//	REDIS_URL                 (full URI; overrides host/port/credentials)
//	CACHE_ENABLED             (default true)
//	CACHE_TTL_SECONDS         (default 3600)
//	IDEMPOTENT_EXPIRY_IN_SEC  (default 120)
package config
