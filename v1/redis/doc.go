// Package redis provides the connection layer shared by the cache facade and
// the pub/sub helpers.
//
// It wraps the go-redis client with configuration defaults, optional-connection
// semantics, structured logging, and observability hooks. The operation surface
// is deliberately thin: GET, SET (with expiry), SETNX, DEL, EXISTS, key
// scanning, INFO, and PUBLISH/SUBSCRIBE. Everything hard (pooling, reconnect,
// the wire protocol) is delegated to go-redis.
//
// # Architecture
//
// This package follows the "accept interfaces, return structs" design pattern:
//   - Client interface: Defines the contract for Redis operations
//   - RedisClient struct: Concrete implementation of the Client interface
//   - NewClient constructor: Returns *RedisClient (concrete type)
//   - FX module: Provides *RedisClient for dependency injection
//
// # Direct Usage
//
//	client, err := redis.NewClient(redis.Config{
//		Host: "localhost",
//		Port: 6379,
//	})
//	if err != nil {
//		return err
//	}
//	defer client.Close()
//
//	ctx := context.Background()
//	err = client.Set(ctx, "user:123", "John Doe", 5*time.Minute)
//
// # Environment-Derived Usage
//
// Open and OpenOptional consume the v1/config environment configuration.
// OpenOptional never fails: a disabled or unreachable Redis yields a nil
// client, which the cache facade accepts as the "cache disabled" state.
//
//	env, _ := config.FromEnv()
//	client := redis.OpenOptional(env, log) // may be nil
//	c := cache.New(cache.Config{TTL: env.CacheTTL(), Logger: log}, client)
//
// # FX Module Integration
//
//	app := fx.New(
//		logger.FXModule, // Optional: provides the logger
//		redis.FXModule,  // Provides *RedisClient
//		fx.Provide(func() redis.Config {
//			return redis.Config{Host: "localhost", Port: 6379}
//		}),
//	)
//	app.Run()
//
// # Observability (Observer Hook)
//
// The client supports optional observability through the Observer interface
// from the v1/observability package:
//
//	client = client.WithObserver(myObserver).WithLogger(myLogger)
//
// The observer receives events for Redis operations:
//   - Component: "redis"
//   - Operations: "get", "set", "setnx", "delete", "keys", "info", "publish"
//   - Resource: key name, key pattern, or channel name
//   - Duration: operation duration
//   - Error: any error that occurred
//   - Size: bytes or count returned/affected
//   - Metadata: operation-specific details (e.g., ttl, key_count)
//
// # Idempotency Guards
//
// SetNX with a TTL is the SET NX EX form. Paired with the
// IDEMPOTENT_EXPIRY_IN_SEC configuration it implements a first-writer-wins
// guard against duplicate processing:
//
//	ok, err := client.SetNX(ctx, "job:"+id, "1", env.IdempotencyTTL())
//	if err == nil && !ok {
//		return nil // already processed
//	}
//
// # Pub/Sub Messaging
//
//	// Publisher
//	_, err = client.Publish(ctx, "events", "user.created")
//
//	// Subscriber
//	pubsub := client.Subscribe(ctx, "events")
//	defer pubsub.Close()
//	for msg := range pubsub.Channel() {
//		fmt.Println("Received:", msg.Channel, msg.Payload)
//	}
//
// The v1/pubsub package wraps these in channel-of-messages helpers.
//
// # Thread Safety
//
// All methods on the Redis client are safe for concurrent use by multiple
// goroutines. The underlying connection pool handles concurrent access.
package redis
