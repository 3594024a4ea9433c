// Package pubsub provides thin publish/subscribe helpers over the Redis
// connection layer, for collaborators building event-driven features on top
// of the cache.
//
// Publishing:
//
//	pub := pubsub.NewPublisher(client, log)
//	_, err := pub.PublishJSON(ctx, "user_events", event)
//
// Subscribing:
//
//	sub := pubsub.NewSubscriber(client, log)
//	subscription := sub.Subscribe(ctx, "user_events")
//	defer subscription.Close()
//
//	for msg := range subscription.Messages() {
//		handle(msg.Channel, msg.Payload)
//	}
//
// The subscription closes itself when the context is canceled; the Messages
// channel is closed in either case, so a range loop terminates cleanly.
// Fan-out, reconnection, and delivery semantics are those of Redis pub/sub;
// this package adds no buffering or retries of its own.
package pubsub
