package pubsub

import (
	"context"
	"encoding/json"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"github.com/helioslabs/sharedredis/v1/redis"
)

// Logger is an interface that matches v1/logger.Logger
type Logger interface {
	Info(msg string, err error, fields ...map[string]interface{})
	Warn(msg string, err error, fields ...map[string]interface{})
	Error(msg string, err error, fields ...map[string]interface{})
}

// Message is a single pub/sub message received on a subscription.
type Message struct {
	// Channel is the channel the message was published to. For pattern
	// subscriptions this is the concrete channel, not the pattern.
	Channel string

	// Payload is the raw message body.
	Payload string
}

// Publisher publishes messages to Redis channels. It is a passthrough over
// PUBLISH; delivery fan-out is entirely the server's concern.
type Publisher struct {
	client *redis.RedisClient
	logger Logger
}

// NewPublisher creates a Publisher over the given client.
func NewPublisher(client *redis.RedisClient, logger Logger) *Publisher {
	return &Publisher{client: client, logger: logger}
}

// Publish sends message to channel and returns the number of subscribers that
// received it.
func (p *Publisher) Publish(ctx context.Context, channel string, message string) (int64, error) {
	receivers, err := p.client.Publish(ctx, channel, message)
	if err != nil {
		if p.logger != nil {
			p.logger.Error("Failed to publish message", err, map[string]interface{}{"channel": channel})
		}
		return 0, fmt.Errorf("failed to publish to channel %q: %w", channel, err)
	}
	return receivers, nil
}

// PublishJSON serializes message to JSON and publishes it.
func (p *Publisher) PublishJSON(ctx context.Context, channel string, message interface{}) (int64, error) {
	payload, err := json.Marshal(message)
	if err != nil {
		return 0, fmt.Errorf("failed to serialize message for channel %q: %w", channel, err)
	}
	return p.Publish(ctx, channel, string(payload))
}

// Subscriber creates subscriptions on Redis channels.
type Subscriber struct {
	client *redis.RedisClient
	logger Logger
}

// NewSubscriber creates a Subscriber over the given client.
func NewSubscriber(client *redis.RedisClient, logger Logger) *Subscriber {
	return &Subscriber{client: client, logger: logger}
}

// Subscribe subscribes to the given channels and returns a Subscription
// streaming their messages. The subscription stays open until Close is called
// or the context is canceled.
func (s *Subscriber) Subscribe(ctx context.Context, channels ...string) *Subscription {
	return newSubscription(ctx, s.client.Subscribe(ctx, channels...), s.logger)
}

// PSubscribe subscribes to channels matching the given glob patterns.
func (s *Subscriber) PSubscribe(ctx context.Context, patterns ...string) *Subscription {
	return newSubscription(ctx, s.client.PSubscribe(ctx, patterns...), s.logger)
}

// Subscription is a live subscription delivering messages on a channel.
type Subscription struct {
	pubsub   *goredis.PubSub
	messages chan Message
}

func newSubscription(ctx context.Context, pubsub *goredis.PubSub, logger Logger) *Subscription {
	sub := &Subscription{
		pubsub:   pubsub,
		messages: make(chan Message),
	}

	go func() {
		defer close(sub.messages)
		upstream := pubsub.Channel()
		for {
			select {
			case <-ctx.Done():
				if err := pubsub.Close(); err != nil && logger != nil {
					logger.Warn("Failed to close subscription", err, nil)
				}
				return
			case msg, ok := <-upstream:
				if !ok {
					return
				}
				select {
				case sub.messages <- Message{Channel: msg.Channel, Payload: msg.Payload}:
				case <-ctx.Done():
					if err := pubsub.Close(); err != nil && logger != nil {
						logger.Warn("Failed to close subscription", err, nil)
					}
					return
				}
			}
		}
	}()

	return sub
}

// Messages returns the stream of messages for this subscription. The channel
// is closed when the subscription ends.
func (s *Subscription) Messages() <-chan Message {
	return s.messages
}

// Close terminates the subscription. The message channel is closed once the
// pump goroutine drains.
func (s *Subscription) Close() error {
	return s.pubsub.Close()
}
