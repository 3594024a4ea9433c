package pubsub

import (
	"go.uber.org/fx"

	"github.com/helioslabs/sharedredis/v1/redis"
)

// FXModule is an fx.Module that provides the pub/sub helpers.
var FXModule = fx.Module("pubsub",
	fx.Provide(
		NewPublisherWithDI,
		NewSubscriberWithDI,
	),
)

// PubSubParams groups the dependencies needed to create the pub/sub helpers.
type PubSubParams struct {
	fx.In

	Client *redis.RedisClient
	Logger Logger `optional:"true"`
}

// NewPublisherWithDI creates a Publisher using dependency injection.
func NewPublisherWithDI(params PubSubParams) *Publisher {
	return NewPublisher(params.Client, params.Logger)
}

// NewSubscriberWithDI creates a Subscriber using dependency injection.
func NewSubscriberWithDI(params PubSubParams) *Subscriber {
	return NewSubscriber(params.Client, params.Logger)
}
