// Package events carries domain mutation events from the store write path to
// the cache invalidation listener over an in-process watermill pub/sub.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"github.com/cldprgm/Network-vibe/domain"
)

const outputBuffer = 256

// Bus is the in-process pub/sub plus the router consuming it.
type Bus struct {
	PubSub *gochannel.GoChannel
	Router *message.Router
	logger watermill.LoggerAdapter
}

// NewBus creates the pub/sub and a router with panic recovery and retry.
func NewBus(logger watermill.LoggerAdapter) (*Bus, error) {
	if logger == nil {
		logger = NewLogger()
	}
	pubSub := gochannel.NewGoChannel(gochannel.Config{
		OutputChannelBuffer: outputBuffer,
	}, logger)

	router, err := message.NewRouter(message.RouterConfig{
		CloseTimeout: 10 * time.Second,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("create router: %w", err)
	}
	router.AddMiddleware(
		middleware.Recoverer,
		middleware.Retry{
			MaxRetries:      3,
			InitialInterval: 100 * time.Millisecond,
			MaxInterval:     2 * time.Second,
			Multiplier:      2,
			Logger:          logger,
		}.Middleware,
	)

	return &Bus{PubSub: pubSub, Router: router, logger: logger}, nil
}

// Start runs the router in the background and waits until it is running.
func (b *Bus) Start(ctx context.Context) error {
	go func() {
		if err := b.Router.Run(ctx); err != nil {
			b.logger.Error("router stopped", err, nil)
		}
	}()
	select {
	case <-b.Router.Running():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (b *Bus) Close() error {
	if err := b.Router.Close(); err != nil {
		return err
	}
	return b.PubSub.Close()
}

// Publisher publishes domain events on the topic named by their kind.
type Publisher struct {
	pub message.Publisher
}

var _ domain.EventPublisher = (*Publisher)(nil)

func NewPublisher(pub message.Publisher) *Publisher {
	return &Publisher{pub: pub}
}

func (p *Publisher) Publish(ctx context.Context, ev domain.Event) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal %s event: %w", ev.Kind, err)
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set("kind", string(ev.Kind))
	if err := p.pub.Publish(string(ev.Kind), msg); err != nil {
		return fmt.Errorf("publish %s: %w", ev.Kind, err)
	}
	return nil
}
