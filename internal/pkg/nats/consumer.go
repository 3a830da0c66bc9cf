package nats

import (
	"context"
	"fmt"
	"sync"

	"github.com/nats-io/nats.go/jetstream"
	"github.com/piresc/tumpangan/internal/pkg/logger"
)

// JetStreamMessageHandler processes one JetStream message
type JetStreamMessageHandler func(msg jetstream.Msg) error

// FailurePolicy decides what happens to a message whose handler failed
type FailurePolicy int

const (
	// NakOnError asks the server to redeliver, up to MaxDeliver
	NakOnError FailurePolicy = iota
	// AckOnError drops the message; the handler is expected to have logged it
	AckOnError
)

// Consumer runs a handler over a durable JetStream consumer
type Consumer struct {
	consumer   jetstream.Consumer
	policy     FailurePolicy
	mu         sync.Mutex
	consumeCtx jetstream.ConsumeContext
}

// NewJetStreamConsumer creates the durable consumer described by config and
// starts delivering its messages to handler
func NewJetStreamConsumer(ctx context.Context, client *Client, config ConsumerConfig, policy FailurePolicy, handler JetStreamMessageHandler) (*Consumer, error) {
	if client == nil {
		return nil, fmt.Errorf("client cannot be nil")
	}

	consumer, err := client.CreateConsumer(ctx, config)
	if err != nil {
		return nil, err
	}

	c := &Consumer{consumer: consumer, policy: policy}
	if err := c.start(handler); err != nil {
		return nil, err
	}

	logger.Info("JetStream consumer started",
		logger.String("stream", config.StreamName),
		logger.String("consumer", config.ConsumerName),
		logger.String("subject", config.FilterSubject))
	return c, nil
}

func (c *Consumer) start(handler JetStreamMessageHandler) error {
	consumeCtx, err := c.consumer.Consume(func(msg jetstream.Msg) {
		if err := handler(msg); err != nil {
			logger.Error("Error processing JetStream message",
				logger.String("subject", msg.Subject()),
				logger.Err(err))

			if c.policy == NakOnError {
				if nakErr := msg.Nak(); nakErr != nil {
					logger.Error("Failed to NAK message", logger.Err(nakErr))
				}
				return
			}
		}

		if ackErr := msg.Ack(); ackErr != nil {
			logger.Error("Failed to ACK message",
				logger.String("subject", msg.Subject()),
				logger.Err(ackErr))
		}
	})
	if err != nil {
		return fmt.Errorf("failed to start consuming: %w", err)
	}

	c.mu.Lock()
	c.consumeCtx = consumeCtx
	c.mu.Unlock()
	return nil
}

// Stop stops message delivery
func (c *Consumer) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.consumeCtx != nil {
		c.consumeCtx.Stop()
		c.consumeCtx = nil
		logger.Info("JetStream consumer stopped")
	}
}

// IsActive reports whether the consumer is delivering messages
func (c *Consumer) IsActive() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.consumeCtx != nil
}

// PendingMessages returns how many stream messages are not yet delivered
func (c *Consumer) PendingMessages(ctx context.Context) (uint64, error) {
	info, err := c.consumer.Info(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to get consumer info: %w", err)
	}
	return info.NumPending, nil
}
