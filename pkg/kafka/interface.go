package kafka

import (
	"context"

	"github.com/IBM/sarama"
)

// IProducer publishes events to one topic.
// Implementations are safe for concurrent use.
type IProducer interface {
	// Publish sends msg and waits for the broker ack. It returns ctx.Err() without sending when ctx is done.
	Publish(ctx context.Context, msg Message) error
	Close() error
	HealthCheck() error
}

// IConsumer wraps a sarama consumer group.
type IConsumer interface {
	// ConsumeWithContext runs one group session and returns on rebalance or when ctx is cancelled.
	// Callers loop on it.
	ConsumeWithContext(ctx context.Context, topics []string, handler sarama.ConsumerGroupHandler) error
	Close() error
	Errors() <-chan error
}

// NewProducer creates a new Kafka producer. Returns the interface.
func NewProducer(cfg Config) (IProducer, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return newProducerImpl(cfg)
}

// NewConsumer creates a new Kafka consumer group. Returns the interface.
func NewConsumer(cfg ConsumerConfig) (IConsumer, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return newConsumerImpl(cfg)
}
