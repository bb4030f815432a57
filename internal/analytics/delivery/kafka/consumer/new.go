package consumer

import (
	"context"
	"fmt"

	"pharma-search-srv/config"
	"pharma-search-srv/internal/analytics"
	pkgKafka "pharma-search-srv/pkg/kafka"
	"pharma-search-srv/pkg/log"
)

// Consumer for analytics domain
type Consumer interface {
	ConsumeSearchPerformed(ctx context.Context) error
	Close() error
}

// Config holds the configuration for analytics consumer
type Config struct {
	Logger      log.Logger
	KafkaConfig config.KafkaConfig
	UseCase     analytics.UseCase
	// Group is an already connected consumer group; one is created from KafkaConfig when nil.
	Group pkgKafka.IConsumer
}

type consumer struct {
	l           log.Logger
	kafkaConfig config.KafkaConfig
	uc          analytics.UseCase

	searchPerformedGroup pkgKafka.IConsumer
}

// New creates a new analytics consumer
func New(cfg Config) (Consumer, error) {
	if cfg.Logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if cfg.UseCase == nil {
		return nil, fmt.Errorf("usecase is required")
	}
	if len(cfg.KafkaConfig.Brokers) == 0 {
		return nil, fmt.Errorf("kafka brokers are required")
	}

	return &consumer{
		l:           cfg.Logger,
		kafkaConfig: cfg.KafkaConfig,
		uc:          cfg.UseCase,

		searchPerformedGroup: cfg.Group,
	}, nil
}

// Close closes all consumer groups
func (c *consumer) Close() error {
	if c.searchPerformedGroup != nil {
		if err := c.searchPerformedGroup.Close(); err != nil {
			return fmt.Errorf("failed to close search performed group: %w", err)
		}
	}
	return nil
}

func (c *consumer) createConsumerGroup(groupID string) (pkgKafka.IConsumer, error) {
	group, err := pkgKafka.NewConsumer(pkgKafka.ConsumerConfig{
		Brokers: c.kafkaConfig.Brokers,
		GroupID: groupID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create consumer group %s: %w", groupID, err)
	}
	return group, nil
}
