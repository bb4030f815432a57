package kafka

import (
	"fmt"
	"sync"

	"pharma-search-srv/config"
	"pharma-search-srv/pkg/kafka"
)

var (
	consumerMu       sync.Mutex
	consumerInstance kafka.IConsumer
)

// ConnectConsumer returns the process-wide consumer group, joining it on first use.
// A new group reads the topic from the beginning so no recorded search is skipped.
func ConnectConsumer(cfg config.KafkaConfig) (kafka.IConsumer, error) {
	consumerMu.Lock()
	defer consumerMu.Unlock()

	if consumerInstance != nil {
		return consumerInstance, nil
	}

	group, err := kafka.NewConsumer(kafka.ConsumerConfig{
		Brokers: cfg.Brokers,
		GroupID: cfg.GroupID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to join Kafka consumer group %q: %w", cfg.GroupID, err)
	}

	consumerInstance = group
	return consumerInstance, nil
}

// DisconnectConsumer leaves the group and closes it.
func DisconnectConsumer() error {
	consumerMu.Lock()
	defer consumerMu.Unlock()

	if consumerInstance == nil {
		return nil
	}
	err := consumerInstance.Close()
	consumerInstance = nil
	return err
}
