package kafka

import (
	"fmt"
	"sync"

	"pharma-search-srv/config"
	"pharma-search-srv/pkg/kafka"
)

var (
	producerMu       sync.Mutex
	producerInstance kafka.IProducer
)

// ConnectProducer returns the process-wide producer for the search events topic, creating it on first use.
func ConnectProducer(cfg config.KafkaConfig) (kafka.IProducer, error) {
	producerMu.Lock()
	defer producerMu.Unlock()

	if producerInstance != nil {
		return producerInstance, nil
	}

	client, err := kafka.NewProducer(kafka.Config{
		Brokers: cfg.Brokers,
		Topic:   cfg.Topic,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Kafka producer for %s: %w", cfg.Topic, err)
	}

	producerInstance = client
	return producerInstance, nil
}

// DisconnectProducer flushes and closes the producer.
func DisconnectProducer() error {
	producerMu.Lock()
	defer producerMu.Unlock()

	if producerInstance == nil {
		return nil
	}
	err := producerInstance.Close()
	producerInstance = nil
	return err
}
