package kafka

import (
	"fmt"

	"github.com/IBM/sarama"
)

// Message is one record. Headers carry metadata such as the event type.
type Message struct {
	Key     []byte
	Value   []byte
	Headers map[string]string
}

// Config holds configuration for Kafka producer.
type Config struct {
	Brokers []string
	Topic   string
}

func (c Config) validate() error {
	if len(c.Brokers) == 0 {
		return fmt.Errorf("kafka: at least one broker is required")
	}
	if c.Topic == "" {
		return fmt.Errorf("kafka: topic is required")
	}
	return nil
}

// ConsumerConfig holds configuration for Kafka consumer group.
// FromNewest starts a brand-new group at the log end instead of the beginning.
type ConsumerConfig struct {
	Brokers    []string
	GroupID    string
	FromNewest bool
}

func (c ConsumerConfig) validate() error {
	if len(c.Brokers) == 0 {
		return fmt.Errorf("kafka: at least one broker is required")
	}
	if c.GroupID == "" {
		return fmt.Errorf("kafka: group ID is required")
	}
	return nil
}

type producerImpl struct {
	producer sarama.SyncProducer
	topic    string
}

type consumerImpl struct {
	group sarama.ConsumerGroup
}
