package kafka

import (
	"time"

	"github.com/IBM/sarama"
)

const (
	// ProducerTimeout is short: the only events produced are best-effort analytics.
	ProducerTimeout = 3 * time.Second
	// ProducerRetryMax is the max producer retries.
	ProducerRetryMax = 2
)

// KafkaVersion is the protocol version negotiated with the brokers.
var KafkaVersion = sarama.V2_6_0_0
