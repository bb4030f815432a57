package consumer

import (
	"context"

	"github.com/IBM/sarama"
)

type searchPerformedHandler struct {
	consumer *consumer
}

func (h *searchPerformedHandler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *searchPerformedHandler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

// ConsumeClaim marks a message only after it was handled, so a store outage leaves it for redelivery.
func (h *searchPerformedHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for msg := range claim.Messages() {
		if err := h.consumer.handleSearchPerformedMessage(session.Context(), msg); err != nil {
			h.consumer.l.Errorf(context.Background(), "analytics.delivery.kafka.consumer.ConsumeClaim: Failed to process message: %v", err)
			return err
		}
		session.MarkMessage(msg, "")
	}
	return nil
}
