package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/IBM/sarama"

	"pharma-search-srv/internal/analytics"
	kafkaDelivery "pharma-search-srv/internal/analytics/delivery/kafka"
	"pharma-search-srv/internal/model"
	"pharma-search-srv/pkg/scope"
)

// handleSearchPerformedMessage decodes, validates format and delegates to usecase (no business logic here).
// Poison messages are skipped; only store failures are returned so the offset is not committed.
func (c *consumer) handleSearchPerformedMessage(ctx context.Context, msg *sarama.ConsumerMessage) error {
	c.l.Debugf(ctx, "analytics.delivery.kafka.consumer.handleSearchPerformedMessage: partition %d, offset %d",
		msg.Partition, msg.Offset)

	var message kafkaDelivery.SearchPerformedMessage
	if err := json.Unmarshal(msg.Value, &message); err != nil {
		c.l.Warnf(ctx, "analytics.delivery.kafka.consumer.handleSearchPerformedMessage: Invalid message format (skipping): %v", err)
		return nil
	}

	ctx = scope.SetScopeToContext(ctx, model.Scope{UserID: "system", Role: "system"})

	if err := c.uc.Record(ctx, toRecordInput(message)); err != nil {
		if errors.Is(err, analytics.ErrInvalidEvent) {
			c.l.Warnf(ctx, "analytics.delivery.kafka.consumer.handleSearchPerformedMessage: %v (skipping)", err)
			return nil
		}
		return fmt.Errorf("usecase error: %w", err)
	}
	return nil
}
