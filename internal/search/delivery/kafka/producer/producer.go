package producer

import (
	"context"
	"encoding/json"
	"fmt"

	"pharma-search-srv/internal/search"
	kafkaDelivery "pharma-search-srv/internal/search/delivery/kafka"
	pkgKafka "pharma-search-srv/pkg/kafka"
)

// PublishSearchPerformed publishes a search event keyed by search id
func (p *implProducer) PublishSearchPerformed(ctx context.Context, event search.SearchPerformed) error {
	msg := kafkaDelivery.SearchPerformedMessage{
		SearchID:   event.SearchID,
		Query:      event.Query,
		UserID:     event.UserID,
		Intent:     event.Intent,
		TotalFound: event.TotalFound,
		Confidence: event.Confidence,
		CacheHit:   event.CacheHit,
		CreatedAt:  event.CreatedAt,
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal search event: %w", err)
	}

	err = p.producer.Publish(ctx, pkgKafka.Message{
		Key:     []byte(event.SearchID),
		Value:   body,
		Headers: map[string]string{kafkaDelivery.HeaderEventType: kafkaDelivery.EventTypeSearchPerformed},
	})
	if err != nil {
		return fmt.Errorf("failed to publish search event: %w", err)
	}

	p.l.Debugf(ctx, "search.delivery.kafka.producer.PublishSearchPerformed: published %s", event.SearchID)
	return nil
}
