package consumer

import (
	"pharma-search-srv/internal/analytics"
	kafkaDelivery "pharma-search-srv/internal/analytics/delivery/kafka"
)

// toRecordInput maps Kafka message DTO to usecase input (delivery → usecase boundary).
func toRecordInput(m kafkaDelivery.SearchPerformedMessage) analytics.RecordInput {
	return analytics.RecordInput{
		SearchID:   m.SearchID,
		Query:      m.Query,
		UserID:     m.UserID,
		Intent:     m.Intent,
		TotalFound: m.TotalFound,
		Confidence: m.Confidence,
		CreatedAt:  m.CreatedAt,
	}
}
