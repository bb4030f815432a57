package kafka

import "time"

// Header keys and values set on every search event.
const (
	HeaderEventType          = "event-type"
	EventTypeSearchPerformed = "search.performed"
)

// SearchPerformedMessage - Kafka message cho pharma.search.performed
type SearchPerformedMessage struct {
	SearchID   string    `json:"search_id"`
	Query      string    `json:"query"`
	UserID     string    `json:"user_id,omitempty"`
	Intent     string    `json:"intent"`
	TotalFound int       `json:"total_found"`
	Confidence float64   `json:"confidence"`
	CacheHit   bool      `json:"cache_hit"`
	CreatedAt  time.Time `json:"created_at"`
}
