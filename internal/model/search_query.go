package model

import "time"

// SearchQuery is one recorded search, written by the analytics consumer.
type SearchQuery struct {
	ID         string
	SearchID   string
	Query      string
	UserID     string
	Intent     string
	TotalFound int
	Confidence float64
	CreatedAt  time.Time
}

// PopularQuery is an aggregated search frequency.
type PopularQuery struct {
	Query      string
	Count      int
	LastSeenAt time.Time
}
