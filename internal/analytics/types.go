package analytics

import (
	"time"

	"pharma-search-srv/internal/model"
)

const (
	DefaultDays = 7
	MaxDays     = 365

	DefaultPopularLimit = 10
	MaxPopularLimit     = 100
)

type RecordInput struct {
	SearchID   string
	Query      string
	UserID     string
	Intent     string
	TotalFound int
	Confidence float64
	CreatedAt  time.Time
}

type ListPopularInput struct {
	Days  int
	Limit int
}

type ListPopularOutput struct {
	Since   time.Time
	Queries []model.PopularQuery
}
