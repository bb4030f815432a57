package search

import (
	"time"

	"pharma-search-srv/internal/answer"
	"pharma-search-srv/internal/model"
	"pharma-search-srv/internal/query"
)

const (
	DefaultLimit   = 20
	MaxLimit       = 100
	MaxQueryLength = 1000
)

type SearchInput struct {
	Query         string
	Limit         int
	IncludeAnswer bool
	SessionID     string
}

type SearchOutput struct {
	SearchID string
	Query    string
	Parsed   query.StructuredQuery
	Results  []model.RankedResult
	Answer   *answer.Answer

	// TotalFound is the admitted candidate count before truncation to the limit.
	TotalFound int
	Confidence float64
	Stages     []model.StageOutcome

	CacheHit         bool
	ProcessingTimeMs int64
}

// SearchPerformed is emitted after every answered search.
type SearchPerformed struct {
	SearchID   string
	Query      string
	UserID     string
	Intent     string
	TotalFound int
	Confidence float64
	CacheHit   bool
	CreatedAt  time.Time
}
