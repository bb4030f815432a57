package query

import (
	"time"

	"pharma-search-srv/internal/model"
)

// Intents
const (
	IntentSearch  = "search"
	IntentCompare = "compare"
	IntentTrack   = "track"
	IntentAnalyze = "analyze"
	IntentPredict = "predict"
)

// Sentiments
const (
	SentimentPositive = "positive"
	SentimentNegative = "negative"
	SentimentNeutral  = "neutral"
	SentimentAny      = "any"
)

// TimeframeAllTime means no lower bound on publish time.
const TimeframeAllTime = "all time"

// InterpretInput is the raw query. IssuedAt defaults to now when zero.
type InterpretInput struct {
	Text      string
	UserID    string
	SessionID string
	IssuedAt  time.Time
}

type InterpretOutput struct {
	Query    StructuredQuery
	Outcomes []model.StageOutcome
}

// Entities holds normalized, deduplicated entity sets.
type Entities struct {
	Companies   []string `json:"companies"`
	Drugs       []string `json:"drugs"`
	Indications []string `json:"indications"`
	Topics      []string `json:"topics"`
}

// Timeframe is a resolved half-open interval [From, To). From is nil for "all time".
type Timeframe struct {
	Keyword string     `json:"keyword"`
	From    *time.Time `json:"from,omitempty"`
	To      time.Time  `json:"to"`
}

// Contains reports whether t falls inside the interval.
func (tf Timeframe) Contains(t time.Time) bool {
	if tf.From != nil && t.Before(*tf.From) {
		return false
	}
	return t.Before(tf.To)
}

type Filters struct {
	Phases           []string `json:"phases"`
	ApprovalStatuses []string `json:"approval_statuses"`
	Geographies      []string `json:"geographies"`
}

// StructuredQuery is built once per request and never mutated downstream.
type StructuredQuery struct {
	Intent        string    `json:"intent"`
	Entities      Entities  `json:"entities"`
	Timeframe     Timeframe `json:"timeframe"`
	Filters       Filters   `json:"filters"`
	Sentiment     string    `json:"sentiment"`
	Relationships []string  `json:"relationships"`
	OriginalText  string    `json:"original_query"`
	IssuedAt      time.Time `json:"issued_at"`
	Embedding     []float32 `json:"-"`
}

// HasEmbedding reports whether a query vector is available for the semantic signal.
func (q StructuredQuery) HasEmbedding() bool {
	return len(q.Embedding) > 0
}
