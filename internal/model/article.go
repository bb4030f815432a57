package model

import "time"

// Article is a news article as stored in the corpus. Read-only to the search pipeline.
type Article struct {
	ID      string
	Title   string
	Summary string
	Link    string

	// Classification
	Companies        []string
	Drugs            []string
	Topics           []string
	TopicConfidence  map[string]float64
	Phases           []string
	ApprovalStatuses []string
	Geographies      []string

	PublishedAt time.Time
}

// Age returns how long before now the article was published.
func (a Article) Age(now time.Time) time.Duration {
	return now.Sub(a.PublishedAt)
}
