package repository

import (
	"time"

	"pharma-search-srv/internal/retrieval"
)

// Filter is the predicate set shared by both corpus sides.
type Filter struct {
	Overlaps      []retrieval.Predicate
	PublishedFrom *time.Time
	PublishedTo   time.Time
}

type SearchLexicalOptions struct {
	Terms   string
	Filter  Filter
	MinRank float64
	Limit   int
}

type GetByIDsOptions struct {
	IDs   []string
	Terms string
}

type SearchSemanticOptions struct {
	Vector         []float32
	Filter         Filter
	ScoreThreshold float32
	Limit          int
}

type ScoreIDsOptions struct {
	Vector []float32
	IDs    []string
}
