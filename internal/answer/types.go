package answer

import (
	"time"

	"pharma-search-srv/internal/model"
)

const (
	// MaxContextArticles bounds how many results feed the generative context.
	MaxContextArticles = 5

	// NoResultsSummary is returned verbatim when nothing was retrieved.
	NoResultsSummary = "No relevant articles found for your query."

	// PlaceholderSummary replaces the narrative when generation fails; citations are still returned.
	PlaceholderSummary = "A summary could not be generated right now. The cited articles below are the most relevant matches for your query."
)

// Citation points at one article that was placed in the generative context.
type Citation struct {
	Title string    `json:"title"`
	Link  string    `json:"link"`
	Date  time.Time `json:"date"`
}

// Answer is the synthesized narrative with its sources.
type Answer struct {
	Summary          string     `json:"summary"`
	Confidence       float64    `json:"confidence"`
	Sources          []Citation `json:"sources"`
	ArticlesAnalyzed int        `json:"articles_analyzed"`
	Fallback         bool       `json:"fallback,omitempty"`
}

type SynthesizeInput struct {
	Query      string
	Results    []model.RankedResult
	Confidence float64
}

type SynthesizeOutput struct {
	Answer  Answer
	Outcome model.StageOutcome
}
