package retrieval

import (
	"time"

	"pharma-search-srv/internal/model"
)

const (
	// MaxCandidates is the over-fetch size handed to the reranker.
	MaxCandidates = 100

	// Admission cutoffs. A candidate qualifies when either signal clears its cutoff.
	LexicalCutoff  = 0.01
	SemanticCutoff = 0.70
)

// Predicate fields. Each maps to a text[] column in Postgres and a keyword payload key in Qdrant.
const (
	FieldCompanies        = "companies"
	FieldTopics           = "topics"
	FieldPhases           = "phases"
	FieldApprovalStatuses = "approval_statuses"
	FieldGeographies      = "geographies"
)

// Predicate is an overlap filter: the article must carry at least one of Values in Field.
type Predicate struct {
	Field  string
	Values []string
}

// FetchSpec is what the corpus store is asked for.
type FetchSpec struct {
	Embedding     []float32
	LexicalTerms  string
	Predicates    []Predicate
	PublishedFrom *time.Time
	PublishedTo   time.Time
	Limit         int
}

type RetrieveOutput struct {
	// Candidates are admitted, fused and ordered by combined score, at most MaxCandidates.
	Candidates []model.Candidate
	Outcome    model.StageOutcome
}

// Admit reports whether a candidate clears the admission cutoff.
func Admit(lexicalRank, semanticSimilarity float64) bool {
	return lexicalRank > LexicalCutoff || semanticSimilarity > SemanticCutoff
}
