package usecase

import (
	"pharma-search-srv/internal/query"
	"pharma-search-srv/internal/retrieval"
)

// Plan compiles the structured query. Each non-empty list becomes one overlap predicate; empty lists add none.
// Drugs and indications only reach the store through the lexical terms.
func (uc *implUseCase) Plan(q query.StructuredQuery) retrieval.FetchSpec {
	spec := retrieval.FetchSpec{
		Embedding:     q.Embedding,
		LexicalTerms:  q.OriginalText,
		PublishedFrom: q.Timeframe.From,
		PublishedTo:   q.Timeframe.To,
		Limit:         retrieval.MaxCandidates,
	}

	candidates := []retrieval.Predicate{
		{Field: retrieval.FieldCompanies, Values: q.Entities.Companies},
		{Field: retrieval.FieldTopics, Values: q.Entities.Topics},
		{Field: retrieval.FieldPhases, Values: q.Filters.Phases},
		{Field: retrieval.FieldApprovalStatuses, Values: q.Filters.ApprovalStatuses},
		{Field: retrieval.FieldGeographies, Values: q.Filters.Geographies},
	}
	for _, p := range candidates {
		if len(p.Values) > 0 {
			spec.Predicates = append(spec.Predicates, p)
		}
	}
	return spec
}
