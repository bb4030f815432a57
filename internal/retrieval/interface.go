package retrieval

import (
	"context"

	"pharma-search-srv/internal/query"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Plan compiles a structured query into a fetch specification. Pure.
	Plan(q query.StructuredQuery) FetchSpec
	// Retrieve fetches, admits and fuses candidates, ordered by combined score.
	Retrieve(ctx context.Context, q query.StructuredQuery) (RetrieveOutput, error)
}
