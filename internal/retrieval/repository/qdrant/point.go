package qdrant

import (
	"context"
	"fmt"

	"pharma-search-srv/internal/retrieval/repository"
	pkgQdrant "pharma-search-srv/pkg/qdrant"

	pb "github.com/qdrant/go-client/qdrant"
)

func (r *implRepository) SearchSemantic(ctx context.Context, opt repository.SearchSemanticOptions) ([]repository.SemanticHit, error) {
	if len(opt.Vector) == 0 {
		return nil, nil
	}

	params := pkgQdrant.SearchParams{
		Vector:        opt.Vector,
		Limit:         uint64(opt.Limit),
		Filter:        buildFilter(opt.Filter),
		PayloadFields: []string{PayloadPublishedAt},
	}
	if opt.ScoreThreshold > 0 {
		threshold := opt.ScoreThreshold
		params.ScoreThreshold = &threshold
	}

	results, err := r.client.Search(ctx, r.collection, params)
	if err != nil {
		r.l.Errorf(ctx, "retrieval.repository.qdrant.SearchSemantic: Failed to search points: %v", err)
		return nil, fmt.Errorf("%w: %v", repository.ErrFailedToSearch, err)
	}
	return toHits(results), nil
}

func (r *implRepository) ScoreIDs(ctx context.Context, opt repository.ScoreIDsOptions) ([]repository.SemanticHit, error) {
	if len(opt.Vector) == 0 || len(opt.IDs) == 0 {
		return nil, nil
	}

	results, err := r.client.Search(ctx, r.collection, pkgQdrant.SearchParams{
		Vector:        opt.Vector,
		Limit:         uint64(len(opt.IDs)),
		Filter:        &pb.Filter{Must: []*pb.Condition{pkgQdrant.HasIDs(opt.IDs)}},
		PayloadFields: []string{PayloadPublishedAt},
	})
	if err != nil {
		r.l.Errorf(ctx, "retrieval.repository.qdrant.ScoreIDs: Failed to search points: %v", err)
		return nil, fmt.Errorf("%w: %v", repository.ErrFailedToSearch, err)
	}
	return toHits(results), nil
}

func toHits(results []pkgQdrant.SearchResult) []repository.SemanticHit {
	hits := make([]repository.SemanticHit, len(results))
	for i, res := range results {
		hits[i] = repository.SemanticHit{ID: res.ID, Similarity: float64(res.Score)}
	}
	return hits
}
