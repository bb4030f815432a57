package repository

import "context"

// Repository caches query embeddings per model so a model switch never serves stale vectors.
//
//go:generate mockery --name Repository
type Repository interface {
	// Get returns (nil, nil) on a miss.
	Get(ctx context.Context, opt GetOptions) ([]float32, error)
	Save(ctx context.Context, opt SaveOptions) error
}
