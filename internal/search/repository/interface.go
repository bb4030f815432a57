package repository

import (
	"context"
)

//go:generate mockery --name CacheRepository
type CacheRepository interface {
	// GetSearchResults returns the cached payload, or (nil, nil) on a miss.
	GetSearchResults(ctx context.Context, opt GetSearchResultsOptions) ([]byte, error)
	SaveSearchResults(ctx context.Context, opt SaveSearchResultsOptions) error
}
