package repository

import (
	"context"

	"pharma-search-srv/internal/model"
)

//go:generate mockery --name Repository
type Repository interface {
	// CreateSearchQuery inserts one row. It reports created=false when the search id already exists.
	CreateSearchQuery(ctx context.Context, opt CreateSearchQueryOptions) (created bool, err error)
	ListPopular(ctx context.Context, opt ListPopularOptions) ([]model.PopularQuery, error)
}
