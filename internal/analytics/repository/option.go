package repository

import (
	"time"

	"pharma-search-srv/internal/model"
)

type CreateSearchQueryOptions struct {
	SearchQuery model.SearchQuery
}

type ListPopularOptions struct {
	Since time.Time
	Limit int
}
