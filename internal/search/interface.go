package search

import (
	"context"

	"pharma-search-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Search(ctx context.Context, sc model.Scope, input SearchInput) (SearchOutput, error)
}

// Producer publishes search events for downstream analytics.
//
//go:generate mockery --name Producer
type Producer interface {
	PublishSearchPerformed(ctx context.Context, event SearchPerformed) error
}
