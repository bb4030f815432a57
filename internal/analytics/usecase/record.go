package usecase

import (
	"context"
	"fmt"
	"strings"

	"pharma-search-srv/internal/analytics"
	"pharma-search-srv/internal/analytics/repository"
	"pharma-search-srv/internal/model"
)

func (uc *implUseCase) Record(ctx context.Context, input analytics.RecordInput) error {
	query := strings.TrimSpace(input.Query)
	if input.SearchID == "" || query == "" {
		return analytics.ErrInvalidEvent
	}

	createdAt := input.CreatedAt
	if createdAt.IsZero() {
		createdAt = uc.now()
	}

	created, err := uc.repo.CreateSearchQuery(ctx, repository.CreateSearchQueryOptions{
		SearchQuery: model.SearchQuery{
			ID:         uc.newID(),
			SearchID:   input.SearchID,
			Query:      query,
			UserID:     input.UserID,
			Intent:     input.Intent,
			TotalFound: input.TotalFound,
			Confidence: input.Confidence,
			CreatedAt:  createdAt.UTC(),
		},
	})
	if err != nil {
		uc.l.Errorf(ctx, "analytics.usecase.Record: %v", err)
		return fmt.Errorf("%w: %v", analytics.ErrStoreFailed, err)
	}
	if !created {
		uc.l.Debugf(ctx, "analytics.usecase.Record: duplicate search %s ignored", input.SearchID)
	}
	return nil
}

func (uc *implUseCase) ListPopular(ctx context.Context, input analytics.ListPopularInput) (analytics.ListPopularOutput, error) {
	if input.Days < 0 || input.Limit < 0 {
		return analytics.ListPopularOutput{}, analytics.ErrInvalidWindow
	}

	days := input.Days
	if days == 0 {
		days = analytics.DefaultDays
	}
	if days > analytics.MaxDays {
		days = analytics.MaxDays
	}
	limit := input.Limit
	if limit == 0 {
		limit = analytics.DefaultPopularLimit
	}
	if limit > analytics.MaxPopularLimit {
		limit = analytics.MaxPopularLimit
	}

	since := uc.now().UTC().AddDate(0, 0, -days)
	queries, err := uc.repo.ListPopular(ctx, repository.ListPopularOptions{Since: since, Limit: limit})
	if err != nil {
		uc.l.Errorf(ctx, "analytics.usecase.ListPopular: %v", err)
		return analytics.ListPopularOutput{}, fmt.Errorf("%w: %v", analytics.ErrStoreFailed, err)
	}

	return analytics.ListPopularOutput{Since: since, Queries: queries}, nil
}
