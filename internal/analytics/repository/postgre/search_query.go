package postgre

import (
	"context"
	"fmt"
	"strings"

	"pharma-search-srv/internal/analytics/repository"
	"pharma-search-srv/internal/model"
)

// CreateSearchQuery - Insert single search row (idempotent on search_id)
func (r *implRepository) CreateSearchQuery(ctx context.Context, opt repository.CreateSearchQueryOptions) (bool, error) {
	q := opt.SearchQuery
	res, err := r.db.ExecContext(ctx, insertSearchQuery,
		q.ID, q.SearchID, q.Query, normalizeQuery(q.Query), q.UserID, q.Intent, q.TotalFound, q.Confidence, q.CreatedAt)
	if err != nil {
		r.l.Errorf(ctx, "analytics.repository.postgre.CreateSearchQuery: Failed to insert: %v", err)
		return false, fmt.Errorf("%w: %v", repository.ErrFailedToInsert, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: %v", repository.ErrFailedToInsert, err)
	}
	return n > 0, nil
}

// ListPopular - Most frequent normalized queries since opt.Since
func (r *implRepository) ListPopular(ctx context.Context, opt repository.ListPopularOptions) ([]model.PopularQuery, error) {
	rows, err := r.db.QueryContext(ctx, listPopularQuery, opt.Since, opt.Limit)
	if err != nil {
		r.l.Errorf(ctx, "analytics.repository.postgre.ListPopular: %v", err)
		return nil, fmt.Errorf("%w: %v", repository.ErrFailedToList, err)
	}
	defer rows.Close()

	out := make([]model.PopularQuery, 0, opt.Limit)
	for rows.Next() {
		var p model.PopularQuery
		if err := rows.Scan(&p.Query, &p.Count, &p.LastSeenAt); err != nil {
			return nil, fmt.Errorf("%w: scan: %v", repository.ErrFailedToList, err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", repository.ErrFailedToList, err)
	}
	return out, nil
}

func normalizeQuery(q string) string {
	return strings.Join(strings.Fields(strings.ToLower(q)), " ")
}
