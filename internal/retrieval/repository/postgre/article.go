package postgre

import (
	"context"
	"encoding/json"
	"fmt"

	"pharma-search-srv/internal/retrieval/repository"

	"github.com/lib/pq"
)

// SearchLexical - Full-text candidates ranked with ts_rank_cd
func (r *implRepository) SearchLexical(ctx context.Context, opt repository.SearchLexicalOptions) ([]repository.LexicalHit, error) {
	if opt.Terms == "" {
		return nil, nil
	}

	query, args, err := buildSearchLexicalQuery(opt)
	if err != nil {
		return nil, fmt.Errorf("SearchLexical: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "retrieval.repository.postgre.SearchLexical: %v", err)
		return nil, fmt.Errorf("SearchLexical: %w: %v", repository.ErrFailedToSearch, err)
	}
	defer rows.Close()

	var hits []repository.LexicalHit
	for rows.Next() {
		var h repository.LexicalHit
		if err := rows.Scan(&h.ID, &h.Rank); err != nil {
			return nil, fmt.Errorf("SearchLexical: scan: %w", err)
		}
		hits = append(hits, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("SearchLexical: %w", err)
	}

	return hits, nil
}

// GetByIDs - Hydrate articles and their lexical rank
func (r *implRepository) GetByIDs(ctx context.Context, opt repository.GetByIDsOptions) ([]repository.ArticleRow, error) {
	if len(opt.IDs) == 0 {
		return nil, nil
	}

	rows, err := r.db.QueryContext(ctx, getByIDsQuery, opt.Terms, pq.Array(opt.IDs))
	if err != nil {
		r.l.Errorf(ctx, "retrieval.repository.postgre.GetByIDs: %v", err)
		return nil, fmt.Errorf("GetByIDs: %w: %v", repository.ErrFailedToGet, err)
	}
	defer rows.Close()

	out := make([]repository.ArticleRow, 0, len(opt.IDs))
	for rows.Next() {
		var row repository.ArticleRow
		var topicConfidence []byte
		a := &row.Article

		if err := rows.Scan(
			&a.ID, &a.Title, &a.Summary, &a.Link,
			pq.Array(&a.Companies), pq.Array(&a.Drugs), pq.Array(&a.Topics), &topicConfidence,
			pq.Array(&a.Phases), pq.Array(&a.ApprovalStatuses), pq.Array(&a.Geographies),
			&a.PublishedAt, &row.LexicalRank,
		); err != nil {
			return nil, fmt.Errorf("GetByIDs: scan: %w", err)
		}

		if len(topicConfidence) > 0 {
			if err := json.Unmarshal(topicConfidence, &a.TopicConfidence); err != nil {
				r.l.Warnf(ctx, "retrieval.repository.postgre.GetByIDs: bad topic_confidence for %s: %v", a.ID, err)
			}
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("GetByIDs: %w", err)
	}

	return out, nil
}
