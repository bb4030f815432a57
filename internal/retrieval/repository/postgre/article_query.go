package postgre

import (
	"fmt"
	"strings"

	"pharma-search-srv/internal/retrieval"
	"pharma-search-srv/internal/retrieval/repository"

	"github.com/lib/pq"
)

// overlapColumns whitelists the text[] columns a predicate may target.
var overlapColumns = map[string]string{
	retrieval.FieldCompanies:        "companies",
	retrieval.FieldTopics:           "topics",
	retrieval.FieldPhases:           "phases",
	retrieval.FieldApprovalStatuses: "approval_statuses",
	retrieval.FieldGeographies:      "geographies",
}

// buildSearchLexicalQuery - Build query for SearchLexical
func buildSearchLexicalQuery(opt repository.SearchLexicalOptions) (string, []interface{}, error) {
	query := `
		SELECT id, lexical_rank FROM (
			SELECT id, published_at, ts_rank_cd(search_vector, q) AS lexical_rank
			FROM articles, plainto_tsquery('english', $1) q
			WHERE search_vector @@ q`
	args := []interface{}{opt.Terms}
	argIdx := 2

	where, whereArgs, err := buildFilterClause(opt.Filter, argIdx)
	if err != nil {
		return "", nil, err
	}
	query += where
	args = append(args, whereArgs...)
	argIdx += len(whereArgs)

	query += fmt.Sprintf(`
		) ranked
		WHERE lexical_rank > $%d
		ORDER BY lexical_rank DESC, published_at DESC, id`, argIdx)
	args = append(args, opt.MinRank)
	argIdx++

	if opt.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", argIdx)
		args = append(args, opt.Limit)
	}

	return query, args, nil
}

// buildFilterClause renders predicates as AND clauses starting at placeholder argIdx.
// Predicates without values contribute nothing.
func buildFilterClause(f repository.Filter, argIdx int) (string, []interface{}, error) {
	var b strings.Builder
	var args []interface{}

	for _, p := range f.Overlaps {
		if len(p.Values) == 0 {
			continue
		}
		col, ok := overlapColumns[p.Field]
		if !ok {
			return "", nil, fmt.Errorf("buildFilterClause: unknown field %q", p.Field)
		}
		fmt.Fprintf(&b, " AND %s && $%d::text[]", col, argIdx)
		args = append(args, pq.Array(p.Values))
		argIdx++
	}

	if f.PublishedFrom != nil {
		fmt.Fprintf(&b, " AND published_at >= $%d", argIdx)
		args = append(args, *f.PublishedFrom)
		argIdx++
	}
	if !f.PublishedTo.IsZero() {
		fmt.Fprintf(&b, " AND published_at < $%d", argIdx)
		args = append(args, f.PublishedTo)
	}

	return b.String(), args, nil
}

const getByIDsQuery = `
	SELECT id, title, summary, link,
		companies, drugs, topics, topic_confidence, phases, approval_statuses, geographies,
		published_at,
		COALESCE(ts_rank_cd(search_vector, plainto_tsquery('english', $1)), 0) AS lexical_rank
	FROM articles
	WHERE id::text = ANY($2::text[])
`
