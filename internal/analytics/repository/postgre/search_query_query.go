package postgre

// Queries are grouped on the normalized text so "Pfizer  Deals" and "pfizer deals" count together.
const (
	insertSearchQuery = `
INSERT INTO search_queries (id, search_id, query, normalized_query, user_id, intent, total_found, confidence, created_at)
VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6, $7, $8, $9)
ON CONFLICT (search_id) DO NOTHING`

	listPopularQuery = `
SELECT MIN(query) AS query, COUNT(*) AS cnt, MAX(created_at) AS last_seen_at
FROM search_queries
WHERE created_at >= $1
GROUP BY normalized_query
ORDER BY cnt DESC, last_seen_at DESC
LIMIT $2`
)
