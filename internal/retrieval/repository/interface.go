package repository

import (
	"context"

	"pharma-search-srv/internal/model"
)

//go:generate mockery --name ArticleRepository
type ArticleRepository interface {
	// SearchLexical returns ids of articles matching the lexical terms and predicates, best rank first.
	SearchLexical(ctx context.Context, opt SearchLexicalOptions) ([]LexicalHit, error)
	// GetByIDs loads articles together with their lexical rank for the given terms.
	GetByIDs(ctx context.Context, opt GetByIDsOptions) ([]ArticleRow, error)
}

//go:generate mockery --name VectorRepository
type VectorRepository interface {
	// SearchSemantic returns the nearest articles to the embedding that satisfy the predicates.
	SearchSemantic(ctx context.Context, opt SearchSemanticOptions) ([]SemanticHit, error)
	// ScoreIDs returns the similarity of the given articles to the embedding.
	ScoreIDs(ctx context.Context, opt ScoreIDsOptions) ([]SemanticHit, error)
}

type LexicalHit struct {
	ID   string
	Rank float64
}

type SemanticHit struct {
	ID         string
	Similarity float64
}

type ArticleRow struct {
	Article     model.Article
	LexicalRank float64
}
