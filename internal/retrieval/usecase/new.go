package usecase

import (
	"time"

	"pharma-search-srv/internal/retrieval"
	"pharma-search-srv/internal/retrieval/repository"
	"pharma-search-srv/pkg/log"
)

const defaultTimeout = 10 * time.Second

type implUseCase struct {
	articleRepo repository.ArticleRepository
	vectorRepo  repository.VectorRepository
	timeout     time.Duration
	now         func() time.Time
	l           log.Logger
}

// New creates the retrieval usecase over the Postgres (lexical) and Qdrant (semantic) corpus sides.
func New(articleRepo repository.ArticleRepository, vectorRepo repository.VectorRepository, timeout time.Duration, l log.Logger) retrieval.UseCase {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &implUseCase{
		articleRepo: articleRepo,
		vectorRepo:  vectorRepo,
		timeout:     timeout,
		now:         time.Now,
		l:           l,
	}
}
