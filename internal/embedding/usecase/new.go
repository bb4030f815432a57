package usecase

import (
	"time"

	"pharma-search-srv/internal/embedding"
	"pharma-search-srv/internal/embedding/repository"
	"pharma-search-srv/pkg/log"
	"pharma-search-srv/pkg/voyage"
)

const defaultTimeout = 5 * time.Second

type implUseCase struct {
	repo    repository.Repository
	voyage  voyage.IVoyage
	timeout time.Duration
	l       log.Logger
}

// New creates the embedding usecase. A zero timeout uses the default.
func New(repo repository.Repository, voyage voyage.IVoyage, timeout time.Duration, l log.Logger) embedding.UseCase {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &implUseCase{
		repo:    repo,
		voyage:  voyage,
		timeout: timeout,
		l:       l,
	}
}
