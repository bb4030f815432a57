package usecase

import (
	"time"

	"pharma-search-srv/internal/analytics"
	"pharma-search-srv/internal/analytics/repository"
	"pharma-search-srv/pkg/log"

	"github.com/google/uuid"
)

type implUseCase struct {
	repo repository.Repository
	l    log.Logger

	now   func() time.Time
	newID func() string
}

func New(repo repository.Repository, l log.Logger) analytics.UseCase {
	return &implUseCase{
		repo:  repo,
		l:     l,
		now:   time.Now,
		newID: uuid.NewString,
	}
}
