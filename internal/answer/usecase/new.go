package usecase

import (
	"time"

	"pharma-search-srv/internal/answer"
	"pharma-search-srv/pkg/gemini"
	"pharma-search-srv/pkg/log"
)

const defaultTimeout = 30 * time.Second

type implUseCase struct {
	gemini  gemini.IGemini
	timeout time.Duration
	l       log.Logger
}

func New(gm gemini.IGemini, timeout time.Duration, l log.Logger) answer.UseCase {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &implUseCase{
		gemini:  gm,
		timeout: timeout,
		l:       l,
	}
}
