package usecase

import (
	"time"

	"pharma-search-srv/internal/rerank"
	"pharma-search-srv/pkg/gemini"
	"pharma-search-srv/pkg/log"
)

const defaultTimeout = 15 * time.Second

// Config tunes the reranker. A disabled reranker returns the fused order unchanged.
type Config struct {
	Enabled bool
	Timeout time.Duration
}

type implUseCase struct {
	gemini  gemini.IGemini
	enabled bool
	timeout time.Duration
	l       log.Logger
}

func New(gm gemini.IGemini, cfg Config, l log.Logger) rerank.UseCase {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	return &implUseCase{
		gemini:  gm,
		enabled: cfg.Enabled,
		timeout: cfg.Timeout,
		l:       l,
	}
}
