package usecase

import (
	"time"

	"pharma-search-srv/internal/answer"
	"pharma-search-srv/internal/query"
	"pharma-search-srv/internal/rerank"
	"pharma-search-srv/internal/retrieval"
	"pharma-search-srv/internal/search"
	"pharma-search-srv/internal/search/repository"
	"pharma-search-srv/pkg/log"

	"github.com/google/uuid"
)

// Config - Cấu hình UseCase
type Config struct {
	DefaultLimit   int           // Results returned when the request leaves limit unset (default 20)
	ResultCacheTTL time.Duration // Search results cache TTL (default 5 min, negative disables the cache)
}

// DefaultConfig - Cấu hình mặc định
func DefaultConfig() Config {
	return Config{
		DefaultLimit:   search.DefaultLimit,
		ResultCacheTTL: 5 * time.Minute,
	}
}

// implUseCase - Implementation của UseCase interface
type implUseCase struct {
	queryUC     query.UseCase
	retrievalUC retrieval.UseCase
	rerankUC    rerank.UseCase
	answerUC    answer.UseCase
	cacheRepo   repository.CacheRepository
	producer    search.Producer
	l           log.Logger
	cfg         Config

	now   func() time.Time
	newID func() string
}

// New - Factory function. producer may be nil when analytics publishing is disabled.
func New(
	queryUC query.UseCase,
	retrievalUC retrieval.UseCase,
	rerankUC rerank.UseCase,
	answerUC answer.UseCase,
	cacheRepo repository.CacheRepository,
	producer search.Producer,
	l log.Logger,
	cfg Config,
) search.UseCase {
	if cfg.DefaultLimit <= 0 || cfg.DefaultLimit > search.MaxLimit {
		cfg.DefaultLimit = search.DefaultLimit
	}
	if cfg.ResultCacheTTL == 0 {
		cfg.ResultCacheTTL = DefaultConfig().ResultCacheTTL
	}
	return &implUseCase{
		queryUC:     queryUC,
		retrievalUC: retrievalUC,
		rerankUC:    rerankUC,
		answerUC:    answerUC,
		cacheRepo:   cacheRepo,
		producer:    producer,
		l:           l,
		cfg:         cfg,
		now:         time.Now,
		newID:       uuid.NewString,
	}
}
