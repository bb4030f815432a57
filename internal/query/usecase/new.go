package usecase

import (
	"time"

	"pharma-search-srv/internal/embedding"
	"pharma-search-srv/internal/query"
	"pharma-search-srv/pkg/gemini"
	"pharma-search-srv/pkg/log"

	lru "github.com/hashicorp/golang-lru/v2"
)

const (
	defaultTimeout   = 10 * time.Second
	defaultCacheSize = 1024
)

// Config tunes the interpreter.
type Config struct {
	Timeout   time.Duration
	CacheSize int
}

type implUseCase struct {
	gemini    gemini.IGemini
	embedding embedding.UseCase
	lexicon   *query.Lexicon
	cache     *lru.Cache[string, understanding]
	timeout   time.Duration
	now       func() time.Time
	l         log.Logger
}

// New creates the query interpreter. The lexicon is shared read-only across requests.
func New(gm gemini.IGemini, emb embedding.UseCase, lexicon *query.Lexicon, cfg Config, l log.Logger) query.UseCase {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.CacheSize <= 0 {
		cfg.CacheSize = defaultCacheSize
	}
	if lexicon == nil {
		lexicon = query.NewLexicon(query.DefaultLexiconOptions())
	}

	cache, err := lru.New[string, understanding](cfg.CacheSize)
	if err != nil {
		// only returned for a non-positive size
		panic(err)
	}

	return &implUseCase{
		gemini:    gm,
		embedding: emb,
		lexicon:   lexicon,
		cache:     cache,
		timeout:   cfg.Timeout,
		now:       time.Now,
		l:         l,
	}
}
