package redis

import (
	"time"

	"pharma-search-srv/internal/embedding/repository"
	"pharma-search-srv/pkg/log"
	pkgRedis "pharma-search-srv/pkg/redis"
)

type implRepository struct {
	redis pkgRedis.IRedis
	ttl   time.Duration
	l     log.Logger
}

// New creates the Redis embedding cache. A non-positive ttl uses DefaultTTL.
func New(redis pkgRedis.IRedis, ttl time.Duration, l log.Logger) repository.Repository {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &implRepository{
		redis: redis,
		ttl:   ttl,
		l:     l,
	}
}
