package redis

import (
	"pharma-search-srv/internal/search/repository"
	"pharma-search-srv/pkg/log"
	pkgRedis "pharma-search-srv/pkg/redis"
)

// PayloadVersion is bumped whenever the cached SearchOutput layout changes,
// so old entries age out instead of failing to decode.
const PayloadVersion = "v2"

type implCacheRepository struct {
	redis  pkgRedis.IRedis
	prefix string
	l      log.Logger
}

// New creates the search result cache on top of Redis.
func New(redis pkgRedis.IRedis, l log.Logger) repository.CacheRepository {
	return &implCacheRepository{
		redis:  redis,
		prefix: Prefix + PayloadVersion + ":",
		l:      l,
	}
}

func (r *implCacheRepository) key(k string) string {
	return r.prefix + k
}
