package redis

import (
	"context"
	"fmt"
	"time"

	"pharma-search-srv/internal/search/repository"
	pkgRedis "pharma-search-srv/pkg/redis"
)

const (
	Prefix     = "search:results:"
	DefaultTTL = 5 * time.Minute
)

func (r *implCacheRepository) GetSearchResults(ctx context.Context, opt repository.GetSearchResultsOptions) ([]byte, error) {
	data, err := r.redis.Get(ctx, r.key(opt.Key))
	if err != nil {
		if pkgRedis.IsNil(err) {
			return nil, nil
		}
		r.l.Errorf(ctx, "search.repository.redis.GetSearchResults: %v", err)
		return nil, fmt.Errorf("%w: %v", repository.ErrCacheGetFailed, err)
	}
	return data, nil
}

func (r *implCacheRepository) SaveSearchResults(ctx context.Context, opt repository.SaveSearchResultsOptions) error {
	ttl := opt.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if err := r.redis.Set(ctx, r.key(opt.Key), opt.Data, ttl); err != nil {
		r.l.Errorf(ctx, "search.repository.redis.SaveSearchResults: Failed to save to cache: %v", err)
		return fmt.Errorf("%w: %v", repository.ErrCacheSetFailed, err)
	}
	return nil
}
