package redis

import (
	"context"
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

const (
	// DefaultConnectTimeout bounds the initial ping in NewRedis.
	DefaultConnectTimeout = 5 * time.Second
	// DefaultPoolSize covers one connection per in-flight search plus the embedding cache.
	DefaultPoolSize = 20
	// DefaultIOTimeout keeps a slow cache from eating the request budget.
	DefaultIOTimeout = 500 * time.Millisecond
)

var (
	ErrHostRequired = errors.New("redis: host is required")
	ErrInvalidPort  = errors.New("redis: invalid port")
)

func (r *redisImpl) Get(ctx context.Context, key string) ([]byte, error) {
	return r.client.Get(ctx, key).Bytes()
}

func (r *redisImpl) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return r.client.Set(ctx, key, value, ttl).Err()
}

func (r *redisImpl) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *redisImpl) Close() error {
	return r.client.Close()
}

// IsNil reports whether err is the go-redis "key does not exist" error.
func IsNil(err error) bool {
	return errors.Is(err, goredis.Nil)
}
