package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// IRedis is the byte-oriented cache client shared by the embedding and search result caches.
// Implementations are safe for concurrent use.
type IRedis interface {
	// Get returns the stored bytes. A missing key yields an error for which IsNil is true.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Ping(ctx context.Context) error
	Close() error
}

// NewRedis dials Redis and verifies it answers a ping within DefaultConnectTimeout.
func NewRedis(cfg RedisConfig) (IRedis, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	client := goredis.NewClient(cfg.options())

	ctx, cancel := context.WithTimeout(context.Background(), DefaultConnectTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", cfg.addr(), err)
	}

	return &redisImpl{client: client}, nil
}

// NewFromClient wraps an existing go-redis client. Used by tests against miniredis.
func NewFromClient(client *goredis.Client) IRedis {
	return &redisImpl{client: client}
}
