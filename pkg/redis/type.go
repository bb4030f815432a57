package redis

import (
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// RedisConfig holds Redis configuration. Zero pool and timeout values use the defaults below.
type RedisConfig struct {
	Host         string
	Port         int
	Password     string
	DB           int
	PoolSize     int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

func (c RedisConfig) validate() error {
	if c.Host == "" {
		return ErrHostRequired
	}
	if c.Port <= 0 || c.Port > 65535 {
		return ErrInvalidPort
	}
	return nil
}

func (c RedisConfig) addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func (c RedisConfig) options() *goredis.Options {
	opts := &goredis.Options{
		Addr:         c.addr(),
		Password:     c.Password,
		DB:           c.DB,
		PoolSize:     c.PoolSize,
		ReadTimeout:  c.ReadTimeout,
		WriteTimeout: c.WriteTimeout,
	}
	if opts.PoolSize <= 0 {
		opts.PoolSize = DefaultPoolSize
	}
	if opts.ReadTimeout <= 0 {
		opts.ReadTimeout = DefaultIOTimeout
	}
	if opts.WriteTimeout <= 0 {
		opts.WriteTimeout = DefaultIOTimeout
	}
	return opts
}

// redisImpl implements IRedis using go-redis.
type redisImpl struct {
	client *goredis.Client
}
