package repository

import "errors"

var (
	ErrCacheSetFailed = errors.New("repository: failed to set cache")
	ErrCacheGetFailed = errors.New("repository: failed to get cache")
)
