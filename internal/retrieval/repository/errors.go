package repository

import "errors"

var (
	ErrFailedToSearch = errors.New("failed to search")
	ErrFailedToGet    = errors.New("failed to get")
)
