package search

import "errors"

var (
	ErrInvalidQuery = errors.New("search: query must not be blank")
	ErrQueryTooLong = errors.New("search: query too long")
)
