package analytics

import "errors"

var (
	ErrInvalidEvent  = errors.New("analytics: event is missing search id or query")
	ErrInvalidWindow = errors.New("analytics: days and limit must be positive")
	ErrStoreFailed   = errors.New("analytics: search query store failed")
)
