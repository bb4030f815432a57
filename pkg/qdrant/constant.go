package qdrant

import "time"

const (
	// DefaultTimeout bounds a single search call when the caller's context has no deadline.
	DefaultTimeout = 10 * time.Second

	// DefaultPingTimeout is the timeout for the health ping in NewQdrant.
	DefaultPingTimeout = 5 * time.Second

	// DefaultSearchLimit matches the retrieval over-fetch size.
	DefaultSearchLimit = 100
)
