package repository

import "time"

type GetSearchResultsOptions struct {
	Key string
}

type SaveSearchResultsOptions struct {
	Key  string
	Data []byte
	TTL  time.Duration
}
