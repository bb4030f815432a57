package repository

import "errors"

var (
	ErrFailedToInsert = errors.New("repository: failed to insert search query")
	ErrFailedToList   = errors.New("repository: failed to list popular queries")
)
