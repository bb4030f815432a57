package qdrant

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidConfig      = errors.New("qdrant: invalid configuration")
	ErrConnectionFailed   = errors.New("qdrant: connection failed")
	ErrCollectionNotFound = errors.New("qdrant: collection not found")
	ErrEmptyCollection    = errors.New("qdrant: collection name cannot be empty")
	ErrInvalidVector      = errors.New("qdrant: empty query vector")
	ErrVectorSizeMismatch = errors.New("qdrant: collection vector size does not match the embedding model")
)

// WrapError prefixes err with msg, keeping it matchable with errors.Is.
func WrapError(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}
