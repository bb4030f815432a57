package analytics

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Record stores one performed search. Replayed events with a known search id are ignored.
	Record(ctx context.Context, input RecordInput) error
	// ListPopular returns the most frequent normalized queries inside a trailing window.
	ListPopular(ctx context.Context, input ListPopularInput) (ListPopularOutput, error)
}
