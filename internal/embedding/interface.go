package embedding

import (
	"context"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Generate embeds a query text, reading through the Redis cache.
	Generate(ctx context.Context, input GenerateInput) (GenerateOutput, error)
}
