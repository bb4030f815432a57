package rerank

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Rerank blends judge scores into the fused ranking. It never fails: a judge problem skips the stage.
	Rerank(ctx context.Context, input RerankInput) RerankOutput
}
