package answer

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Synthesize writes a narrative over the top results. It never fails: a generation problem yields a placeholder.
	Synthesize(ctx context.Context, input SynthesizeInput) SynthesizeOutput
}
