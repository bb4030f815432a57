package query

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Interpret turns raw query text into a StructuredQuery. It never fails:
	// upstream problems are absorbed and reported through Outcomes.
	Interpret(ctx context.Context, input InterpretInput) InterpretOutput
}
