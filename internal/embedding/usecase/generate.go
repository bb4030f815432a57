package usecase

import (
	"context"
	"crypto/sha256"
	"fmt"
	"strings"

	"pharma-search-srv/internal/embedding"
	"pharma-search-srv/internal/embedding/repository"
	"pharma-search-srv/internal/model"
	"pharma-search-srv/pkg/voyage"
)

func (uc *implUseCase) Generate(ctx context.Context, input embedding.GenerateInput) (embedding.GenerateOutput, error) {
	text := strings.Join(strings.Fields(input.Text), " ")
	if text == "" {
		uc.l.Errorf(ctx, "embedding.usecase.Generate: empty text")
		return embedding.GenerateOutput{}, embedding.ErrEmptyText
	}

	hash := fmt.Sprintf("%x", sha256.Sum256([]byte(strings.ToLower(text))))

	// 1. Check cache
	cached, err := uc.repo.Get(ctx, repository.GetOptions{Model: voyage.Model, TextHash: hash})
	if err == nil && len(cached) > 0 {
		uc.l.Debugf(ctx, "embedding.usecase.Generate: cache hit")
		return embedding.GenerateOutput{Vector: cached, CacheHit: true}, nil
	}

	// 2. Call Voyage
	callCtx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	vectors, err := uc.voyage.Embed(callCtx, []string{text})
	if err != nil {
		uc.l.Warnf(ctx, "embedding.usecase.Generate: Voyage embed failed: %v", err)
		return embedding.GenerateOutput{}, fmt.Errorf("%w: %v", model.ErrUpstreamUnavailable, err)
	}
	if len(vectors) == 0 || len(vectors[0]) == 0 {
		uc.l.Errorf(ctx, "embedding.usecase.Generate: no vector returned")
		return embedding.GenerateOutput{}, embedding.ErrNoVectorReturned
	}
	vector := vectors[0]

	// 3. Save cache; a failed write does not fail the request
	if err := uc.repo.Save(ctx, repository.SaveOptions{
		Model:    voyage.Model,
		TextHash: hash,
		Vector:   vector,
	}); err != nil {
		uc.l.Warnf(ctx, "embedding.usecase.Generate: cache save failed: %v", err)
	}

	return embedding.GenerateOutput{Vector: vector}, nil
}
