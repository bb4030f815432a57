package usecase

import (
	"context"
	"fmt"
	"time"

	"pharma-search-srv/internal/fusion"
	"pharma-search-srv/internal/metrics"
	"pharma-search-srv/internal/model"
	"pharma-search-srv/internal/query"
	"pharma-search-srv/internal/retrieval"
	"pharma-search-srv/internal/retrieval/repository"

	"golang.org/x/sync/errgroup"
)

// Retrieve - Fetch both corpus sides in parallel, admit, fuse and rank
// Flow: plan → lexical ∥ semantic → union ids → hydrate + fill missing signals → admit → fuse → rank → cap
func (uc *implUseCase) Retrieve(ctx context.Context, q query.StructuredQuery) (retrieval.RetrieveOutput, error) {
	start := time.Now()
	defer metrics.ObserveStage(model.StageRetrieve, start)

	spec := uc.Plan(q)

	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	now := q.IssuedAt
	if now.IsZero() {
		now = uc.now()
	}

	candidates, err := uc.fetch(ctx, spec, q.Entities.Topics, now)
	if err != nil {
		uc.l.Errorf(ctx, "retrieval.usecase.Retrieve: %v", err)
		return retrieval.RetrieveOutput{}, fmt.Errorf("%w: %v", retrieval.ErrCorpusUnavailable, err)
	}

	ranked := fusion.Rank(candidates)
	if len(ranked) > spec.Limit {
		ranked = ranked[:spec.Limit]
	}

	out := retrieval.RetrieveOutput{Candidates: ranked, Outcome: model.OK(model.StageRetrieve)}
	if len(ranked) == 0 {
		out.Outcome = model.Fallback(model.StageRetrieve, model.ErrNoCandidates)
	}

	uc.l.Debugf(ctx, "retrieval.usecase.Retrieve: predicates=%d, semantic=%v, candidates=%d",
		len(spec.Predicates), len(spec.Embedding) > 0, len(ranked))
	return out, nil
}

func (uc *implUseCase) fetch(ctx context.Context, spec retrieval.FetchSpec, queryTopics []string, now time.Time) ([]model.Candidate, error) {
	filter := repository.Filter{
		Overlaps:      spec.Predicates,
		PublishedFrom: spec.PublishedFrom,
		PublishedTo:   spec.PublishedTo,
	}

	var lexHits []repository.LexicalHit
	var semHits []repository.SemanticHit

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		hits, err := uc.articleRepo.SearchLexical(gctx, repository.SearchLexicalOptions{
			Terms:   spec.LexicalTerms,
			Filter:  filter,
			MinRank: retrieval.LexicalCutoff,
			Limit:   spec.Limit,
		})
		if err != nil {
			return fmt.Errorf("lexical: %w", err)
		}
		lexHits = hits
		return nil
	})
	if len(spec.Embedding) > 0 {
		g.Go(func() error {
			hits, err := uc.vectorRepo.SearchSemantic(gctx, repository.SearchSemanticOptions{
				Vector:         spec.Embedding,
				Filter:         filter,
				ScoreThreshold: retrieval.SemanticCutoff,
				Limit:          spec.Limit,
			})
			if err != nil {
				return fmt.Errorf("semantic: %w", err)
			}
			semHits = hits
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Retrieval order: lexical hits first, then semantic-only hits.
	order := make([]string, 0, len(lexHits)+len(semHits))
	semantic := make(map[string]float64, len(semHits))
	seen := make(map[string]bool, cap(order))
	for _, h := range lexHits {
		if !seen[h.ID] {
			seen[h.ID] = true
			order = append(order, h.ID)
		}
	}
	for _, h := range semHits {
		semantic[h.ID] = h.Similarity
		if !seen[h.ID] {
			seen[h.ID] = true
			order = append(order, h.ID)
		}
	}
	if len(order) == 0 {
		return nil, nil
	}

	// Similarity for lexical-only hits
	if len(spec.Embedding) > 0 {
		var missing []string
		for _, id := range order {
			if _, ok := semantic[id]; !ok {
				missing = append(missing, id)
			}
		}
		if len(missing) > 0 {
			scored, err := uc.vectorRepo.ScoreIDs(ctx, repository.ScoreIDsOptions{Vector: spec.Embedding, IDs: missing})
			if err != nil {
				return nil, fmt.Errorf("semantic scores: %w", err)
			}
			for _, h := range scored {
				semantic[h.ID] = h.Similarity
			}
		}
	}

	rows, err := uc.articleRepo.GetByIDs(ctx, repository.GetByIDsOptions{IDs: order, Terms: spec.LexicalTerms})
	if err != nil {
		return nil, fmt.Errorf("hydrate: %w", err)
	}
	byID := make(map[string]repository.ArticleRow, len(rows))
	for _, r := range rows {
		byID[r.Article.ID] = r
	}

	candidates := make([]model.Candidate, 0, len(order))
	for _, id := range order {
		row, ok := byID[id]
		if !ok {
			// indexed in Qdrant but gone from Postgres
			continue
		}
		sem := semantic[id]
		if !retrieval.Admit(row.LexicalRank, sem) {
			continue
		}
		candidates = append(candidates, fusion.Score(row.Article, row.LexicalRank, sem, queryTopics, now, len(candidates)))
	}
	return candidates, nil
}
