package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"pharma-search-srv/internal/embedding"
	"pharma-search-srv/internal/metrics"
	"pharma-search-srv/internal/model"
	"pharma-search-srv/internal/query"
	"pharma-search-srv/pkg/gemini"
)

func (uc *implUseCase) Interpret(ctx context.Context, input query.InterpretInput) query.InterpretOutput {
	issuedAt := input.IssuedAt
	if issuedAt.IsZero() {
		issuedAt = uc.now()
	}
	text := strings.TrimSpace(input.Text)

	// 1. Understanding service (cached)
	u, outcome := uc.understand(ctx, text)
	outcomes := []model.StageOutcome{outcome}

	// 2. Local extraction, merged by union
	local := extract(text, uc.lexicon)
	sq := uc.merge(u, local)
	sq.OriginalText = text
	sq.IssuedAt = issuedAt
	sq.Timeframe = resolveTimeframe(sq.Timeframe.Keyword, issuedAt)

	// 3. Query embedding
	embStart := time.Now()
	out, err := uc.embedding.Generate(ctx, embedding.GenerateInput{Text: text})
	metrics.ObserveStage(model.StageEmbedding, embStart)
	if err != nil {
		uc.l.Warnf(ctx, "query.usecase.Interpret: embedding unavailable, semantic signal disabled: %v", err)
		outcomes = append(outcomes, model.Fallback(model.StageEmbedding, err))
	} else {
		sq.Embedding = out.Vector
		outcomes = append(outcomes, model.OK(model.StageEmbedding))
	}

	return query.InterpretOutput{Query: sq, Outcomes: outcomes}
}

// understand calls the understanding service and validates its answer. It always returns usable values.
func (uc *implUseCase) understand(ctx context.Context, text string) (understanding, model.StageOutcome) {
	key := strings.ToLower(strings.Join(strings.Fields(text), " "))
	if u, ok := uc.cache.Get(key); ok {
		uc.l.Debugf(ctx, "query.usecase.understand: cache hit")
		return u, model.OK(model.StageInterpret)
	}

	start := time.Now()
	defer metrics.ObserveStage(model.StageInterpret, start)

	callCtx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	temp := understandingTemperature
	resp, err := uc.gemini.GenerateWithOptions(callCtx, text, gemini.GenerateOptions{
		SystemInstruction: understandingInstruction,
		Temperature:       &temp,
		JSON:              true,
	})
	if err != nil {
		uc.l.Warnf(ctx, "query.usecase.understand: understanding service failed, using defaults: %v", err)
		return defaultUnderstanding(), model.Fallback(model.StageInterpret, fmt.Errorf("%w: %v", model.ErrUpstreamUnavailable, err))
	}

	u, err := parseUnderstanding([]byte(resp))
	if err != nil {
		uc.l.Warnf(ctx, "query.usecase.understand: %v", err)
		return u, model.Fallback(model.StageInterpret, err)
	}

	uc.cache.Add(key, u)
	return u, model.OK(model.StageInterpret)
}

// merge unions service and local entities after normalization. Local timeframe hints only
// apply when the service produced none.
func (uc *implUseCase) merge(u understanding, local extraction) query.StructuredQuery {
	keyword := u.Timeframe
	if canonicalTimeframe(keyword) == query.TimeframeAllTime && local.Timeframe != "" {
		keyword = local.Timeframe
	}

	return query.StructuredQuery{
		Intent: u.Intent,
		Entities: query.Entities{
			Companies:   uc.lexicon.NormalizeCompanies(concat(u.Companies, local.Companies)),
			Drugs:       query.NormalizeTerms(concat(u.Drugs, local.Drugs)),
			Indications: query.NormalizeTerms(concat(u.Indications, local.Indications)),
			Topics:      query.NormalizeTerms(concat(u.Topics, local.Topics)),
		},
		Timeframe: query.Timeframe{Keyword: keyword},
		Filters: query.Filters{
			Phases:           query.NormalizePhases(concat(u.Phases, local.Phases)),
			ApprovalStatuses: query.NormalizeTerms(u.ApprovalStatuses),
			Geographies:      query.NormalizeTerms(u.Geographies),
		},
		Sentiment:     u.Sentiment,
		Relationships: query.NormalizeTerms(u.Relationships),
	}
}

func concat(a, b []string) []string {
	out := make([]string, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}
