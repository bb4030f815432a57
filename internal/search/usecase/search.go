package usecase

import (
	"context"
	"encoding/json"
	"strings"
	"time"
	"unicode/utf8"

	"pharma-search-srv/internal/answer"
	"pharma-search-srv/internal/confidence"
	"pharma-search-srv/internal/metrics"
	"pharma-search-srv/internal/model"
	"pharma-search-srv/internal/query"
	"pharma-search-srv/internal/rerank"
	"pharma-search-srv/internal/search"
)

// Search - Main search method
// Flow: validate → check cache → interpret → retrieve (fusion inside) → rerank → confidence + answer → truncate → cache → publish
func (uc *implUseCase) Search(ctx context.Context, sc model.Scope, input search.SearchInput) (search.SearchOutput, error) {
	startTime := uc.now()

	// Step 0: Validate input before any external call
	text, err := validateQuery(input.Query)
	if err != nil {
		metrics.RecordSearch("invalid", 0)
		return search.SearchOutput{}, err
	}
	limit := uc.clampLimit(input.Limit)

	// Step 1: Search results cache
	cacheKey := generateCacheKey(text, limit, input.IncludeAnswer)
	if cached, ok := uc.loadCached(ctx, cacheKey); ok {
		cached.SearchID = uc.newID()
		cached.CacheHit = true
		cached.ProcessingTimeMs = uc.now().Sub(startTime).Milliseconds()
		uc.publish(ctx, sc, cached)
		metrics.RecordSearch("cached", cached.TotalFound)
		uc.l.Debugf(ctx, "search.usecase.Search: cache hit for key %s", cacheKey)
		return cached, nil
	}

	// Step 2: Interpret
	interpreted := uc.queryUC.Interpret(ctx, query.InterpretInput{
		Text:      text,
		UserID:    sc.UserID,
		SessionID: input.SessionID,
		IssuedAt:  startTime,
	})
	stages := append([]model.StageOutcome{}, interpreted.Outcomes...)

	// Step 3: Retrieve (admission + fusion happen inside)
	retrieved, err := uc.retrievalUC.Retrieve(ctx, interpreted.Query)
	if err != nil {
		uc.l.Errorf(ctx, "search.usecase.Search: Retrieve failed: %v", err)
		recordOutcomes(stages)
		metrics.RecordSearch("error", 0)
		return search.SearchOutput{}, err
	}
	stages = append(stages, retrieved.Outcome)
	totalFound := len(retrieved.Candidates)

	// Step 4: Rerank
	reranked := uc.rerankUC.Rerank(ctx, rerank.RerankInput{
		Query:      text,
		Candidates: retrieved.Candidates,
	})
	stages = append(stages, reranked.Outcome)
	results := reranked.Results

	// Step 5: Confidence over the full ranked list
	conf := confidence.Estimate(results, totalFound)

	// Step 6: Answer
	var ans *answer.Answer
	if input.IncludeAnswer {
		synthesized := uc.answerUC.Synthesize(ctx, answer.SynthesizeInput{
			Query:      text,
			Results:    results,
			Confidence: conf,
		})
		stages = append(stages, synthesized.Outcome)
		ans = &synthesized.Answer
	}

	// Step 7: Truncate
	if len(results) > limit {
		results = results[:limit]
	}

	output := search.SearchOutput{
		SearchID:         uc.newID(),
		Query:            text,
		Parsed:           interpreted.Query,
		Results:          results,
		Answer:           ans,
		TotalFound:       totalFound,
		Confidence:       conf,
		Stages:           stages,
		ProcessingTimeMs: uc.now().Sub(startTime).Milliseconds(),
	}

	// Step 8: Cache complete (non-degraded) results only
	if !degraded(stages) {
		uc.saveCached(ctx, cacheKey, output)
	}

	uc.publish(ctx, sc, output)
	recordOutcomes(stages)
	metrics.RecordSearch("ok", totalFound)

	uc.l.Infof(ctx, "search.usecase.Search: query=%q, intent=%s, total=%d, returned=%d, confidence=%.2f, duration=%dms",
		text, output.Parsed.Intent, totalFound, len(results), conf, output.ProcessingTimeMs)

	return output, nil
}

// validateQuery - Trim and bound the query text
func validateQuery(raw string) (string, error) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return "", search.ErrInvalidQuery
	}
	if utf8.RuneCountInString(text) > search.MaxQueryLength {
		return "", search.ErrQueryTooLong
	}
	return text, nil
}

func (uc *implUseCase) clampLimit(limit int) int {
	if limit <= 0 {
		return uc.cfg.DefaultLimit
	}
	if limit > search.MaxLimit {
		return search.MaxLimit
	}
	return limit
}

func (uc *implUseCase) loadCached(ctx context.Context, key string) (search.SearchOutput, bool) {
	if uc.cacheRepo == nil || uc.cfg.ResultCacheTTL < 0 {
		return search.SearchOutput{}, false
	}

	data, err := uc.cacheRepo.GetSearchResults(ctx, getOptions(key))
	if err != nil || data == nil {
		metrics.RecordCache(false)
		return search.SearchOutput{}, false
	}

	var cached search.SearchOutput
	if err := json.Unmarshal(data, &cached); err != nil {
		uc.l.Warnf(ctx, "search.usecase.loadCached: dropping unreadable cache entry: %v", err)
		metrics.RecordCache(false)
		return search.SearchOutput{}, false
	}
	metrics.RecordCache(true)
	return cached, true
}

func (uc *implUseCase) saveCached(ctx context.Context, key string, output search.SearchOutput) {
	if uc.cacheRepo == nil || uc.cfg.ResultCacheTTL < 0 {
		return
	}

	data, err := json.Marshal(output)
	if err != nil {
		uc.l.Warnf(ctx, "search.usecase.saveCached: marshal failed: %v", err)
		return
	}
	if err := uc.cacheRepo.SaveSearchResults(ctx, saveOptions(key, data, uc.cfg.ResultCacheTTL)); err != nil {
		uc.l.Warnf(ctx, "search.usecase.saveCached: Failed to save cache: %v", err)
	}
}

// publish - Best effort analytics event; failures are logged only
func (uc *implUseCase) publish(ctx context.Context, sc model.Scope, output search.SearchOutput) {
	if uc.producer == nil {
		return
	}

	event := search.SearchPerformed{
		SearchID:   output.SearchID,
		Query:      output.Query,
		UserID:     sc.UserID,
		Intent:     output.Parsed.Intent,
		TotalFound: output.TotalFound,
		Confidence: output.Confidence,
		CacheHit:   output.CacheHit,
		CreatedAt:  uc.now().UTC().Truncate(time.Millisecond),
	}
	if err := uc.producer.PublishSearchPerformed(ctx, event); err != nil {
		uc.l.Warnf(ctx, "search.usecase.publish: %v", err)
	}
}
