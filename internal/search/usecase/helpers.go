package usecase

import (
	"crypto/sha256"
	"fmt"
	"strings"
	"time"

	"pharma-search-srv/internal/metrics"
	"pharma-search-srv/internal/model"
	"pharma-search-srv/internal/rerank"
	"pharma-search-srv/internal/search/repository"
)

// generateCacheKey - Hash of normalized query text, limit and answer flag
func generateCacheKey(text string, limit int, includeAnswer bool) string {
	normalized := strings.Join(strings.Fields(strings.ToLower(text)), " ")
	raw := fmt.Sprintf("%s|%d|%t", normalized, limit, includeAnswer)
	return fmt.Sprintf("%x", sha256.Sum256([]byte(raw)))
}

func getOptions(key string) repository.GetSearchResultsOptions {
	return repository.GetSearchResultsOptions{Key: key}
}

func saveOptions(key string, data []byte, ttl time.Duration) repository.SaveSearchResultsOptions {
	return repository.SaveSearchResultsOptions{Key: key, Data: data, TTL: ttl}
}

// degraded reports whether any stage fell back or was skipped because an upstream failed.
// A reranker that is switched off or had nothing to judge is not a degradation.
func degraded(stages []model.StageOutcome) bool {
	for _, s := range stages {
		switch s.Status {
		case model.StatusFallback:
			if s.Stage == model.StageRetrieve && s.Reason == model.ErrNoCandidates.Error() {
				continue
			}
			return true
		case model.StatusSkipped:
			if s.Reason == rerank.ErrDisabled.Error() || s.Reason == rerank.ErrNoCandidates.Error() ||
				s.Reason == model.ErrNoCandidates.Error() {
				continue
			}
			return true
		}
	}
	return false
}

func recordOutcomes(stages []model.StageOutcome) {
	for _, s := range stages {
		metrics.RecordOutcome(s.Stage, s.Status)
	}
}
