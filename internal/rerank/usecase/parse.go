package usecase

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"pharma-search-srv/internal/model"
	"pharma-search-srv/internal/rerank"
)

var (
	trailingComma = regexp.MustCompile(`,\s*([}\]])`)
	errNoRankings = errors.New("no rankings array in judge response")
)

// rawJudgement is one judge entry; fields are validated one by one so a bad field drops only its entry or itself.
type rawJudgement map[string]any

// parseJudgements validates an untrusted judge payload against n judged items. Entries with an
// out-of-range index or a score outside [1,10] are dropped; duplicate indices keep the first entry.
func parseJudgements(data []byte, n int) ([]rerank.Judgement, error) {
	entries, err := decodeJudgements(data)
	if err != nil {
		entries, err = decodeJudgements(repairJSON(data))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", model.ErrMalformedUpstreamResponse, err)
		}
	}

	out := make([]rerank.Judgement, 0, len(entries))
	seen := make(map[int]bool, len(entries))
	for _, e := range entries {
		number, ok := asNumber(e["id"])
		if !ok {
			number, ok = asNumber(e["index"])
		}
		if !ok || number != math.Trunc(number) {
			continue
		}
		idx := int(number) - 1
		if idx < 0 || idx >= n || seen[idx] {
			continue
		}

		score, ok := asNumber(e["relevance_score"])
		if !ok {
			score, ok = asNumber(e["score"])
		}
		if !ok || score < rerank.MinJudgeScore || score > rerank.MaxJudgeScore {
			continue
		}

		seen[idx] = true
		out = append(out, rerank.Judgement{Index: idx, Score: score, Reason: strings.TrimSpace(asString(e["reason"]))})
	}

	if len(out) == 0 {
		return nil, fmt.Errorf("%w: %v", model.ErrMalformedUpstreamResponse, rerank.ErrNoValidScores)
	}
	return out, nil
}

// decodeJudgements accepts a bare array or an object wrapping one under a common key.
// Array items that are not objects are skipped.
func decodeJudgements(data []byte) ([]rawJudgement, error) {
	data = bytes.TrimSpace(data)

	var items []any
	if err := json.Unmarshal(data, &items); err == nil {
		return judgementObjects(items), nil
	}

	var wrapped map[string]any
	if err := json.Unmarshal(data, &wrapped); err != nil {
		return nil, err
	}
	for _, key := range []string{"rankings", "results", "items", "articles"} {
		if list, ok := wrapped[key].([]any); ok {
			return judgementObjects(list), nil
		}
	}
	return nil, errNoRankings
}

func judgementObjects(items []any) []rawJudgement {
	out := make([]rawJudgement, 0, len(items))
	for _, item := range items {
		if m, ok := item.(map[string]any); ok {
			out = append(out, m)
		}
	}
	return out
}

func repairJSON(data []byte) []byte {
	s := strings.TrimSpace(string(data))
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")

	start := strings.IndexAny(s, "[{")
	end := strings.LastIndexAny(s, "]}")
	if start >= 0 && end > start {
		s = s[start : end+1]
	}
	return []byte(trailingComma.ReplaceAllString(s, "$1"))
}

// asNumber accepts JSON numbers and numeric strings such as "9" or " 7.5 ".
func asNumber(v any) (float64, bool) {
	var f float64
	switch t := v.(type) {
	case float64:
		f = t
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}
