package usecase

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"pharma-search-srv/internal/model"
	"pharma-search-srv/internal/query"
)

var (
	validIntents = map[string]bool{
		query.IntentSearch: true, query.IntentCompare: true, query.IntentTrack: true,
		query.IntentAnalyze: true, query.IntentPredict: true,
	}
	validSentiments = map[string]bool{
		query.SentimentPositive: true, query.SentimentNegative: true,
		query.SentimentNeutral: true, query.SentimentAny: true,
	}
	trailingComma = regexp.MustCompile(`,\s*([}\]])`)
)

// understanding is the validated output of the understanding service. Every field holds a usable value.
type understanding struct {
	Intent           string
	Companies        []string
	Drugs            []string
	Indications      []string
	Topics           []string
	Timeframe        string
	Phases           []string
	ApprovalStatuses []string
	Geographies      []string
	Sentiment        string
	Relationships    []string
}

// rawUnderstanding is the payload decoded one level deep so a wrong-typed field only loses itself.
type rawUnderstanding map[string]any

func defaultUnderstanding() understanding {
	return understanding{
		Intent:    query.IntentSearch,
		Timeframe: query.TimeframeAllTime,
		Sentiment: query.SentimentAny,
	}
}

// parseUnderstanding validates an untrusted understanding payload. Invalid JSON is repaired once
// before giving up; on error the defaults are returned alongside it.
func parseUnderstanding(data []byte) (understanding, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return defaultUnderstanding(), fmt.Errorf("%w: %v", model.ErrMalformedUpstreamResponse, query.ErrEmptyUnderstanding)
	}

	var raw rawUnderstanding
	if err := json.Unmarshal(data, &raw); err != nil {
		raw = nil
		if err2 := json.Unmarshal(repairJSON(data), &raw); err2 != nil {
			return defaultUnderstanding(), fmt.Errorf("%w: %v", model.ErrMalformedUpstreamResponse, err)
		}
	}
	if raw == nil {
		return defaultUnderstanding(), fmt.Errorf("%w: %v", model.ErrMalformedUpstreamResponse, query.ErrEmptyUnderstanding)
	}
	return raw.validate(), nil
}

func (r rawUnderstanding) validate() understanding {
	u := defaultUnderstanding()

	if intent := strings.ToLower(strings.TrimSpace(asString(r["intent"]))); validIntents[intent] {
		u.Intent = intent
	}
	if tf := strings.TrimSpace(asString(r["timeframe"])); tf != "" {
		u.Timeframe = tf
	}
	if s := strings.ToLower(strings.TrimSpace(asString(r["sentiment"]))); validSentiments[s] {
		u.Sentiment = s
	}

	entities := asMap(r["entities"])
	u.Companies = asStrings(lookup(entities, "companies", "company"))
	u.Drugs = asStrings(lookup(entities, "drugs", "drug"))
	u.Indications = asStrings(lookup(entities, "indications", "indication"))
	u.Topics = asStrings(lookup(entities, "topics", "topic"))

	filters := asMap(r["filters"])
	u.Phases = asStrings(lookup(filters, "phase", "phases"))
	u.ApprovalStatuses = asStrings(lookup(filters, "approval_status", "approval_statuses"))
	u.Geographies = asStrings(lookup(filters, "geography", "geographies"))

	u.Relationships = asStrings(r["relationships"])
	return u
}

// repairJSON strips code fences, cuts to the outermost braces and drops trailing commas.
func repairJSON(data []byte) []byte {
	s := strings.TrimSpace(string(data))
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")

	start, end := strings.Index(s, "{"), strings.LastIndex(s, "}")
	if start >= 0 && end > start {
		s = s[start : end+1]
	}
	return []byte(trailingComma.ReplaceAllString(s, "$1"))
}

func lookup(m map[string]any, keys ...string) any {
	for _, k := range keys {
		if v, ok := m[k]; ok && v != nil {
			return v
		}
	}
	return nil
}

// asMap yields nil for anything but a JSON object; lookups on a nil map find nothing.
func asMap(v any) map[string]any {
	m, _ := v.(map[string]any)
	return m
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

// asStrings accepts a list of strings or a single string; anything else yields nil.
func asStrings(v any) []string {
	switch t := v.(type) {
	case string:
		if strings.TrimSpace(t) == "" {
			return nil
		}
		return []string{t}
	case []any:
		out := make([]string, 0, len(t))
		for _, item := range t {
			if s, ok := item.(string); ok && strings.TrimSpace(s) != "" {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}
