// Package fusion combines the lexical, semantic, topic and recency signals into one ranking key.
// Everything here is pure and deterministic.
package fusion

import (
	"math"
	"sort"
	"time"

	"pharma-search-srv/internal/model"
)

// Signal weights. They sum to 1.
const (
	WeightLexical  = 0.3
	WeightSemantic = 0.5
	WeightTopic    = 0.2
)

// Combined computes (lex*0.3 + sem*0.5 + topic*0.2) * recency with each raw signal clamped to [0,1].
func Combined(lexical, semantic, topic, recency float64) float64 {
	return (clamp(lexical)*WeightLexical + clamp(semantic)*WeightSemantic + clamp(topic)*WeightTopic) * recency
}

// Score builds a fused candidate for an article. position is the retrieval order.
func Score(a model.Article, lexical, semantic float64, queryTopics []string, now time.Time, position int) model.Candidate {
	topic := TopicConfidence(a, queryTopics)
	recency := RecencyBoost(a.Age(now))
	return model.Candidate{
		Article:            a,
		LexicalRank:        lexical,
		SemanticSimilarity: semantic,
		TopicConfidence:    topic,
		RecencyBoost:       recency,
		CombinedScore:      Combined(lexical, semantic, topic, recency),
		Position:           position,
	}
}

// Rank orders candidates by combined score descending, then by retrieval position. The input is not modified.
func Rank(candidates []model.Candidate) []model.Candidate {
	out := make([]model.Candidate, len(candidates))
	copy(out, candidates)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].CombinedScore != out[j].CombinedScore {
			return out[i].CombinedScore > out[j].CombinedScore
		}
		return out[i].Position < out[j].Position
	})
	return out
}

func clamp(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
