package model

// Candidate is a corpus article admitted into the ranked pool together with its retrieval signals.
type Candidate struct {
	Article Article

	// Raw signals from the corpus store
	LexicalRank        float64
	SemanticSimilarity float64

	// Fusion
	TopicConfidence float64
	RecencyBoost    float64
	CombinedScore   float64

	// Position is the 0-based order in which the candidate left fusion. Used as the last tie-breaker.
	Position int
}

// RankedResult is a candidate after the rerank stage.
// FinalScore equals Candidate.CombinedScore whenever AIRelevance is nil.
type RankedResult struct {
	Candidate
	AIRelevance     *float64
	RelevanceReason string
	FinalScore      float64
}

// PassThrough wraps candidates as ranked results without judge scores, preserving order.
func PassThrough(candidates []Candidate) []RankedResult {
	out := make([]RankedResult, len(candidates))
	for i, c := range candidates {
		out[i] = RankedResult{Candidate: c, FinalScore: c.CombinedScore}
	}
	return out
}
