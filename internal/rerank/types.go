package rerank

import "pharma-search-srv/internal/model"

const (
	// MaxJudged is how many of the top candidates are sent to the judge.
	MaxJudged = 20
	// SummaryLimit truncates summaries in the judge prompt (characters).
	SummaryLimit = 200

	WeightCombined = 0.6
	WeightJudge    = 0.4

	MinJudgeScore = 1.0
	MaxJudgeScore = 10.0
)

type RerankInput struct {
	Query string
	// Candidates must already be ordered by combined score.
	Candidates []model.Candidate
}

type RerankOutput struct {
	Results []model.RankedResult
	Outcome model.StageOutcome
}

// Judgement is one validated judge entry. Index is 0-based into the judged slice.
type Judgement struct {
	Index  int
	Score  float64
	Reason string
}

// FinalScore blends a combined score with a 1-10 judge score normalized to [0,1].
func FinalScore(combined, judgeScore float64) float64 {
	return combined*WeightCombined + (judgeScore/MaxJudgeScore)*WeightJudge
}
