package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"pharma-search-srv/internal/metrics"
	"pharma-search-srv/internal/model"
	"pharma-search-srv/internal/rerank"
	"pharma-search-srv/pkg/gemini"
)

func (uc *implUseCase) Rerank(ctx context.Context, input rerank.RerankInput) rerank.RerankOutput {
	results := model.PassThrough(input.Candidates)

	if !uc.enabled {
		return rerank.RerankOutput{Results: results, Outcome: model.Skipped(model.StageRerank, rerank.ErrDisabled)}
	}
	if len(input.Candidates) == 0 {
		return rerank.RerankOutput{Results: results, Outcome: model.Skipped(model.StageRerank, rerank.ErrNoCandidates)}
	}

	start := time.Now()
	defer metrics.ObserveStage(model.StageRerank, start)

	judged := input.Candidates
	if len(judged) > rerank.MaxJudged {
		judged = judged[:rerank.MaxJudged]
	}

	judgements, err := uc.judge(ctx, input.Query, judged)
	if err != nil {
		uc.l.Warnf(ctx, "rerank.usecase.Rerank: judge skipped: %v", err)
		return rerank.RerankOutput{Results: results, Outcome: model.Skipped(model.StageRerank, err)}
	}

	results = apply(results, judgements)
	uc.l.Debugf(ctx, "rerank.usecase.Rerank: judged=%d, scored=%d", len(judged), len(judgements))
	return rerank.RerankOutput{Results: results, Outcome: model.OK(model.StageRerank)}
}

func (uc *implUseCase) judge(ctx context.Context, queryText string, judged []model.Candidate) ([]rerank.Judgement, error) {
	callCtx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	temp := judgeTemperature
	resp, err := uc.gemini.GenerateWithOptions(callCtx, buildJudgePrompt(queryText, judged), gemini.GenerateOptions{
		SystemInstruction: judgeInstruction,
		Temperature:       &temp,
		JSON:              true,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrUpstreamUnavailable, err)
	}
	return parseJudgements([]byte(resp), len(judged))
}

// apply blends judgements into results and sorts by final score, then combined score, then retrieval position.
// Unscored results keep final == combined.
func apply(results []model.RankedResult, judgements []rerank.Judgement) []model.RankedResult {
	out := make([]model.RankedResult, len(results))
	copy(out, results)

	for _, j := range judgements {
		score := j.Score
		r := &out[j.Index]
		r.AIRelevance = &score
		r.RelevanceReason = j.Reason
		r.FinalScore = rerank.FinalScore(r.CombinedScore, score)
	}

	sort.SliceStable(out, func(a, b int) bool {
		if out[a].FinalScore != out[b].FinalScore {
			return out[a].FinalScore > out[b].FinalScore
		}
		if out[a].CombinedScore != out[b].CombinedScore {
			return out[a].CombinedScore > out[b].CombinedScore
		}
		return out[a].Position < out[b].Position
	})
	return out
}
