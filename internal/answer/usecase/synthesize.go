package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"pharma-search-srv/internal/answer"
	"pharma-search-srv/internal/metrics"
	"pharma-search-srv/internal/model"
	"pharma-search-srv/pkg/gemini"
)

func (uc *implUseCase) Synthesize(ctx context.Context, input answer.SynthesizeInput) answer.SynthesizeOutput {
	if len(input.Results) == 0 {
		return answer.SynthesizeOutput{
			Answer: answer.Answer{
				Summary: answer.NoResultsSummary,
				Sources: []answer.Citation{},
			},
			Outcome: model.Skipped(model.StageAnswer, model.ErrNoCandidates),
		}
	}

	start := time.Now()
	defer metrics.ObserveStage(model.StageAnswer, start)

	top := input.Results
	if len(top) > answer.MaxContextArticles {
		top = top[:answer.MaxContextArticles]
	}

	ans := answer.Answer{
		Confidence:       input.Confidence,
		Sources:          citations(top),
		ArticlesAnalyzed: len(top),
	}

	summary, err := uc.generate(ctx, input.Query, top)
	if err != nil {
		uc.l.Warnf(ctx, "answer.usecase.Synthesize: using placeholder: %v", err)
		ans.Summary = answer.PlaceholderSummary
		ans.Fallback = true
		return answer.SynthesizeOutput{Answer: ans, Outcome: model.Fallback(model.StageAnswer, err)}
	}

	ans.Summary = summary
	return answer.SynthesizeOutput{Answer: ans, Outcome: model.OK(model.StageAnswer)}
}

func (uc *implUseCase) generate(ctx context.Context, queryText string, top []model.RankedResult) (string, error) {
	callCtx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	temp := answerTemperature
	resp, err := uc.gemini.GenerateWithOptions(callCtx, buildAnswerPrompt(queryText, top), gemini.GenerateOptions{
		SystemInstruction: answerInstruction,
		Temperature:       &temp,
		MaxOutputTokens:   answerMaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", model.ErrUpstreamUnavailable, err)
	}

	resp = strings.TrimSpace(resp)
	if resp == "" {
		return "", fmt.Errorf("%w: %v", model.ErrMalformedUpstreamResponse, answer.ErrEmptyGeneration)
	}
	return resp, nil
}

func citations(top []model.RankedResult) []answer.Citation {
	out := make([]answer.Citation, 0, len(top))
	for _, r := range top {
		out = append(out, answer.Citation{
			Title: r.Article.Title,
			Link:  r.Article.Link,
			Date:  r.Article.PublishedAt,
		})
	}
	return out
}
