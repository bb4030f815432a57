package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"pharma-search-srv/internal/answer"
	"pharma-search-srv/internal/model"
	"pharma-search-srv/pkg/gemini"
	"pharma-search-srv/pkg/log"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockGemini struct {
	mock.Mock
}

func (m *mockGemini) Generate(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

func (m *mockGemini) GenerateWithOptions(ctx context.Context, prompt string, opts gemini.GenerateOptions) (string, error) {
	args := m.Called(ctx, prompt, opts)
	return args.String(0), args.Error(1)
}

func results(n int) []model.RankedResult {
	published := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	out := make([]model.RankedResult, n)
	for i := range out {
		out[i] = model.RankedResult{Candidate: model.Candidate{Article: model.Article{
			ID:          fmt.Sprintf("a%d", i),
			Title:       fmt.Sprintf("Title %d", i),
			Summary:     "summary",
			Link:        fmt.Sprintf("https://news.example/%d", i),
			Topics:      []string{"oncology"},
			PublishedAt: published,
		}}}
	}
	return out
}

func TestSynthesizeEmpty(t *testing.T) {
	gm := new(mockGemini)

	out := New(gm, time.Second, log.NewNop()).Synthesize(context.Background(), answer.SynthesizeInput{Query: "q"})

	assert.Equal(t, answer.NoResultsSummary, out.Answer.Summary)
	assert.Equal(t, 0.0, out.Answer.Confidence)
	assert.Empty(t, out.Answer.Sources)
	assert.Equal(t, model.StatusSkipped, out.Outcome.Status)
	gm.AssertNotCalled(t, "GenerateWithOptions", mock.Anything, mock.Anything, mock.Anything)
}

func TestSynthesizeUsesTopFive(t *testing.T) {
	gm := new(mockGemini)
	gm.On("GenerateWithOptions", mock.Anything, mock.MatchedBy(func(p string) bool {
		return strings.Contains(p, "Article 5: Title 4") && !strings.Contains(p, "Title 5")
	}), mock.MatchedBy(func(o gemini.GenerateOptions) bool {
		return o.MaxOutputTokens == answerMaxTokens && !o.JSON
	})).Return("  Pfizer leads oncology approvals.  ", nil)

	out := New(gm, time.Second, log.NewNop()).Synthesize(context.Background(), answer.SynthesizeInput{
		Query:      "oncology approvals",
		Results:    results(8),
		Confidence: 0.72,
	})

	assert.Equal(t, "Pfizer leads oncology approvals.", out.Answer.Summary)
	assert.False(t, out.Answer.Fallback)
	assert.Equal(t, 0.72, out.Answer.Confidence)
	assert.Equal(t, 5, out.Answer.ArticlesAnalyzed)
	require.Len(t, out.Answer.Sources, 5)
	assert.Equal(t, "https://news.example/0", out.Answer.Sources[0].Link)
	assert.Equal(t, model.StatusOK, out.Outcome.Status)
	gm.AssertExpectations(t)
}

func TestSynthesizeFallback(t *testing.T) {
	tcs := map[string]struct {
		resp string
		err  error
		want error
	}{
		"upstream error": {err: errors.New("503"), want: model.ErrUpstreamUnavailable},
		"blank text":     {resp: "   ", want: model.ErrMalformedUpstreamResponse},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			gm := new(mockGemini)
			gm.On("GenerateWithOptions", mock.Anything, mock.Anything, mock.Anything).Return(tc.resp, tc.err)

			out := New(gm, time.Second, log.NewNop()).Synthesize(context.Background(), answer.SynthesizeInput{
				Query:   "q",
				Results: results(3),
			})

			assert.True(t, out.Answer.Fallback)
			assert.Equal(t, answer.PlaceholderSummary, out.Answer.Summary)
			assert.Len(t, out.Answer.Sources, 3)
			assert.Equal(t, model.StatusFallback, out.Outcome.Status)
			assert.Contains(t, out.Outcome.Reason, tc.want.Error())
		})
	}
}
