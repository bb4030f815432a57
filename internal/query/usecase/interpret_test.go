package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"pharma-search-srv/internal/embedding"
	"pharma-search-srv/internal/model"
	"pharma-search-srv/internal/query"
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

type mockEmbedding struct {
	mock.Mock
}

func (m *mockEmbedding) Generate(ctx context.Context, input embedding.GenerateInput) (embedding.GenerateOutput, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(embedding.GenerateOutput), args.Error(1)
}

var issued = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func newTestUseCase(gm *mockGemini, emb *mockEmbedding) query.UseCase {
	lex := query.NewLexicon(query.LexiconOptions{
		CompanyAliases: map[string]string{"BMS": "Bristol-Myers Squibb"},
		Companies:      []string{"Pfizer"},
		Drugs:          []string{"Opdivo"},
	})
	return New(gm, emb, lex, Config{}, log.NewNop())
}

func outcomeFor(outcomes []model.StageOutcome, stage string) model.StageOutcome {
	for _, o := range outcomes {
		if o.Stage == stage {
			return o
		}
	}
	return model.StageOutcome{}
}

func TestInterpret(t *testing.T) {
	ctx := context.Background()

	t.Run("service and local entities are merged", func(t *testing.T) {
		gm, emb := new(mockGemini), new(mockEmbedding)
		gm.On("GenerateWithOptions", mock.Anything, mock.Anything, mock.Anything).
			Return(`{"intent":"compare","entities":{"companies":["Pfizer Inc.","Bristol Myers"]},"timeframe":"month","filters":{"phase":["phase iii"]}}`, nil)
		emb.On("Generate", mock.Anything, mock.Anything).Return(embedding.GenerateOutput{Vector: []float32{0.1}}, nil)

		out := newTestUseCase(gm, emb).Interpret(ctx, query.InterpretInput{Text: "Pfizer vs BMS Opdivo phase 3 data", IssuedAt: issued})
		q := out.Query

		assert.Equal(t, query.IntentCompare, q.Intent)
		assert.Equal(t, []string{"pfizer", "bristol myers", "bristol-myers squibb"}, q.Entities.Companies)
		assert.Equal(t, []string{"opdivo"}, q.Entities.Drugs)
		assert.Equal(t, []string{"phase 3"}, q.Filters.Phases)
		require.NotNil(t, q.Timeframe.From)
		assert.Equal(t, issued.AddDate(0, 0, -30), *q.Timeframe.From)
		assert.Equal(t, []float32{0.1}, q.Embedding)
		assert.Equal(t, model.StatusOK, outcomeFor(out.Outcomes, model.StageInterpret).Status)
		assert.Equal(t, model.StatusOK, outcomeFor(out.Outcomes, model.StageEmbedding).Status)
	})

	t.Run("service down falls back to defaults plus local extraction", func(t *testing.T) {
		gm, emb := new(mockGemini), new(mockEmbedding)
		gm.On("GenerateWithOptions", mock.Anything, mock.Anything, mock.Anything).Return("", errors.New("timeout"))
		emb.On("Generate", mock.Anything, mock.Anything).Return(embedding.GenerateOutput{}, model.ErrUpstreamUnavailable)

		out := newTestUseCase(gm, emb).Interpret(ctx, query.InterpretInput{Text: "Pfizer news this week", IssuedAt: issued})
		q := out.Query

		assert.Equal(t, query.IntentSearch, q.Intent)
		assert.Equal(t, query.SentimentAny, q.Sentiment)
		assert.Equal(t, []string{"pfizer"}, q.Entities.Companies)
		assert.Equal(t, "week", q.Timeframe.Keyword)
		assert.False(t, q.HasEmbedding())

		interp := outcomeFor(out.Outcomes, model.StageInterpret)
		assert.Equal(t, model.StatusFallback, interp.Status)
		assert.Equal(t, model.StatusFallback, outcomeFor(out.Outcomes, model.StageEmbedding).Status)
	})

	t.Run("malformed response uses all time", func(t *testing.T) {
		gm, emb := new(mockGemini), new(mockEmbedding)
		gm.On("GenerateWithOptions", mock.Anything, mock.Anything, mock.Anything).Return("not json", nil)
		emb.On("Generate", mock.Anything, mock.Anything).Return(embedding.GenerateOutput{Vector: []float32{1}}, nil)

		out := newTestUseCase(gm, emb).Interpret(ctx, query.InterpretInput{Text: "gene therapy", IssuedAt: issued})

		assert.Nil(t, out.Query.Timeframe.From)
		assert.Equal(t, model.StatusFallback, outcomeFor(out.Outcomes, model.StageInterpret).Status)
	})

	t.Run("successful interpretation is cached", func(t *testing.T) {
		gm, emb := new(mockGemini), new(mockEmbedding)
		gm.On("GenerateWithOptions", mock.Anything, mock.Anything, mock.Anything).Return(`{"intent":"track"}`, nil).Once()
		emb.On("Generate", mock.Anything, mock.Anything).Return(embedding.GenerateOutput{Vector: []float32{1}}, nil)

		uc := newTestUseCase(gm, emb)
		uc.Interpret(ctx, query.InterpretInput{Text: "Moderna  RSV", IssuedAt: issued})
		out := uc.Interpret(ctx, query.InterpretInput{Text: "moderna rsv", IssuedAt: issued})

		assert.Equal(t, query.IntentTrack, out.Query.Intent)
		gm.AssertNumberOfCalls(t, "GenerateWithOptions", 1)
	})
}
