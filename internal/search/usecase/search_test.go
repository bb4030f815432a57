package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"pharma-search-srv/internal/answer"
	answerUsecase "pharma-search-srv/internal/answer/usecase"
	"pharma-search-srv/internal/model"
	"pharma-search-srv/internal/query"
	"pharma-search-srv/internal/rerank"
	rerankUsecase "pharma-search-srv/internal/rerank/usecase"
	"pharma-search-srv/internal/retrieval"
	"pharma-search-srv/internal/search"
	"pharma-search-srv/internal/search/repository"
	"pharma-search-srv/pkg/gemini"
	"pharma-search-srv/pkg/log"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockQuery struct{ mock.Mock }

func (m *mockQuery) Interpret(ctx context.Context, input query.InterpretInput) query.InterpretOutput {
	return m.Called(ctx, input).Get(0).(query.InterpretOutput)
}

type mockRetrieval struct{ mock.Mock }

func (m *mockRetrieval) Plan(q query.StructuredQuery) retrieval.FetchSpec {
	return m.Called(q).Get(0).(retrieval.FetchSpec)
}

func (m *mockRetrieval) Retrieve(ctx context.Context, q query.StructuredQuery) (retrieval.RetrieveOutput, error) {
	args := m.Called(ctx, q)
	return args.Get(0).(retrieval.RetrieveOutput), args.Error(1)
}

type mockRerank struct{ mock.Mock }

func (m *mockRerank) Rerank(ctx context.Context, input rerank.RerankInput) rerank.RerankOutput {
	return m.Called(ctx, input).Get(0).(rerank.RerankOutput)
}

type mockAnswer struct{ mock.Mock }

func (m *mockAnswer) Synthesize(ctx context.Context, input answer.SynthesizeInput) answer.SynthesizeOutput {
	return m.Called(ctx, input).Get(0).(answer.SynthesizeOutput)
}

type mockCache struct{ mock.Mock }

func (m *mockCache) GetSearchResults(ctx context.Context, opt repository.GetSearchResultsOptions) ([]byte, error) {
	args := m.Called(ctx, opt)
	data, _ := args.Get(0).([]byte)
	return data, args.Error(1)
}

func (m *mockCache) SaveSearchResults(ctx context.Context, opt repository.SaveSearchResultsOptions) error {
	return m.Called(ctx, opt).Error(0)
}

type mockProducer struct{ mock.Mock }

func (m *mockProducer) PublishSearchPerformed(ctx context.Context, event search.SearchPerformed) error {
	return m.Called(ctx, event).Error(0)
}

type mockGemini struct{ mock.Mock }

func (m *mockGemini) Generate(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

func (m *mockGemini) GenerateWithOptions(ctx context.Context, prompt string, opts gemini.GenerateOptions) (string, error) {
	args := m.Called(ctx, prompt, opts)
	return args.String(0), args.Error(1)
}

type fixture struct {
	query     *mockQuery
	retrieval *mockRetrieval
	rerank    *mockRerank
	answer    *mockAnswer
	cache     *mockCache
	producer  *mockProducer
	uc        *implUseCase
}

var fixedNow = time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)

func newFixture() *fixture {
	f := &fixture{
		query:     new(mockQuery),
		retrieval: new(mockRetrieval),
		rerank:    new(mockRerank),
		answer:    new(mockAnswer),
		cache:     new(mockCache),
		producer:  new(mockProducer),
	}
	f.uc = New(f.query, f.retrieval, f.rerank, f.answer, f.cache, f.producer, log.NewNop(), DefaultConfig()).(*implUseCase)
	f.uc.now = func() time.Time { return fixedNow }
	f.uc.newID = func() string { return "search-1" }
	return f
}

func candidates(n int) []model.Candidate {
	out := make([]model.Candidate, n)
	for i := range out {
		out[i] = model.Candidate{
			Article:       model.Article{ID: fmt.Sprintf("a%d", i), PublishedAt: fixedNow.AddDate(0, 0, -1)},
			CombinedScore: 0.9 - float64(i)*0.01,
			Position:      i,
		}
	}
	return out
}

func TestSearchValidation(t *testing.T) {
	tcs := map[string]struct {
		query string
		want  error
	}{
		"empty":       {query: "", want: search.ErrInvalidQuery},
		"whitespace":  {query: "  \t\n ", want: search.ErrInvalidQuery},
		"over length": {query: string(make([]rune, search.MaxQueryLength+1)), want: search.ErrQueryTooLong},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			f := newFixture()

			_, err := f.uc.Search(context.Background(), model.Scope{}, search.SearchInput{Query: tc.query})

			assert.ErrorIs(t, err, tc.want)
			f.cache.AssertNotCalled(t, "GetSearchResults", mock.Anything, mock.Anything)
			f.query.AssertNotCalled(t, "Interpret", mock.Anything, mock.Anything)
			f.retrieval.AssertNotCalled(t, "Retrieve", mock.Anything, mock.Anything)
		})
	}
}

func TestSearchFullPipeline(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	sq := query.StructuredQuery{Intent: query.IntentSearch, OriginalText: "pfizer oncology"}
	cs := candidates(30)
	ranked := model.PassThrough(cs)

	f.cache.On("GetSearchResults", ctx, mock.Anything).Return(nil, nil)
	f.query.On("Interpret", ctx, mock.MatchedBy(func(in query.InterpretInput) bool {
		return in.Text == "pfizer oncology" && in.UserID == "u1" && in.IssuedAt.Equal(fixedNow)
	})).Return(query.InterpretOutput{Query: sq, Outcomes: []model.StageOutcome{model.OK(model.StageInterpret), model.OK(model.StageEmbedding)}})
	f.retrieval.On("Retrieve", ctx, sq).Return(retrieval.RetrieveOutput{Candidates: cs, Outcome: model.OK(model.StageRetrieve)}, nil)
	f.rerank.On("Rerank", ctx, rerank.RerankInput{Query: "pfizer oncology", Candidates: cs}).
		Return(rerank.RerankOutput{Results: ranked, Outcome: model.OK(model.StageRerank)})
	f.answer.On("Synthesize", ctx, mock.MatchedBy(func(in answer.SynthesizeInput) bool {
		return len(in.Results) == 30 && in.Confidence > 0
	})).Return(answer.SynthesizeOutput{Answer: answer.Answer{Summary: "ok"}, Outcome: model.OK(model.StageAnswer)})
	f.cache.On("SaveSearchResults", ctx, mock.MatchedBy(func(o repository.SaveSearchResultsOptions) bool {
		return o.TTL == 5*time.Minute && len(o.Data) > 0
	})).Return(nil)
	f.producer.On("PublishSearchPerformed", ctx, mock.MatchedBy(func(e search.SearchPerformed) bool {
		return e.SearchID == "search-1" && e.UserID == "u1" && e.TotalFound == 30 && !e.CacheHit
	})).Return(nil)

	out, err := f.uc.Search(ctx, model.Scope{UserID: "u1"}, search.SearchInput{Query: "  pfizer oncology ", Limit: 10, IncludeAnswer: true})

	require.NoError(t, err)
	assert.Equal(t, "search-1", out.SearchID)
	assert.Equal(t, "pfizer oncology", out.Query)
	assert.Len(t, out.Results, 10)
	assert.Equal(t, 30, out.TotalFound)
	require.NotNil(t, out.Answer)
	assert.Equal(t, "ok", out.Answer.Summary)
	assert.Len(t, out.Stages, 5)
	assert.False(t, out.CacheHit)
	mock.AssertExpectationsForObjects(t, f.query, f.retrieval, f.rerank, f.answer, f.cache, f.producer)
}

func TestSearchLimitClamp(t *testing.T) {
	tcs := map[string]struct {
		limit int
		want  int
	}{
		"default":   {limit: 0, want: search.DefaultLimit},
		"negative":  {limit: -3, want: search.DefaultLimit},
		"in range":  {limit: 7, want: 7},
		"above max": {limit: 500, want: search.MaxLimit},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			f := newFixture()
			assert.Equal(t, tc.want, f.uc.clampLimit(tc.limit))
		})
	}
}

func TestSearchCorpusUnavailable(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.cache.On("GetSearchResults", ctx, mock.Anything).Return(nil, nil)
	f.query.On("Interpret", ctx, mock.Anything).Return(query.InterpretOutput{})
	f.retrieval.On("Retrieve", ctx, mock.Anything).
		Return(retrieval.RetrieveOutput{}, fmt.Errorf("%w: connection refused", retrieval.ErrCorpusUnavailable))

	_, err := f.uc.Search(ctx, model.Scope{}, search.SearchInput{Query: "keytruda"})

	assert.ErrorIs(t, err, retrieval.ErrCorpusUnavailable)
	f.rerank.AssertNotCalled(t, "Rerank", mock.Anything, mock.Anything)
	f.cache.AssertNotCalled(t, "SaveSearchResults", mock.Anything, mock.Anything)
	f.producer.AssertNotCalled(t, "PublishSearchPerformed", mock.Anything, mock.Anything)
}

func TestSearchCacheHit(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	cached := search.SearchOutput{SearchID: "old", Query: "keytruda", TotalFound: 3, Confidence: 0.61}
	data, err := json.Marshal(cached)
	require.NoError(t, err)

	f.cache.On("GetSearchResults", ctx, repository.GetSearchResultsOptions{Key: generateCacheKey("keytruda", search.DefaultLimit, false)}).
		Return(data, nil)
	f.producer.On("PublishSearchPerformed", ctx, mock.MatchedBy(func(e search.SearchPerformed) bool {
		return e.CacheHit && e.SearchID == "search-1"
	})).Return(errors.New("broker down"))

	out, err := f.uc.Search(ctx, model.Scope{}, search.SearchInput{Query: "keytruda"})

	require.NoError(t, err)
	assert.True(t, out.CacheHit)
	assert.Equal(t, "search-1", out.SearchID)
	assert.Equal(t, 0.61, out.Confidence)
	f.query.AssertNotCalled(t, "Interpret", mock.Anything, mock.Anything)
	f.retrieval.AssertNotCalled(t, "Retrieve", mock.Anything, mock.Anything)
}

func TestSearchDegradedNotCached(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	cs := candidates(3)

	f.cache.On("GetSearchResults", ctx, mock.Anything).Return(nil, nil)
	f.query.On("Interpret", ctx, mock.Anything).Return(query.InterpretOutput{
		Outcomes: []model.StageOutcome{model.Fallback(model.StageInterpret, model.ErrUpstreamUnavailable)},
	})
	f.retrieval.On("Retrieve", ctx, mock.Anything).Return(retrieval.RetrieveOutput{Candidates: cs, Outcome: model.OK(model.StageRetrieve)}, nil)
	f.rerank.On("Rerank", ctx, mock.Anything).Return(rerank.RerankOutput{Results: model.PassThrough(cs), Outcome: model.OK(model.StageRerank)})
	f.producer.On("PublishSearchPerformed", ctx, mock.Anything).Return(nil)

	_, err := f.uc.Search(ctx, model.Scope{}, search.SearchInput{Query: "keytruda"})

	require.NoError(t, err)
	f.cache.AssertNotCalled(t, "SaveSearchResults", mock.Anything, mock.Anything)
	f.answer.AssertNotCalled(t, "Synthesize", mock.Anything, mock.Anything)
}

func TestSearchEmptyCorpus(t *testing.T) {
	ctx := context.Background()
	gm := new(mockGemini)
	qm := new(mockQuery)
	rm := new(mockRetrieval)
	cache := new(mockCache)

	uc := New(
		qm,
		rm,
		rerankUsecase.New(gm, rerankUsecase.Config{Enabled: true, Timeout: time.Second}, log.NewNop()),
		answerUsecase.New(gm, time.Second, log.NewNop()),
		cache,
		nil,
		log.NewNop(),
		DefaultConfig(),
	)

	cache.On("GetSearchResults", ctx, mock.Anything).Return(nil, nil)
	cache.On("SaveSearchResults", ctx, mock.Anything).Return(nil)
	qm.On("Interpret", ctx, mock.Anything).Return(query.InterpretOutput{Query: query.StructuredQuery{Intent: query.IntentSearch}})
	rm.On("Retrieve", ctx, mock.Anything).Return(retrieval.RetrieveOutput{
		Outcome: model.Fallback(model.StageRetrieve, model.ErrNoCandidates),
	}, nil)

	out, err := uc.Search(ctx, model.Scope{}, search.SearchInput{Query: "anything", IncludeAnswer: true})

	require.NoError(t, err)
	assert.Equal(t, 0, out.TotalFound)
	assert.Empty(t, out.Results)
	assert.Equal(t, 0.0, out.Confidence)
	require.NotNil(t, out.Answer)
	assert.Equal(t, answer.NoResultsSummary, out.Answer.Summary)
	assert.Equal(t, 0.0, out.Answer.Confidence)
	gm.AssertNotCalled(t, "GenerateWithOptions", mock.Anything, mock.Anything, mock.Anything)
	cache.AssertCalled(t, "SaveSearchResults", ctx, mock.Anything)
}

func TestGenerateCacheKey(t *testing.T) {
	assert.Equal(t, generateCacheKey("Pfizer  Oncology", 20, true), generateCacheKey("pfizer oncology", 20, true))
	assert.NotEqual(t, generateCacheKey("pfizer", 20, true), generateCacheKey("pfizer", 10, true))
	assert.NotEqual(t, generateCacheKey("pfizer", 20, true), generateCacheKey("pfizer", 20, false))
}

func TestDegraded(t *testing.T) {
	tcs := map[string]struct {
		stages []model.StageOutcome
		want   bool
	}{
		"all ok":          {stages: []model.StageOutcome{model.OK(model.StageInterpret), model.OK(model.StageRerank)}, want: false},
		"rerank disabled": {stages: []model.StageOutcome{model.Skipped(model.StageRerank, rerank.ErrDisabled)}, want: false},
		"empty corpus": {stages: []model.StageOutcome{
			model.Fallback(model.StageRetrieve, model.ErrNoCandidates),
			model.Skipped(model.StageRerank, rerank.ErrNoCandidates),
			model.Skipped(model.StageAnswer, model.ErrNoCandidates),
		}, want: false},
		"rerank failed":    {stages: []model.StageOutcome{model.Skipped(model.StageRerank, model.ErrUpstreamUnavailable)}, want: true},
		"answer fallback":  {stages: []model.StageOutcome{model.Fallback(model.StageAnswer, model.ErrUpstreamUnavailable)}, want: true},
		"embedding failed": {stages: []model.StageOutcome{model.Fallback(model.StageEmbedding, model.ErrUpstreamUnavailable)}, want: true},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, degraded(tc.stages))
		})
	}
}
