package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"pharma-search-srv/internal/answer"
	"pharma-search-srv/internal/middleware"
	"pharma-search-srv/internal/model"
	"pharma-search-srv/internal/query"
	"pharma-search-srv/internal/retrieval"
	"pharma-search-srv/internal/search"
	"pharma-search-srv/pkg/log"
	"pharma-search-srv/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Search(ctx context.Context, sc model.Scope, input search.SearchInput) (search.SearchOutput, error) {
	args := m.Called(ctx, sc, input)
	return args.Get(0).(search.SearchOutput), args.Error(1)
}

func serve(t *testing.T, uc search.UseCase, body string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	New(log.NewNop(), uc, nil, true).RegisterRoutes(r.Group(""), middleware.New(log.NewNop(), nil))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/search", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSearchHandler(t *testing.T) {
	uc := new(mockUseCase)
	published := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	score := 8.0
	uc.On("Search", mock.Anything, model.Scope{}, search.SearchInput{Query: "keytruda approvals", Limit: 5, IncludeAnswer: true}).
		Return(search.SearchOutput{
			SearchID: "s1",
			Query:    "keytruda approvals",
			Parsed:   query.StructuredQuery{Intent: query.IntentTrack},
			Results: []model.RankedResult{{
				Candidate:   model.Candidate{Article: model.Article{ID: "a1", Title: "Keytruda approved", PublishedAt: published}, CombinedScore: 0.6},
				AIRelevance: &score,
				FinalScore:  0.68,
			}},
			Answer: &answer.Answer{
				Summary: "Approved in the EU.",
				Sources: []answer.Citation{{Title: "Keytruda approved", Link: "https://x", Date: published}},
			},
			TotalFound: 12,
			Confidence: 0.71,
		}, nil)

	w := serve(t, uc, `{"query":"keytruda approvals","limit":5}`)

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Data struct {
			SearchID     string  `json:"search_id"`
			TotalFound   int     `json:"total_found"`
			TotalResults int     `json:"total_results"`
			Parsed       struct {
				Intent string `json:"intent"`
			} `json:"parsed"`
			Interpretation struct {
				Intent string `json:"intent"`
			} `json:"interpretation"`
			Confidence   float64 `json:"confidence"`
			Results      []struct {
				ID          string   `json:"id"`
				AIRelevance *float64 `json:"ai_relevance"`
			} `json:"results"`
			Answer struct {
				Sources []struct {
					Date string `json:"date"`
				} `json:"sources"`
			} `json:"answer"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "s1", body.Data.SearchID)
	assert.Equal(t, 12, body.Data.TotalFound)
	assert.Equal(t, 12, body.Data.TotalResults)
	assert.Equal(t, query.IntentTrack, body.Data.Parsed.Intent)
	assert.Equal(t, query.IntentTrack, body.Data.Interpretation.Intent)
	assert.Equal(t, 0.71, body.Data.Confidence)
	require.Len(t, body.Data.Results, 1)
	assert.Equal(t, 8.0, *body.Data.Results[0].AIRelevance)
	assert.Equal(t, "2026-10-01", body.Data.Answer.Sources[0].Date)
}

func TestSearchHandlerIncludeAnswerOverride(t *testing.T) {
	uc := new(mockUseCase)
	uc.On("Search", mock.Anything, mock.Anything, search.SearchInput{Query: "q", IncludeAnswer: false}).
		Return(search.SearchOutput{}, nil)

	w := serve(t, uc, `{"query":"q","include_answer":false}`)

	assert.Equal(t, http.StatusOK, w.Code)
	uc.AssertExpectations(t)
}

func TestSearchHandlerErrors(t *testing.T) {
	tcs := map[string]struct {
		body     string
		ucErr    error
		wantCode int
	}{
		"missing query":      {body: `{}`, wantCode: http.StatusBadRequest},
		"malformed body":     {body: `{"query":`, wantCode: http.StatusBadRequest},
		"limit out of range": {body: `{"query":"q","limit":500}`, wantCode: http.StatusBadRequest},
		"blank query":        {body: `{"query":"   "}`, ucErr: search.ErrInvalidQuery, wantCode: http.StatusBadRequest},
		"corpus down": {
			body:     `{"query":"q"}`,
			ucErr:    fmt.Errorf("%w: dial tcp", retrieval.ErrCorpusUnavailable),
			wantCode: http.StatusServiceUnavailable,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			uc := new(mockUseCase)
			if tc.ucErr != nil {
				uc.On("Search", mock.Anything, mock.Anything, mock.Anything).Return(search.SearchOutput{}, tc.ucErr)
			}

			w := serve(t, uc, tc.body)

			assert.Equal(t, tc.wantCode, w.Code)
			var resp response.Resp
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tc.wantCode, resp.ErrorCode)
			if tc.ucErr == nil {
				uc.AssertNotCalled(t, "Search", mock.Anything, mock.Anything, mock.Anything)
			}
		})
	}
}

func TestSearchByQueryHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tcs := map[string]struct {
		url      string
		want     *search.SearchInput
		wantCode int
	}{
		"query string": {
			url:      "/api/v1/search?q=biosimilar+launches&limit=3",
			want:     &search.SearchInput{Query: "biosimilar launches", Limit: 3, IncludeAnswer: true},
			wantCode: http.StatusOK,
		},
		"answer disabled": {
			url:      "/api/v1/search?q=q&include_answer=false",
			want:     &search.SearchInput{Query: "q", IncludeAnswer: false},
			wantCode: http.StatusOK,
		},
		"missing q":     {url: "/api/v1/search?limit=3", wantCode: http.StatusBadRequest},
		"limit too big": {url: "/api/v1/search?q=q&limit=101", wantCode: http.StatusBadRequest},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			uc := new(mockUseCase)
			if tc.want != nil {
				uc.On("Search", mock.Anything, model.Scope{}, *tc.want).Return(search.SearchOutput{Query: tc.want.Query}, nil)
			}

			r := gin.New()
			New(log.NewNop(), uc, nil, true).RegisterRoutes(r.Group(""), middleware.New(log.NewNop(), nil))
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tc.url, nil))

			assert.Equal(t, tc.wantCode, w.Code)
			if tc.want != nil {
				uc.AssertExpectations(t)
			} else {
				uc.AssertNotCalled(t, "Search", mock.Anything, mock.Anything, mock.Anything)
			}
		})
	}
}
