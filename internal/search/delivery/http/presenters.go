package http

import (
	"errors"
	"time"

	"pharma-search-srv/internal/answer"
	"pharma-search-srv/internal/model"
	"pharma-search-srv/internal/query"
	"pharma-search-srv/internal/search"
	pkgErrors "pharma-search-srv/pkg/errors"

	"github.com/go-playground/validator/v10"
)

var errMalformedBody = pkgErrors.NewHTTPError(400, "Malformed request body")

// bindError keeps validation errors for field reporting and turns everything else into a 400.
func (h *handler) bindError(err error) error {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		return err
	}
	return errMalformedBody
}

// =====================================================
// Response DTOs
// =====================================================

// searchResp carries both naming schemes: parsed/total_found and the interpretation/total_results
// names older clients read.
type searchResp struct {
	SearchID         string               `json:"search_id"`
	Query            string               `json:"query"`
	Parsed           interpretationResp   `json:"parsed"`
	Interpretation   interpretationResp   `json:"interpretation"`
	Results          []searchResultResp   `json:"results"`
	Answer           *answerResp          `json:"answer,omitempty"`
	TotalFound       int                  `json:"total_found"`
	TotalResults     int                  `json:"total_results"`
	Confidence       float64              `json:"confidence"`
	Stages           []model.StageOutcome `json:"stages"`
	CacheHit         bool                 `json:"cache_hit"`
	ProcessingTimeMs int64                `json:"processing_time_ms"`
}

type interpretationResp struct {
	Intent        string         `json:"intent"`
	Entities      query.Entities `json:"entities"`
	Timeframe     timeframeResp  `json:"timeframe"`
	Filters       query.Filters  `json:"filters"`
	Sentiment     string         `json:"sentiment"`
	Relationships []string       `json:"relationships"`
}

type timeframeResp struct {
	Keyword string     `json:"keyword"`
	From    *time.Time `json:"from,omitempty"`
	To      time.Time  `json:"to"`
}

type searchResultResp struct {
	ID                 string    `json:"id"`
	Title              string    `json:"title"`
	Summary            string    `json:"summary"`
	Link               string    `json:"link"`
	PublishedAt        time.Time `json:"date_published"`
	Companies          []string  `json:"companies"`
	Drugs              []string  `json:"drugs"`
	Topics             []string  `json:"topics"`
	Phases             []string  `json:"phases,omitempty"`
	ApprovalStatuses   []string  `json:"approval_statuses,omitempty"`
	Geographies        []string  `json:"geographies,omitempty"`
	LexicalRank        float64   `json:"lexical_rank"`
	SemanticSimilarity float64   `json:"semantic_similarity"`
	TopicConfidence    float64   `json:"topic_confidence"`
	RecencyBoost       float64   `json:"recency_boost"`
	CombinedScore      float64   `json:"combined_score"`
	AIRelevance        *float64  `json:"ai_relevance,omitempty"`
	RelevanceReason    string    `json:"relevance_reason,omitempty"`
	FinalScore         float64   `json:"final_score"`
}

type answerResp struct {
	Summary          string         `json:"summary"`
	Confidence       float64        `json:"confidence"`
	Sources          []citationResp `json:"sources"`
	ArticlesAnalyzed int            `json:"articles_analyzed"`
	Fallback         bool           `json:"fallback,omitempty"`
}

type citationResp struct {
	Title string `json:"title"`
	Link  string `json:"link"`
	Date  string `json:"date"`
}

func (h *handler) newSearchResp(output search.SearchOutput) searchResp {
	p := output.Parsed
	parsed := interpretationResp{
		Intent:        p.Intent,
		Entities:      p.Entities,
		Timeframe:     timeframeResp{Keyword: p.Timeframe.Keyword, From: p.Timeframe.From, To: p.Timeframe.To},
		Filters:       p.Filters,
		Sentiment:     p.Sentiment,
		Relationships: p.Relationships,
	}
	resp := searchResp{
		SearchID:         output.SearchID,
		Query:            output.Query,
		Parsed:           parsed,
		Interpretation:   parsed,
		TotalFound:       output.TotalFound,
		TotalResults:     output.TotalFound,
		Confidence:       output.Confidence,
		Stages:           output.Stages,
		CacheHit:         output.CacheHit,
		ProcessingTimeMs: output.ProcessingTimeMs,
	}

	resp.Results = make([]searchResultResp, len(output.Results))
	for i, r := range output.Results {
		a := r.Article
		resp.Results[i] = searchResultResp{
			ID:                 a.ID,
			Title:              a.Title,
			Summary:            a.Summary,
			Link:               a.Link,
			PublishedAt:        a.PublishedAt,
			Companies:          a.Companies,
			Drugs:              a.Drugs,
			Topics:             a.Topics,
			Phases:             a.Phases,
			ApprovalStatuses:   a.ApprovalStatuses,
			Geographies:        a.Geographies,
			LexicalRank:        r.LexicalRank,
			SemanticSimilarity: r.SemanticSimilarity,
			TopicConfidence:    r.TopicConfidence,
			RecencyBoost:       r.RecencyBoost,
			CombinedScore:      r.CombinedScore,
			AIRelevance:        r.AIRelevance,
			RelevanceReason:    r.RelevanceReason,
			FinalScore:         r.FinalScore,
		}
	}

	if output.Answer != nil {
		resp.Answer = newAnswerResp(*output.Answer)
	}
	return resp
}

func newAnswerResp(a answer.Answer) *answerResp {
	out := &answerResp{
		Summary:          a.Summary,
		Confidence:       a.Confidence,
		Sources:          make([]citationResp, len(a.Sources)),
		ArticlesAnalyzed: a.ArticlesAnalyzed,
		Fallback:         a.Fallback,
	}
	for i, s := range a.Sources {
		out.Sources[i] = citationResp{Title: s.Title, Link: s.Link, Date: s.Date.Format(time.DateOnly)}
	}
	return out
}
