package http

import (
	"pharma-search-srv/internal/model"
	"pharma-search-srv/internal/search"
	"pharma-search-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

// =====================================================
// Request DTOs
// =====================================================

// searchReq is the POST body.
type searchReq struct {
	Query         string `json:"query" binding:"required"`
	Limit         int    `json:"limit,omitempty" binding:"omitempty,min=1,max=100"`
	IncludeAnswer *bool  `json:"include_answer,omitempty"`
	SessionID     string `json:"session_id,omitempty"`
}

// searchQuery is the GET form, e.g. /api/v1/search?q=keytruda&limit=5.
type searchQuery struct {
	Query         string `form:"q" binding:"required"`
	Limit         int    `form:"limit" binding:"omitempty,min=1,max=100"`
	IncludeAnswer *bool  `form:"include_answer"`
	SessionID     string `form:"session_id"`
}

func (h *handler) resolveIncludeAnswer(v *bool) bool {
	if v == nil {
		return h.includeAnswer
	}
	return *v
}

// processSearchRequest binds the JSON body and the caller scope.
func (h *handler) processSearchRequest(c *gin.Context) (search.SearchInput, model.Scope, error) {
	var req searchReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return search.SearchInput{}, model.Scope{}, err
	}

	input := search.SearchInput{
		Query:         req.Query,
		Limit:         req.Limit,
		IncludeAnswer: h.resolveIncludeAnswer(req.IncludeAnswer),
		SessionID:     req.SessionID,
	}
	return input, scope.GetScopeFromContext(c.Request.Context()), nil
}

// processSearchQuery binds the query string and the caller scope.
func (h *handler) processSearchQuery(c *gin.Context) (search.SearchInput, model.Scope, error) {
	var q searchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		return search.SearchInput{}, model.Scope{}, err
	}

	input := search.SearchInput{
		Query:         q.Query,
		Limit:         q.Limit,
		IncludeAnswer: h.resolveIncludeAnswer(q.IncludeAnswer),
		SessionID:     q.SessionID,
	}
	return input, scope.GetScopeFromContext(c.Request.Context()), nil
}
