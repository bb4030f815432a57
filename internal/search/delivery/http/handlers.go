package http

import (
	"pharma-search-srv/internal/model"
	"pharma-search-srv/internal/search"
	"pharma-search-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// Search - Free-text search over the pharma news corpus
// Route: POST /api/v1/search
func (h *handler) Search(c *gin.Context) {
	input, sc, err := h.processSearchRequest(c)
	h.respond(c, "Search", input, sc, err)
}

// SearchByQuery - Same search driven by the query string
// Route: GET /api/v1/search?q=&limit=&include_answer=
func (h *handler) SearchByQuery(c *gin.Context) {
	input, sc, err := h.processSearchQuery(c)
	h.respond(c, "SearchByQuery", input, sc, err)
}

func (h *handler) respond(c *gin.Context, op string, input search.SearchInput, sc model.Scope, bindErr error) {
	ctx := c.Request.Context()

	if bindErr != nil {
		h.l.Warnf(ctx, "search.delivery.http.%s: bind failed: %v", op, bindErr)
		response.Error(c, h.bindError(bindErr), h.discord)
		return
	}

	output, err := h.uc.Search(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "search.delivery.http.%s: usecase Search failed: %v", op, err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newSearchResp(output))
}
