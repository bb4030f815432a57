package http

import (
	"pharma-search-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// ListPopular - Most frequent search queries in a trailing window
// Route: GET /api/v1/search/popular?days=&limit=
func (h *handler) ListPopular(c *gin.Context) {
	ctx := c.Request.Context()

	var req listPopularReq
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Warnf(ctx, "analytics.delivery.http.ListPopular: bind failed: %v", err)
		response.Error(c, errInvalidWindow, h.discord)
		return
	}

	output, err := h.uc.ListPopular(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "analytics.delivery.http.ListPopular: usecase ListPopular failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newListPopularResp(output))
}
