package http

import (
	"pharma-search-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts POST and GET /api/v1/search. Both forms share the usecase.
func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1")
	api.Use(mw.Auth())
	{
		api.POST("/search", h.Search)
		api.GET("/search", h.SearchByQuery)
	}
}
