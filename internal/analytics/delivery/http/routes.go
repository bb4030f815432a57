package http

import (
	"pharma-search-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1/search")
	api.Use(mw.Auth())
	{
		api.GET("/popular", h.ListPopular)
	}
}
