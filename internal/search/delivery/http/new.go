package http

import (
	"pharma-search-srv/internal/middleware"
	"pharma-search-srv/internal/search"
	"pharma-search-srv/pkg/discord"
	"pharma-search-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

// Handler - Interface cho search HTTP handler
type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

type handler struct {
	l       log.Logger
	uc      search.UseCase
	discord discord.IDiscord

	// includeAnswer is used when the request does not say.
	includeAnswer bool
}

// New - Factory
func New(l log.Logger, uc search.UseCase, discord discord.IDiscord, includeAnswer bool) Handler {
	return &handler{l: l, uc: uc, discord: discord, includeAnswer: includeAnswer}
}
