package http

import (
	"pharma-search-srv/internal/analytics"
	"pharma-search-srv/internal/middleware"
	"pharma-search-srv/pkg/discord"
	"pharma-search-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

type handler struct {
	l       log.Logger
	uc      analytics.UseCase
	discord discord.IDiscord
}

func New(l log.Logger, uc analytics.UseCase, discord discord.IDiscord) Handler {
	return &handler{l: l, uc: uc, discord: discord}
}
