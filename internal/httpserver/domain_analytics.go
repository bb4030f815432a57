package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	analyticsHTTP "pharma-search-srv/internal/analytics/delivery/http"
	analyticsPostgre "pharma-search-srv/internal/analytics/repository/postgre"
	analyticsUsecase "pharma-search-srv/internal/analytics/usecase"
	"pharma-search-srv/internal/middleware"
)

func (srv *HTTPServer) setupAnalyticsDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	repo := analyticsPostgre.New(srv.postgresDB, srv.l)
	uc := analyticsUsecase.New(repo, srv.l)

	handler := analyticsHTTP.New(srv.l, uc, srv.discord)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Analytics domain registered")
	return nil
}
