package httpserver

import (
	"context"
	"fmt"

	"pharma-search-srv/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (srv *HTTPServer) mapHandlers() error {
	ctx := context.Background()
	mw := middleware.New(srv.l, srv.jwtManager)

	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.setupCoreDomains(ctx); err != nil {
		return fmt.Errorf("failed to setup core domains: %w", err)
	}

	root := srv.gin.Group("")
	if err := srv.setupSearchDomain(ctx, root, mw); err != nil {
		return fmt.Errorf("failed to setup search domain: %w", err)
	}
	if err := srv.setupAnalyticsDomain(ctx, root, mw); err != nil {
		return fmt.Errorf("failed to setup analytics domain: %w", err)
	}

	if srv.jwtManager == nil {
		srv.l.Infof(ctx, "JWT not configured: serving anonymous callers only")
	}
	return nil
}

func (srv *HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Logger())
	srv.gin.Use(middleware.Recovery(srv.l, srv.discord))
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)
	srv.gin.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
