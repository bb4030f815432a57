package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"pharma-search-srv/internal/middleware"
	"pharma-search-srv/internal/search"
	searchHTTP "pharma-search-srv/internal/search/delivery/http"
	searchProducer "pharma-search-srv/internal/search/delivery/kafka/producer"
	searchRedis "pharma-search-srv/internal/search/repository/redis"
	searchUsecase "pharma-search-srv/internal/search/usecase"
)

func (srv *HTTPServer) setupSearchDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	cacheRepo := searchRedis.New(srv.redisClient, srv.l)

	var producer search.Producer
	if srv.kafkaProducer != nil {
		producer = searchProducer.New(srv.l, srv.kafkaProducer)
	}

	uc := searchUsecase.New(
		srv.core.queryUC,
		srv.core.retrievalUC,
		srv.core.rerankUC,
		srv.core.answerUC,
		cacheRepo,
		producer,
		srv.l,
		searchUsecase.Config{
			DefaultLimit:   srv.config.Search.DefaultLimit,
			ResultCacheTTL: seconds(srv.config.Search.ResultCacheTTL),
		},
	)

	handler := searchHTTP.New(srv.l, uc, srv.discord, srv.config.Search.IncludeAnswer)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Search domain registered")
	return nil
}
