package httpserver

import (
	"context"
	"time"

	"pharma-search-srv/config"
	"pharma-search-srv/internal/answer"
	answerUsecase "pharma-search-srv/internal/answer/usecase"
	embeddingRepo "pharma-search-srv/internal/embedding/repository/redis"
	embeddingUsecase "pharma-search-srv/internal/embedding/usecase"
	"pharma-search-srv/internal/query"
	queryUsecase "pharma-search-srv/internal/query/usecase"
	"pharma-search-srv/internal/rerank"
	rerankUsecase "pharma-search-srv/internal/rerank/usecase"
	"pharma-search-srv/internal/retrieval"
	retrievalPostgre "pharma-search-srv/internal/retrieval/repository/postgre"
	retrievalQdrant "pharma-search-srv/internal/retrieval/repository/qdrant"
	retrievalUsecase "pharma-search-srv/internal/retrieval/usecase"
)

// coreDomains are the pipeline stages the search orchestrator is composed from.
type coreDomains struct {
	queryUC     query.UseCase
	retrievalUC retrieval.UseCase
	rerankUC    rerank.UseCase
	answerUC    answer.UseCase
}

func (srv *HTTPServer) setupCoreDomains(ctx context.Context) error {
	sc := srv.config.Search

	embeddingCacheRepo := embeddingRepo.New(srv.redisClient, seconds(sc.EmbeddingCacheTTL), srv.l)
	embeddingUC := embeddingUsecase.New(embeddingCacheRepo, srv.voyageClient, seconds(sc.EmbeddingTimeout), srv.l)

	lexicon := query.NewLexicon(lexiconOptions(srv.config.Lexicon))
	srv.core.queryUC = queryUsecase.New(srv.geminiClient, embeddingUC, lexicon, queryUsecase.Config{
		Timeout:   seconds(sc.InterpretTimeout),
		CacheSize: sc.InterpretCacheSize,
	}, srv.l)

	articleRepo := retrievalPostgre.New(srv.postgresDB, srv.l)
	vectorRepo := retrievalQdrant.New(srv.qdrantClient, srv.config.Qdrant.Collection, srv.l)
	srv.core.retrievalUC = retrievalUsecase.New(articleRepo, vectorRepo, seconds(sc.RetrieveTimeout), srv.l)

	srv.core.rerankUC = rerankUsecase.New(srv.geminiClient, rerankUsecase.Config{
		Enabled: sc.RerankEnabled,
		Timeout: seconds(sc.RerankTimeout),
	}, srv.l)

	srv.core.answerUC = answerUsecase.New(srv.geminiClient, seconds(sc.AnswerTimeout), srv.l)

	srv.l.Infof(ctx, "Core domains (Embedding, Query, Retrieval, Rerank, Answer) initialized")
	return nil
}

// lexiconOptions layers configured dictionaries on top of the built-in ones.
func lexiconOptions(cfg config.LexiconConfig) query.LexiconOptions {
	opts := query.DefaultLexiconOptions()
	for k, v := range cfg.CompanyAliases {
		opts.CompanyAliases[k] = v
	}
	opts.Companies = append(opts.Companies, cfg.Companies...)
	opts.Drugs = append(opts.Drugs, cfg.Drugs...)
	opts.Indications = append(opts.Indications, cfg.Indications...)
	opts.Topics = append(opts.Topics, cfg.Topics...)
	return opts
}

func seconds(n int) time.Duration {
	return time.Duration(n) * time.Second
}
