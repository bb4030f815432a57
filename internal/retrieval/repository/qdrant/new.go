package qdrant

import (
	"pharma-search-srv/internal/retrieval/repository"
	"pharma-search-srv/pkg/log"
	pkgQdrant "pharma-search-srv/pkg/qdrant"
)

const defaultCollection = "pharma_articles"

type implRepository struct {
	client     pkgQdrant.IQdrant
	collection string
	l          log.Logger
}

func New(client pkgQdrant.IQdrant, collection string, l log.Logger) repository.VectorRepository {
	if collection == "" {
		collection = defaultCollection
	}
	return &implRepository{
		client:     client,
		collection: collection,
		l:          l,
	}
}
