package producer

import (
	"pharma-search-srv/internal/search"
	pkgKafka "pharma-search-srv/pkg/kafka"
	"pharma-search-srv/pkg/log"
)

// Producer interface for search domain
type Producer interface {
	search.Producer
}

// implProducer implements the Producer interface
type implProducer struct {
	l        log.Logger
	producer pkgKafka.IProducer
}

// New creates a new search producer
func New(l log.Logger, producer pkgKafka.IProducer) Producer {
	return &implProducer{
		l:        l,
		producer: producer,
	}
}
