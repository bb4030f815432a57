package postgre

import (
	"database/sql"

	"pharma-search-srv/internal/analytics/repository"
	"pharma-search-srv/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New - Factory function
func New(db *sql.DB, l log.Logger) repository.Repository {
	return &implRepository{
		db: db,
		l:  l,
	}
}
