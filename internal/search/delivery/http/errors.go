package http

import (
	"errors"

	"pharma-search-srv/internal/retrieval"
	"pharma-search-srv/internal/search"
	pkgErrors "pharma-search-srv/pkg/errors"
)

var (
	errInvalidQuery = pkgErrors.NewHTTPError(
		400, "Query must not be blank",
	)
	errQueryTooLong = pkgErrors.NewHTTPError(
		400, "Query too long (max 1000 characters)",
	)
	errCorpusUnavailable = pkgErrors.NewHTTPError(
		503, "Article corpus is temporarily unavailable",
	)
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, search.ErrInvalidQuery):
		return errInvalidQuery
	case errors.Is(err, search.ErrQueryTooLong):
		return errQueryTooLong
	case errors.Is(err, retrieval.ErrCorpusUnavailable):
		return errCorpusUnavailable
	default:
		return err
	}
}
