package http

import (
	"errors"

	"pharma-search-srv/internal/analytics"
	pkgErrors "pharma-search-srv/pkg/errors"
)

var (
	errInvalidWindow = pkgErrors.NewHTTPError(
		400, "days and limit must be positive integers",
	)
	errStoreUnavailable = pkgErrors.NewHTTPError(
		503, "Search analytics are temporarily unavailable",
	)
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, analytics.ErrInvalidWindow):
		return errInvalidWindow
	case errors.Is(err, analytics.ErrStoreFailed):
		return errStoreUnavailable
	default:
		return err
	}
}
