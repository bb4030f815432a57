package embedding

import (
	"errors"
	"fmt"

	"pharma-search-srv/internal/model"
)

var (
	ErrEmptyText        = errors.New("embedding: empty text")
	ErrNoVectorReturned = fmt.Errorf("embedding: no vector returned: %w", model.ErrMalformedUpstreamResponse)
)
