package voyage

import (
	"context"
	"time"

	pkghttp "pharma-search-srv/pkg/http"
)

// IVoyage defines the interface for Voyage AI embeddings.
// Implementations are safe for concurrent use.
type IVoyage interface {
	Embed(ctx context.Context, texts []string) ([][]float32, error)
}

// NewVoyage creates a new Voyage client. APIKey must be set; Embed returns an error if it is empty.
func NewVoyage(cfg VoyageConfig) IVoyage {
	return &voyageImpl{
		apiKey:   cfg.APIKey,
		endpoint: Endpoint,
		httpClient: pkghttp.NewClient(pkghttp.ClientConfig{
			Timeout:   DefaultTimeout,
			Retries:   1,
			RetryWait: 1 * time.Second,
		}),
	}
}
