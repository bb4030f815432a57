package voyage

import "time"

const (
	// Endpoint is the Voyage embeddings endpoint.
	Endpoint = "https://api.voyageai.com/v1/embeddings"
	// Model is the embedding model. Vectors stored in Qdrant must use the same model.
	Model = "voyage-3"
	// InputTypeQuery marks texts as search queries rather than corpus documents.
	InputTypeQuery = "query"
	// DefaultTimeout bounds a single HTTP round trip.
	DefaultTimeout = 30 * time.Second
)
