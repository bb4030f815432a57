package voyage

import pkghttp "pharma-search-srv/pkg/http"

// VoyageConfig holds the configuration for the Voyage client.
type VoyageConfig struct {
	APIKey string
}

// voyageImpl implements IVoyage.
type voyageImpl struct {
	apiKey     string
	endpoint   string
	httpClient pkghttp.IClient
}

// Request defines the request body for Embedding API.
// InputType "query" asks Voyage for the retrieval-side projection of the text.
type Request struct {
	Input     []string `json:"input"`
	Model     string   `json:"model"`
	InputType string   `json:"input_type,omitempty"`
}

// Response defines the response body from Embedding API
type Response struct {
	Object string      `json:"object"`
	Data   []Embedding `json:"data"`
	Model  string      `json:"model"`
	Usage  Usage       `json:"usage"`
}

// Embedding represents a single embedding object
type Embedding struct {
	Object    string    `json:"object"`
	Embedding []float32 `json:"embedding"`
	Index     int       `json:"index"`
}

// Usage represents token usage
type Usage struct {
	TotalTokens int `json:"total_tokens"`
}
