package gemini

import (
	pkghttp "pharma-search-srv/pkg/http"

	"golang.org/x/time/rate"
)

// GeminiConfig holds the configuration for the Gemini client
type GeminiConfig struct {
	APIKey            string
	Model             string
	RequestsPerSecond float64
	Burst             int
}

// GenerateOptions tunes a single generation call.
type GenerateOptions struct {
	SystemInstruction string
	Temperature       *float64
	MaxOutputTokens   int
	JSON              bool
}

// geminiImpl implements IGemini using the Google Gemini API.
type geminiImpl struct {
	apiKey     string
	model      string
	baseURL    string
	limiter    *rate.Limiter
	httpClient pkghttp.IClient
}

// Request defines the request body for Generate Content API
type Request struct {
	Contents          []Content         `json:"contents"`
	SystemInstruction *Content          `json:"systemInstruction,omitempty"`
	GenerationConfig  *GenerationConfig `json:"generationConfig,omitempty"`
}

// GenerationConfig controls sampling and output format.
type GenerationConfig struct {
	Temperature      *float64 `json:"temperature,omitempty"`
	MaxOutputTokens  int      `json:"maxOutputTokens,omitempty"`
	ResponseMimeType string   `json:"responseMimeType,omitempty"`
}

// Content represents a single content block
type Content struct {
	Parts []Part `json:"parts"`
	Role  string `json:"role,omitempty"`
}

// Part represents a part of the content (text or blob)
type Part struct {
	Text string `json:"text,omitempty"`
}

// Response defines the response body from Generate Content API
type Response struct {
	Candidates    []Candidate   `json:"candidates"`
	UsageMetadata UsageMetadata `json:"usageMetadata"`
}

// Candidate represents a generated candidate
type Candidate struct {
	Content      Content `json:"content"`
	FinishReason string  `json:"finishReason"`
	Index        int     `json:"index"`
}

// UsageMetadata represents token usage
type UsageMetadata struct {
	PromptTokenCount     int `json:"promptTokenCount"`
	CandidatesTokenCount int `json:"candidatesTokenCount"`
	TotalTokenCount      int `json:"totalTokenCount"`
}
