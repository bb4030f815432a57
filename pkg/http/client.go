package http

import (
	"context"
	"net/http"
	"time"
)

const (
	DefaultTimeout   = 30 * time.Second
	DefaultUserAgent = "pharma-search-srv"
	// DefaultMaxResponseBytes caps how much of an upstream body is read.
	DefaultMaxResponseBytes = 8 << 20
)

// IClient posts JSON to the AI and webhook upstreams, retrying transport errors and 5xx answers.
// Implementations are safe for concurrent use.
type IClient interface {
	Post(ctx context.Context, url string, body any, headers map[string]string) ([]byte, int, error)
}

// ClientConfig holds configuration for the HTTP client. Retries is the number of extra attempts.
type ClientConfig struct {
	Timeout          time.Duration
	Retries          int
	RetryWait        time.Duration
	UserAgent        string
	MaxResponseBytes int64
}

type clientImpl struct {
	client *http.Client
	config ClientConfig
}

// NewClient creates a new HTTP client. Returns the interface.
func NewClient(cfg ClientConfig) IClient {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}
	if cfg.MaxResponseBytes <= 0 {
		cfg.MaxResponseBytes = DefaultMaxResponseBytes
	}
	return &clientImpl{
		client: &http.Client{Timeout: cfg.Timeout},
		config: cfg,
	}
}
