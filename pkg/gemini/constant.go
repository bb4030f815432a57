package gemini

import "time"

const (
	// BaseURL is the Generative Language API models endpoint.
	BaseURL = "https://generativelanguage.googleapis.com/v1beta/models"
	// DefaultModel is used when the config leaves Model empty.
	DefaultModel = "gemini-1.5-flash"
	// DefaultTimeout bounds a single HTTP round trip.
	DefaultTimeout = 60 * time.Second
	// DefaultRequestsPerSecond throttles outgoing calls shared by every caller of a client.
	DefaultRequestsPerSecond = 5
	// DefaultBurst is the limiter burst.
	DefaultBurst = 10

	mimeTypeJSON = "application/json"
)
