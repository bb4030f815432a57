package model

import "errors"

// Cross-stage error taxonomy. Stage packages wrap these so callers can match with errors.Is.
var (
	ErrUpstreamUnavailable       = errors.New("upstream service unavailable")
	ErrMalformedUpstreamResponse = errors.New("malformed upstream response")
	ErrNoCandidates              = errors.New("no candidates")
)
