package rerank

import "errors"

var (
	ErrDisabled      = errors.New("rerank: disabled")
	ErrNoCandidates  = errors.New("rerank: no candidates")
	ErrNoValidScores = errors.New("rerank: judge returned no usable scores")
)
