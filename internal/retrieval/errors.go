package retrieval

import "errors"

var (
	ErrCorpusUnavailable = errors.New("retrieval: corpus store unavailable")
)
