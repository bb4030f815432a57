package answer

import "errors"

var (
	ErrEmptyGeneration = errors.New("answer: generative service returned no text")
)
