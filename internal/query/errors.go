package query

import "errors"

var (
	ErrEmptyUnderstanding = errors.New("query: empty understanding response")
	ErrNotAnObject        = errors.New("query: understanding response is not a JSON object")
)
