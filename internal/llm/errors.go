package llm

import "errors"

var (
	ErrUnauthorized  = errors.New("llm unauthorized")
	ErrRateLimited   = errors.New("llm rate limited")
	ErrUnavailable   = errors.New("llm unavailable")
	ErrEmptyResponse = errors.New("llm empty response")
)
