package llm

import "errors"

var (
	// ErrUpstreamTransport indicates the request never got an HTTP answer
	// (connection failure, transport timeout).
	ErrUpstreamTransport = errors.New("model backend unreachable")

	// ErrUpstreamStatus indicates the backend answered with a non-200 status.
	ErrUpstreamStatus = errors.New("model backend returned an error")

	// ErrUpstreamDecode indicates the response body was not the expected JSON.
	ErrUpstreamDecode = errors.New("invalid model backend response")

	// ErrUpstreamBlocked indicates the prompt was refused by the backend's safety filter.
	ErrUpstreamBlocked = errors.New("prompt blocked by model backend")
)
