package gateway

import "fmt"

type ErrorKind string

const (
	InvalidRequest      ErrorKind = "InvalidRequest"
	BackendUnconfigured ErrorKind = "BackendUnconfigured"
	UpstreamError       ErrorKind = "UpstreamError"
)

// MessageUnconfigured is returned whenever no API credential is set.
const MessageUnconfigured = "API Key not configured"

// Error is a failed invocation. Message is safe to show to the end user;
// Cause keeps the upstream error for logs only.
type Error struct {
	Kind    ErrorKind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}
