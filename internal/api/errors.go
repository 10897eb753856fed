package api

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrUnavailable indicates the remote service could not be reached.
	ErrUnavailable = errors.New("admin api unavailable")

	// ErrTimeout indicates the request exceeded the configured timeout.
	ErrTimeout = errors.New("admin api request timed out")

	// ErrStatus indicates the service answered with a non-2xx status.
	// Match with errors.Is; use errors.As with *StatusError for details.
	ErrStatus = errors.New("admin api returned error status")

	// ErrDecode indicates a response body was missing or not the expected JSON.
	ErrDecode = errors.New("invalid admin api response")

	// ErrMissingID indicates a record operation was given no id.
	ErrMissingID = errors.New("record id is required")
)

// StatusError carries the status code and a truncated body of a failed call.
type StatusError struct {
	Method string
	Path   string
	Code   int
	Body   string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s %s: status %d", e.Method, e.Path, e.Code)
	}
	return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.Path, e.Code, e.Body)
}

func (e *StatusError) Unwrap() error { return ErrStatus }

// ErrorCode maps an error to the short code used by observers and metrics.
func ErrorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrTimeout):
		return "TIMEOUT"
	case errors.Is(err, ErrUnavailable):
		return "UNAVAILABLE"
	case errors.Is(err, ErrStatus):
		return "STATUS"
	case errors.Is(err, ErrDecode):
		return "DECODE"
	case errors.Is(err, ErrMissingID):
		return "INVALID"
	case errors.Is(err, context.Canceled):
		return "CANCELED"
	default:
		return "UNKNOWN"
	}
}
