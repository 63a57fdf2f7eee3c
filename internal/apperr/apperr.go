// Package apperr defines the error kinds the core components return.
// Handlers map each kind to an HTTP status; the core never wraps one
// kind into another.
package apperr

import (
	"errors"
	"fmt"
)

// ValidationError reports malformed or out-of-range input. Never retried.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func Validationf(format string, args ...interface{}) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// NotFoundError reports an id or target that does not resolve to a
// visible entity.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

func NotFoundf(format string, args ...interface{}) error {
	return &NotFoundError{Message: fmt.Sprintf(format, args...)}
}

// UpstreamError reports a failed remote call: non-2xx status or a
// malformed payload. StatusCode is 0 for transport-level failures.
type UpstreamError struct {
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("upstream returned %d: %s", e.StatusCode, e.Message)
	}
	return e.Message
}

var (
	// ErrUpstreamTimeout marks a remote call that exceeded its bounded
	// wait. Distinct from UpstreamError so callers can retry it.
	ErrUpstreamTimeout = errors.New("upstream request timed out")

	// ErrEmptyResult marks a remote call that succeeded but matched
	// nothing. A legitimate outcome, never conflated with NotFoundError.
	ErrEmptyResult = errors.New("no results found")
)

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func IsNotFound(err error) bool {
	var nfe *NotFoundError
	return errors.As(err, &nfe)
}

func IsUpstream(err error) bool {
	var ue *UpstreamError
	return errors.As(err, &ue)
}
