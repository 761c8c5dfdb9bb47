package api

import (
	"errors"
	"fmt"
)

// TransportError indicates no usable response reached the client: the
// request timed out, the dial failed, or the connection dropped.
type TransportError struct {
	Op      string
	Timeout bool
	Err     error
}

func (e *TransportError) Error() string {
	if e.Timeout {
		return fmt.Sprintf("%s: request timed out", e.Op)
	}
	return fmt.Sprintf("%s: backend unreachable: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// APIError indicates the backend answered with a non-2xx status. Message is
// the backend-provided error string when the body carried one.
type APIError struct {
	Op      string
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: backend returned %d: %s", e.Op, e.Status, e.Message)
	}
	return fmt.Sprintf("%s: backend returned %d", e.Op, e.Status)
}

// IsTransport reports whether err is a connectivity/timeout failure, so
// callers can branch "couldn't reach server" vs "server rejected request".
func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}

// IsStatus reports whether err is an APIError with the given status code.
func IsStatus(err error, status int) bool {
	var ae *APIError
	return errors.As(err, &ae) && ae.Status == status
}
