package scm

import (
	"errors"
	"fmt"
)

// TransportError indicates the request never produced an HTTP response:
// connection refused, DNS failure, timeout. These are retryable.
type TransportError struct {
	Op  string
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// APIError is a non-2xx response from the controller, carrying the
// server-supplied error code and message when the body provides them.
type APIError struct {
	Status  int
	Code    int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("HTTP %d: %s (code %d)", e.Status, e.Message, e.Code)
	}
	return fmt.Sprintf("HTTP %d", e.Status)
}

// IsTransport checks if an error is a transport-level failure.
func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}

// IsRemoteRejection checks if an error is an HTTP error status returned
// by the controller.
func IsRemoteRejection(err error) bool {
	var ae *APIError
	return errors.As(err, &ae)
}

// IsNotFound checks if an error is a 404 from the controller.
func IsNotFound(err error) bool {
	var ae *APIError
	return errors.As(err, &ae) && ae.Status == 404
}
