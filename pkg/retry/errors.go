// Package retry provides the shared error taxonomy and retry policy used by
// the LLM and wiki HTTP providers.
package retry

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
)

// ErrorType classifies an upstream failure for retry-policy purposes.
type ErrorType string

// Error classification constants.
const (
	ErrorTypeTimeout       ErrorType = "timeout"
	ErrorTypeRateLimit     ErrorType = "rate_limit"
	ErrorTypeServerBusy    ErrorType = "server_busy"
	ErrorTypeNotFound      ErrorType = "not_found"
	ErrorTypeNetwork       ErrorType = "network"
	ErrorTypeContentFilter ErrorType = "content_filter"
	ErrorTypeUnknown       ErrorType = "unknown"
)

// ClassifiedError wraps an error with its classification so callers can
// branch on type without re-classifying.
type ClassifiedError struct {
	Type ErrorType
	Err  error
}

func (e *ClassifiedError) Error() string {
	return fmt.Sprintf("%s: %v", e.Type, e.Err)
}

func (e *ClassifiedError) Unwrap() error { return e.Err }

// NewClassifiedError wraps err with the given type.
func NewClassifiedError(t ErrorType, err error) *ClassifiedError {
	return &ClassifiedError{Type: t, Err: err}
}

// TypeOf returns the classification of err. If err was produced by this
// package (or wrapped around a ClassifiedError) the recorded type is
// returned; otherwise the error is classified heuristically.
func TypeOf(err error) ErrorType {
	if err == nil {
		return ErrorTypeUnknown
	}
	var ce *ClassifiedError
	if errors.As(err, &ce) {
		return ce.Type
	}
	return Classify(err)
}

// Classify maps an arbitrary error onto the taxonomy. HTTP status codes are
// recognized through StatusError; transport errors through net.Error.
func Classify(err error) ErrorType {
	if err == nil {
		return ErrorTypeUnknown
	}

	var se *StatusError
	if errors.As(err, &se) {
		switch {
		case se.StatusCode == http.StatusTooManyRequests:
			return ErrorTypeRateLimit
		case se.StatusCode == http.StatusNotFound:
			return ErrorTypeNotFound
		case se.StatusCode == http.StatusServiceUnavailable || se.StatusCode == http.StatusBadGateway || se.StatusCode == http.StatusGatewayTimeout:
			return ErrorTypeServerBusy
		case se.StatusCode == http.StatusRequestTimeout:
			return ErrorTypeTimeout
		case se.StatusCode >= 500:
			return ErrorTypeServerBusy
		}
		return ErrorTypeUnknown
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return ErrorTypeTimeout
	}

	var ne net.Error
	if errors.As(err, &ne) {
		if ne.Timeout() {
			return ErrorTypeTimeout
		}
		return ErrorTypeNetwork
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "rate limit") || strings.Contains(msg, "429"):
		return ErrorTypeRateLimit
	case strings.Contains(msg, "timeout") || strings.Contains(msg, "deadline"):
		return ErrorTypeTimeout
	case strings.Contains(msg, "not found") || strings.Contains(msg, "404"):
		return ErrorTypeNotFound
	case strings.Contains(msg, "connection refused") || strings.Contains(msg, "no such host") || strings.Contains(msg, "connection reset"):
		return ErrorTypeNetwork
	case strings.Contains(msg, "content filter") || strings.Contains(msg, "content_filter") || strings.Contains(msg, "safety"):
		return ErrorTypeContentFilter
	case strings.Contains(msg, "overloaded") || strings.Contains(msg, "503"):
		return ErrorTypeServerBusy
	}
	return ErrorTypeUnknown
}

// StatusError carries an HTTP status code for classification.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("HTTP %d", e.StatusCode)
}
