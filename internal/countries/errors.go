package countries

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
)

// ErrorType represents the category of error that occurred
type ErrorType int

const (
	// ErrTypeNetwork indicates a network-level error (connection refused, DNS, etc.)
	ErrTypeNetwork ErrorType = iota
	// ErrTypeTimeout indicates the request exceeded the configured timeout
	ErrTypeTimeout
	// ErrTypeCanceled indicates the request was canceled by its owner
	ErrTypeCanceled
	// ErrTypeHTTP indicates a non-2xx response status
	ErrTypeHTTP
	// ErrTypeParse indicates a malformed response body
	ErrTypeParse
)

// String returns a human-readable name for the error type
func (et ErrorType) String() string {
	switch et {
	case ErrTypeNetwork:
		return "Network Error"
	case ErrTypeTimeout:
		return "Timeout"
	case ErrTypeCanceled:
		return "Canceled"
	case ErrTypeHTTP:
		return "HTTP Error"
	case ErrTypeParse:
		return "Parse Error"
	default:
		return fmt.Sprintf("ErrorType(%d)", et)
	}
}

// FetchError represents a failed country directory request
type FetchError struct {
	Type       ErrorType // Category of error
	Message    string    // Human-readable error message
	StatusCode int       // HTTP status code (if applicable)
	Endpoint   string    // Requested URL
	Err        error     // Underlying error (if any)
}

// Error implements the error interface
func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error for error chain inspection
func (e *FetchError) Unwrap() error {
	return e.Err
}

// classifyTransportError maps an error returned by http.Client.Do to a FetchError
func classifyTransportError(err error, endpoint string) *FetchError {
	switch {
	case errors.Is(err, context.Canceled):
		return &FetchError{Type: ErrTypeCanceled, Message: "request canceled", Endpoint: endpoint, Err: err}
	case errors.Is(err, context.DeadlineExceeded), os.IsTimeout(err):
		return &FetchError{Type: ErrTypeTimeout, Message: "request timed out", Endpoint: endpoint, Err: err}
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return &FetchError{
			Type:     ErrTypeNetwork,
			Message:  fmt.Sprintf("DNS resolution failed for %s", dnsErr.Name),
			Endpoint: endpoint,
			Err:      err,
		}
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Timeout() {
		return &FetchError{Type: ErrTypeTimeout, Message: "request timed out", Endpoint: endpoint, Err: err}
	}

	return &FetchError{Type: ErrTypeNetwork, Message: "request failed", Endpoint: endpoint, Err: err}
}

// NewHTTPError creates an HTTP-level error
func NewHTTPError(endpoint string, statusCode int) *FetchError {
	return &FetchError{
		Type:       ErrTypeHTTP,
		Message:    fmt.Sprintf("unexpected status code: %d", statusCode),
		StatusCode: statusCode,
		Endpoint:   endpoint,
	}
}

// NewParseError creates a parsing error
func NewParseError(endpoint string, message string, err error) *FetchError {
	return &FetchError{
		Type:     ErrTypeParse,
		Message:  message,
		Endpoint: endpoint,
		Err:      err,
	}
}

func hasType(err error, types ...ErrorType) bool {
	var fe *FetchError
	if !errors.As(err, &fe) {
		return false
	}
	for _, t := range types {
		if fe.Type == t {
			return true
		}
	}
	return false
}

// IsNetworkError reports whether err is a network or timeout error
func IsNetworkError(err error) bool {
	return hasType(err, ErrTypeNetwork, ErrTypeTimeout)
}

// IsCanceled reports whether the request was canceled by its owner
func IsCanceled(err error) bool {
	return hasType(err, ErrTypeCanceled)
}

// IsHTTPError reports whether err is an HTTP status error
func IsHTTPError(err error) bool {
	return hasType(err, ErrTypeHTTP)
}

// IsParseError reports whether err is a malformed response error
func IsParseError(err error) bool {
	return hasType(err, ErrTypeParse)
}

// ShortMessage returns a concise, user-facing description of err
func ShortMessage(err error) string {
	var fe *FetchError
	if !errors.As(err, &fe) {
		return err.Error()
	}

	switch fe.Type {
	case ErrTypeTimeout:
		return "Country service not responding (timeout)"
	case ErrTypeCanceled:
		return "Country request canceled"
	case ErrTypeHTTP:
		return fmt.Sprintf("Country service error (HTTP %d)", fe.StatusCode)
	case ErrTypeParse:
		return "Country service returned an unreadable response"
	default:
		return "Network error - check connection"
	}
}
