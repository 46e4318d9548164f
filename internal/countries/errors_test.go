package countries

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
	"testing"
)

func TestErrorTypeString(t *testing.T) {
	tests := []struct {
		et   ErrorType
		want string
	}{
		{ErrTypeNetwork, "Network Error"},
		{ErrTypeTimeout, "Timeout"},
		{ErrTypeCanceled, "Canceled"},
		{ErrTypeHTTP, "HTTP Error"},
		{ErrTypeParse, "Parse Error"},
		{ErrorType(99), "ErrorType(99)"},
	}
	for _, tt := range tests {
		if got := tt.et.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.et, got, tt.want)
		}
	}
}

func TestFetchErrorUnwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := NewParseError("https://example.test", "bad body", cause)

	if !errors.Is(err, cause) {
		t.Error("errors.Is should find the cause")
	}
	if !strings.Contains(err.Error(), "root cause") {
		t.Errorf("Error() = %q, should mention cause", err.Error())
	}
}

func TestClassifyTransportError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorType
	}{
		{"canceled", fmt.Errorf("do: %w", context.Canceled), ErrTypeCanceled},
		{"deadline", fmt.Errorf("do: %w", context.DeadlineExceeded), ErrTypeTimeout},
		{"dns", &net.DNSError{Name: "nowhere.invalid", Err: "no such host"}, ErrTypeNetwork},
		{"other", errors.New("connection reset"), ErrTypeNetwork},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifyTransportError(tt.err, "https://example.test")
			if got.Type != tt.want {
				t.Errorf("Type = %v, want %v", got.Type, tt.want)
			}
		})
	}
}

func TestPredicatesSeeWrappedErrors(t *testing.T) {
	err := fmt.Errorf("loading: %w", NewHTTPError("https://example.test", 500))

	if !IsHTTPError(err) {
		t.Error("IsHTTPError should unwrap")
	}
	if IsParseError(err) || IsNetworkError(err) || IsCanceled(err) {
		t.Error("other predicates should be false")
	}
	if IsHTTPError(errors.New("plain")) {
		t.Error("plain errors are not HTTP errors")
	}
}

func TestShortMessage(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{NewHTTPError("u", 503), "Country service error (HTTP 503)"},
		{NewParseError("u", "x", nil), "Country service returned an unreadable response"},
		{&FetchError{Type: ErrTypeTimeout}, "Country service not responding (timeout)"},
		{&FetchError{Type: ErrTypeCanceled}, "Country request canceled"},
		{&FetchError{Type: ErrTypeNetwork}, "Network error - check connection"},
		{errors.New("plain"), "plain"},
	}
	for _, tt := range tests {
		if got := ShortMessage(tt.err); got != tt.want {
			t.Errorf("ShortMessage(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}
