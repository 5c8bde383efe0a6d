package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestAPIError(t *testing.T) {
	err := NewAPIError(500, "http://localhost:8000/chat", "server error")

	msg := err.Error()
	if !strings.Contains(msg, "500") {
		t.Errorf("expected status in message, got %q", msg)
	}
	if !strings.Contains(msg, "server error") {
		t.Errorf("expected body in message, got %q", msg)
	}
	if !strings.Contains(msg, "/chat") {
		t.Errorf("expected endpoint in message, got %q", msg)
	}
}

func TestAPIErrorEmptyBody(t *testing.T) {
	err := NewAPIError(404, "http://localhost:8000/chat", "")
	if !strings.Contains(err.Error(), "404") {
		t.Errorf("expected status in message, got %q", err.Error())
	}
}

func TestNetworkErrorUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewNetworkError("http://localhost:8000/chat", cause)

	if !errors.Is(err, cause) {
		t.Error("expected NetworkError to unwrap to its cause")
	}
	if !strings.Contains(err.Error(), "connection refused") {
		t.Errorf("expected cause in message, got %q", err.Error())
	}
}

func TestParseErrorIsSentinel(t *testing.T) {
	err := NewParseError("body is not valid JSON")

	if !errors.Is(err, ErrInvalidResponse) {
		t.Error("expected ParseError to match ErrInvalidResponse")
	}
}

func TestGetHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"api error", NewAPIError(503, "/chat", "unavailable"), 503},
		{"wrapped api error", fmt.Errorf("request failed: %w", NewAPIError(500, "/chat", "")), 500},
		{"network error", NewNetworkError("/chat", errors.New("refused")), 0},
		{"nil", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetHTTPStatus(tt.err); got != tt.want {
				t.Errorf("GetHTTPStatus() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestGetEndpoint(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"api error", NewAPIError(500, "http://x/chat", "boom"), "http://x/chat"},
		{"network error", NewNetworkError("http://x/health", nil), "http://x/health"},
		{"timeout error", NewTimeoutError("http://x/chat"), "http://x/chat"},
		{"plain error", errors.New("nope"), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetEndpoint(tt.err); got != tt.want {
				t.Errorf("GetEndpoint() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGetResponseBody(t *testing.T) {
	err := NewAPIError(500, "/chat", "Internal Server Error")
	if got := GetResponseBody(err); got != "Internal Server Error" {
		t.Errorf("GetResponseBody() = %q", got)
	}
	if got := GetResponseBody(errors.New("plain")); got != "" {
		t.Errorf("expected empty body for plain error, got %q", got)
	}
}

func TestErrorClassifiers(t *testing.T) {
	netErr := NewNetworkError("/chat", errors.New("refused"))
	timeoutErr := NewTimeoutError("/chat")
	parseErr := NewParseError("bad json")

	if !IsNetworkError(netErr) || IsNetworkError(timeoutErr) {
		t.Error("IsNetworkError misclassified")
	}
	if !IsTimeoutError(timeoutErr) || IsTimeoutError(netErr) {
		t.Error("IsTimeoutError misclassified")
	}
	if !IsParseError(parseErr) || IsParseError(netErr) {
		t.Error("IsParseError misclassified")
	}

	wrapped := fmt.Errorf("outer: %w", netErr)
	if !IsNetworkError(wrapped) {
		t.Error("expected wrapped NetworkError to classify")
	}
}
