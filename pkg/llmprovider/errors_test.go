package llmprovider

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestNewProviderError(t *testing.T) {
	tests := []struct {
		name   string
		status int
		err    error
		want   FailureKind
	}{
		{name: "429", status: http.StatusTooManyRequests, err: errors.New("slow down"), want: FailureRateLimited},
		{name: "500", status: http.StatusInternalServerError, err: errors.New("boom"), want: FailureFatal},
		{name: "deadline", status: 0, err: fmt.Errorf("call: %w", context.DeadlineExceeded), want: FailureTimedOut},
		{name: "network", status: 0, err: errors.New("dial tcp: refused"), want: FailureFatal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pe := NewProviderError("p", tt.status, tt.err)
			if pe.Kind != tt.want {
				t.Errorf("Kind = %s, want %s", pe.Kind, tt.want)
			}
			if !errors.Is(pe, tt.err) {
				t.Errorf("ProviderError must unwrap to the cause")
			}
		})
	}
}

func TestFailureKind_IsFatal(t *testing.T) {
	if FailureRateLimited.IsFatal() || FailureTimedOut.IsFatal() {
		t.Error("rate limits and timeouts must advance the chain")
	}
	if !FailureMalformed.IsFatal() || !FailureFatal.IsFatal() {
		t.Error("malformed and fatal must abort the chain")
	}
}

func TestStatusFromMessage(t *testing.T) {
	tests := map[string]int{
		"API returned unexpected status code: 429: Rate limit reached": 429,
		"API returned unexpected status code: 401: invalid key":        401,
		"You hit the rate limit":                                       429,
		"connection reset by peer":                                     0,
	}
	for msg, want := range tests {
		if got := statusFromMessage(msg); got != want {
			t.Errorf("statusFromMessage(%q) = %d, want %d", msg, got, want)
		}
	}
}
