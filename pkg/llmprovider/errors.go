package llmprovider

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrChainExhausted indicates every provider failed with a non-fatal failure
	ErrChainExhausted = errors.New("all providers exhausted")

	// ErrNoProvidersConfigured indicates no providers are enabled
	ErrNoProvidersConfigured = errors.New("no providers configured")

	// ErrInvalidRequest indicates the request is malformed
	ErrInvalidRequest = errors.New("invalid request")

	// ErrEmptyResponse indicates the provider answered with no content
	ErrEmptyResponse = errors.New("empty response")
)

// FailureKind classifies a failed provider attempt.
type FailureKind int

const (
	FailureNone FailureKind = iota
	FailureRateLimited
	FailureTimedOut
	FailureMalformed
	FailureFatal
)

func (k FailureKind) String() string {
	switch k {
	case FailureNone:
		return "none"
	case FailureRateLimited:
		return "rate_limited"
	case FailureTimedOut:
		return "timed_out"
	case FailureMalformed:
		return "malformed"
	default:
		return "fatal"
	}
}

// IsFatal reports whether the failure must abort the chain.
func (k FailureKind) IsFatal() bool {
	return k == FailureMalformed || k == FailureFatal
}

// ProviderError wraps provider-specific errors with the failure kind decided at the call boundary.
type ProviderError struct {
	Provider   string
	Kind       FailureKind
	StatusCode int
	Err        error
}

func (e *ProviderError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("provider %s (%s, status %d): %v", e.Provider, e.Kind, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("provider %s (%s): %v", e.Provider, e.Kind, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// NewProviderError classifies err from a provider call.
// A 429 status is RateLimited, an exceeded deadline is TimedOut, anything else is Fatal.
func NewProviderError(provider string, statusCode int, err error) *ProviderError {
	kind := FailureFatal
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		kind = FailureTimedOut
	case statusCode == http.StatusTooManyRequests:
		kind = FailureRateLimited
	}
	return &ProviderError{Provider: provider, Kind: kind, StatusCode: statusCode, Err: err}
}

// KindOf returns the failure kind carried by err, or FailureFatal for unclassified errors.
func KindOf(err error) FailureKind {
	if err == nil {
		return FailureNone
	}
	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe.Kind
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return FailureTimedOut
	}
	return FailureFatal
}
