package llmprovider

import (
	"context"
	"fmt"
	"time"

	"breeze/pkg/log"
)

// DefaultAttemptTimeout bounds a single provider call.
const DefaultAttemptTimeout = 5 * time.Second

// Manager runs providers strictly in order until one succeeds.
// Rate limits and timeouts advance to the next provider; malformed or fatal failures stop the chain.
type Manager struct {
	providers []Provider
	config    *Config
	logger    log.Logger
}

// Config defines configuration for the Provider Manager
type Config struct {
	AttemptTimeout  time.Duration
	MaxTotalTimeout time.Duration // 0 disables the chain-wide deadline
}

// NewManager creates a new Provider Manager with the given providers, config, and logger
func NewManager(providers []Provider, config *Config, logger log.Logger) *Manager {
	if config == nil {
		config = &Config{}
	}
	if config.AttemptTimeout <= 0 {
		config.AttemptTimeout = DefaultAttemptTimeout
	}
	return &Manager{
		providers: providers,
		config:    config,
		logger:    logger,
	}
}

// Providers returns the provider names in chain order.
func (m *Manager) Providers() []string {
	names := make([]string, len(m.providers))
	for i, p := range m.providers {
		names[i] = p.Name()
	}
	return names
}

// GenerateContent walks the chain and returns the first response that decode accepts.
// It returns ErrChainExhausted when every provider failed non-fatally, or the fatal *ProviderError.
func (m *Manager) GenerateContent(ctx context.Context, req *Request, decode Decoder) (*Response, error) {
	if len(m.providers) == 0 {
		return nil, ErrNoProvidersConfigured
	}
	if req == nil || req.Prompt == "" {
		return nil, ErrInvalidRequest
	}

	if m.config.MaxTotalTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.config.MaxTotalTimeout)
		defer cancel()
	}

	var lastErr error
	for i, provider := range m.providers {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("%w: stopped after %d provider(s): %v", ErrChainExhausted, i, err)
		}

		attempt := Invoke(ctx, provider, req, m.config.AttemptTimeout, decode)
		if !attempt.Failed() {
			m.logSuccess(ctx, provider, attempt)
			return attempt.Response, nil
		}

		m.logFailure(ctx, provider, attempt)
		if attempt.Kind.IsFatal() {
			return nil, attempt.Err
		}
		lastErr = attempt.Err
	}

	return nil, fmt.Errorf("%w: %v", ErrChainExhausted, lastErr)
}

// logSuccess logs successful LLM generation with metrics
func (m *Manager) logSuccess(ctx context.Context, provider Provider, attempt Attempt) {
	var in, out int
	if attempt.Response.Usage != nil {
		in, out = attempt.Response.Usage.InputTokens, attempt.Response.Usage.OutputTokens
	}
	m.logger.Info(ctx, "LLM generation successful",
		"provider", provider.Name(),
		"model", provider.Model(),
		"duration_ms", attempt.Duration.Milliseconds(),
		"input_tokens", in,
		"output_tokens", out,
	)
}

// logFailure logs failed LLM generation attempts
func (m *Manager) logFailure(ctx context.Context, provider Provider, attempt Attempt) {
	if attempt.Kind.IsFatal() {
		m.logger.Error(ctx, "LLM generation aborted",
			"provider", provider.Name(),
			"model", provider.Model(),
			"kind", attempt.Kind.String(),
			"error", attempt.Err.Error(),
		)
		return
	}
	m.logger.Warn(ctx, "LLM generation failed, trying next provider",
		"provider", provider.Name(),
		"model", provider.Model(),
		"kind", attempt.Kind.String(),
		"error", attempt.Err.Error(),
	)
}
