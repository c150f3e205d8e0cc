package llmprovider

import (
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"breeze/config"
	"breeze/pkg/gemini"
	"breeze/pkg/togetherai"
)

// Provider names accepted in llm.providers[].name
const (
	ProviderTogetherAI = "togetherai"
	ProviderOpenRouter = "openrouter"
	ProviderAIMLAPI    = "aimlapi"
	ProviderGemini     = "gemini"
)

// InitializeProviders creates Provider instances from config.LLMConfig
// Returns providers sorted by priority (ascending) with disabled providers filtered out
// Skips providers that fail to initialize instead of failing the entire service
func InitializeProviders(cfg *config.LLMConfig) ([]Provider, error) {
	if cfg == nil {
		return nil, fmt.Errorf("LLM config is nil")
	}

	var enabledProviders []config.ProviderConfig
	for _, p := range cfg.Providers {
		if p.Enabled {
			enabledProviders = append(enabledProviders, p)
		}
	}

	if len(enabledProviders) == 0 {
		return nil, ErrNoProvidersConfigured
	}

	sort.SliceStable(enabledProviders, func(i, j int) bool {
		return enabledProviders[i].Priority < enabledProviders[j].Priority
	})

	var providers []Provider
	var initErrors []string

	for _, p := range enabledProviders {
		provider, err := createProvider(p)
		if err != nil {
			initErrors = append(initErrors,
				fmt.Sprintf("provider %s (priority %d): %v", p.Name, p.Priority, err))
			continue
		}
		providers = append(providers, provider)
	}

	if len(providers) == 0 {
		return nil, fmt.Errorf("no providers successfully initialized: %s", strings.Join(initErrors, "; "))
	}

	return providers, nil
}

// NewManagerConfig converts the string durations in cfg into a Manager Config.
func NewManagerConfig(cfg *config.LLMConfig) (*Config, error) {
	attempt, err := parseDuration(cfg.AttemptTimeout, DefaultAttemptTimeout)
	if err != nil {
		return nil, fmt.Errorf("llm.attempt_timeout: %w", err)
	}
	total, err := parseDuration(cfg.MaxTotalTimeout, 0)
	if err != nil {
		return nil, fmt.Errorf("llm.max_total_timeout: %w", err)
	}
	return &Config{AttemptTimeout: attempt, MaxTotalTimeout: total}, nil
}

// createProvider creates a concrete provider instance based on the provider config
func createProvider(cfg config.ProviderConfig) (Provider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("provider %s: API key is required", cfg.Name)
	}

	timeout, err := parseDuration(cfg.Timeout, 0)
	if err != nil {
		return nil, fmt.Errorf("provider %s: timeout: %w", cfg.Name, err)
	}

	switch cfg.Name {
	case ProviderTogetherAI:
		tc := togetherai.Config{
			APIKey:  cfg.APIKey,
			Model:   cfg.Model,
			BaseURL: cfg.BaseURL,
		}
		if timeout > 0 {
			tc.HTTPClient = &http.Client{Timeout: timeout}
		}
		client, err := togetherai.New(tc)
		if err != nil {
			return nil, fmt.Errorf("failed to create togetherai client: %w", err)
		}
		return NewTogetherAIAdapter(client), nil

	case ProviderOpenRouter:
		return NewOpenRouterAdapter(CompatConfig{
			APIKey:  cfg.APIKey,
			BaseURL: cfg.BaseURL,
			Model:   cfg.Model,
			Timeout: timeout,
		})

	case ProviderAIMLAPI:
		return NewAIMLAdapter(CompatConfig{
			APIKey:  cfg.APIKey,
			BaseURL: cfg.BaseURL,
			Model:   cfg.Model,
			Timeout: timeout,
		})

	case ProviderGemini:
		gc := gemini.Config{
			APIKey: cfg.APIKey,
			Model:  cfg.Model,
			APIURL: cfg.BaseURL,
		}
		if timeout > 0 {
			gc.HTTPClient = &http.Client{Timeout: timeout}
		}
		client, err := gemini.New(gc)
		if err != nil {
			return nil, fmt.Errorf("failed to create gemini client: %w", err)
		}
		return NewGeminiAdapter(client), nil

	default:
		return nil, fmt.Errorf("unknown provider: %s", cfg.Name)
	}
}

func parseDuration(s string, def time.Duration) (time.Duration, error) {
	if s == "" {
		return def, nil
	}
	return time.ParseDuration(s)
}
