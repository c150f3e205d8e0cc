package llmprovider_test

import (
	"errors"
	"testing"
	"time"

	"breeze/config"
	"breeze/pkg/llmprovider"
)

func TestInitializeProviders_OrdersByPriority(t *testing.T) {
	cfg := &config.LLMConfig{
		Providers: []config.ProviderConfig{
			{Name: "aimlapi", Enabled: true, Priority: 3, APIKey: "c", Model: "gpt-4o-mini"},
			{Name: "togetherai", Enabled: true, Priority: 1, APIKey: "a", Timeout: "10s"},
			{Name: "openrouter", Enabled: true, Priority: 2, APIKey: "b"},
			{Name: "gemini", Enabled: false, Priority: 4, APIKey: "d"},
		},
	}

	providers, err := llmprovider.InitializeProviders(cfg)
	if err != nil {
		t.Fatalf("Failed to initialize providers: %v", err)
	}

	want := []string{"togetherai", "openrouter", "aimlapi"}
	if len(providers) != len(want) {
		t.Fatalf("Expected %d providers, got %d", len(want), len(providers))
	}
	for i, name := range want {
		if providers[i].Name() != name {
			t.Errorf("providers[%d] = %s, want %s", i, providers[i].Name(), name)
		}
	}
}

func TestInitializeProviders_SkipsBrokenProviders(t *testing.T) {
	cfg := &config.LLMConfig{
		Providers: []config.ProviderConfig{
			{Name: "togetherai", Enabled: true, Priority: 1},
			{Name: "unknown", Enabled: true, Priority: 2, APIKey: "x"},
			{Name: "gemini", Enabled: true, Priority: 3, APIKey: "g"},
		},
	}

	providers, err := llmprovider.InitializeProviders(cfg)
	if err != nil {
		t.Fatalf("Expected partial success, got %v", err)
	}
	if len(providers) != 1 || providers[0].Name() != "gemini" {
		t.Errorf("Expected only gemini, got %d providers", len(providers))
	}
}

func TestInitializeProviders_NoneEnabled(t *testing.T) {
	_, err := llmprovider.InitializeProviders(&config.LLMConfig{})
	if !errors.Is(err, llmprovider.ErrNoProvidersConfigured) {
		t.Errorf("Expected ErrNoProvidersConfigured, got %v", err)
	}
}

func TestNewManagerConfig(t *testing.T) {
	mc, err := llmprovider.NewManagerConfig(&config.LLMConfig{AttemptTimeout: "5000ms", MaxTotalTimeout: "20s"})
	if err != nil {
		t.Fatalf("NewManagerConfig() error = %v", err)
	}
	if mc.AttemptTimeout != 5*time.Second || mc.MaxTotalTimeout != 20*time.Second {
		t.Errorf("unexpected config %+v", mc)
	}

	mc, err = llmprovider.NewManagerConfig(&config.LLMConfig{})
	if err != nil || mc.AttemptTimeout != llmprovider.DefaultAttemptTimeout {
		t.Errorf("expected default attempt timeout, got %+v, %v", mc, err)
	}

	if _, err := llmprovider.NewManagerConfig(&config.LLMConfig{AttemptTimeout: "soon"}); err == nil {
		t.Error("expected parse error")
	}
}
