package llmprovider

import (
	"context"
	"encoding/json"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

// mockProvider is a test implementation of the Provider interface
type mockProvider struct {
	name      string
	text      string
	err       error
	delay     time.Duration
	callCount atomic.Int32
}

func (m *mockProvider) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	m.callCount.Add(1)
	if m.delay > 0 {
		select {
		case <-time.After(m.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if m.err != nil {
		return nil, m.err
	}
	return &Response{Text: m.text, ProviderName: m.name, ModelName: m.name + "-model", Usage: &Usage{}}, nil
}

func (m *mockProvider) Name() string {
	return m.name
}

func (m *mockProvider) Model() string {
	return m.name + "-model"
}

func (m *mockProvider) calls() int {
	return int(m.callCount.Load())
}

// mockLogger is a test implementation of the Logger interface
type mockLogger struct {
	infoMessages  []string
	warnMessages  []string
	errorMessages []string
}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Info(ctx context.Context, arg ...any) {
	if len(arg) > 0 {
		if msg, ok := arg[0].(string); ok {
			m.infoMessages = append(m.infoMessages, msg)
		}
	}
}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any) {
	if len(arg) > 0 {
		if msg, ok := arg[0].(string); ok {
			m.warnMessages = append(m.warnMessages, msg)
		}
	}
}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Error(ctx context.Context, arg ...any) {
	if len(arg) > 0 {
		if msg, ok := arg[0].(string); ok {
			m.errorMessages = append(m.errorMessages, msg)
		}
	}
}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

func rateLimited(name string) error {
	return NewProviderError(name, 429, errors.New("quota exceeded"))
}

func jsonDecoder(out *map[string]any) Decoder {
	return func(resp *Response) error {
		return json.Unmarshal([]byte(resp.Text), out)
	}
}

var testRequest = &Request{SystemInstruction: "sys", Prompt: "add a task"}

func TestGenerateContent_SuccessWithPrimaryProvider(t *testing.T) {
	primary := &mockProvider{name: "a", text: `{"intent":"create"}`}
	secondary := &mockProvider{name: "b", text: `{"intent":"delete"}`}
	logger := &mockLogger{}

	manager := NewManager([]Provider{primary, secondary}, &Config{AttemptTimeout: time.Second}, logger)

	var out map[string]any
	resp, err := manager.GenerateContent(context.Background(), testRequest, jsonDecoder(&out))
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if resp.ProviderName != "a" {
		t.Errorf("Expected provider a, got %s", resp.ProviderName)
	}
	if out["intent"] != "create" {
		t.Errorf("Expected decoded intent create, got %v", out["intent"])
	}
	if secondary.calls() != 0 {
		t.Errorf("Secondary should not be called, got %d calls", secondary.calls())
	}
	if len(logger.infoMessages) != 1 {
		t.Errorf("Expected 1 info log, got %d", len(logger.infoMessages))
	}
}

func TestGenerateContent_RateLimitedFallsBack(t *testing.T) {
	a := &mockProvider{name: "a", err: rateLimited("a")}
	b := &mockProvider{name: "b", text: `{"intent":"update"}`}
	c := &mockProvider{name: "c", text: `{"intent":"delete"}`}
	logger := &mockLogger{}

	manager := NewManager([]Provider{a, b, c}, &Config{AttemptTimeout: time.Second}, logger)

	var out map[string]any
	resp, err := manager.GenerateContent(context.Background(), testRequest, jsonDecoder(&out))
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if resp.ProviderName != "b" || out["intent"] != "update" {
		t.Errorf("Expected b's response, got %s / %v", resp.ProviderName, out)
	}
	if a.calls() != 1 || b.calls() != 1 {
		t.Errorf("Expected a and b called once, got %d and %d", a.calls(), b.calls())
	}
	if c.calls() != 0 {
		t.Errorf("Provider c must never be invoked, got %d calls", c.calls())
	}
	if len(logger.warnMessages) != 1 {
		t.Errorf("Expected 1 warn log, got %d", len(logger.warnMessages))
	}
}

func TestGenerateContent_MalformedShortCircuits(t *testing.T) {
	a := &mockProvider{name: "a", text: "I'm sorry, I can't help with that."}
	b := &mockProvider{name: "b", text: `{"intent":"create"}`}
	c := &mockProvider{name: "c", text: `{"intent":"create"}`}

	manager := NewManager([]Provider{a, b, c}, &Config{AttemptTimeout: time.Second}, &mockLogger{})

	var out map[string]any
	_, err := manager.GenerateContent(context.Background(), testRequest, jsonDecoder(&out))
	if err == nil {
		t.Fatal("Expected error, got nil")
	}
	if errors.Is(err, ErrChainExhausted) {
		t.Errorf("Malformed must not be reported as exhaustion: %v", err)
	}
	if KindOf(err) != FailureMalformed {
		t.Errorf("Expected malformed kind, got %s", KindOf(err))
	}
	if b.calls() != 0 || c.calls() != 0 {
		t.Errorf("b and c must not be invoked, got %d and %d", b.calls(), c.calls())
	}
}

func TestGenerateContent_FatalShortCircuits(t *testing.T) {
	a := &mockProvider{name: "a", err: NewProviderError("a", 401, errors.New("bad key"))}
	b := &mockProvider{name: "b", text: `{}`}

	manager := NewManager([]Provider{a, b}, &Config{AttemptTimeout: time.Second}, &mockLogger{})

	_, err := manager.GenerateContent(context.Background(), testRequest, nil)
	if KindOf(err) != FailureFatal {
		t.Fatalf("Expected fatal kind, got %v", err)
	}
	var pe *ProviderError
	if !errors.As(err, &pe) || pe.StatusCode != 401 {
		t.Errorf("Expected ProviderError with status 401, got %v", err)
	}
	if b.calls() != 0 {
		t.Errorf("b must not be invoked")
	}
}

func TestGenerateContent_Exhausted(t *testing.T) {
	a := &mockProvider{name: "a", err: rateLimited("a")}
	b := &mockProvider{name: "b", delay: 200 * time.Millisecond, text: `{}`}
	c := &mockProvider{name: "c", err: rateLimited("c")}
	logger := &mockLogger{}

	manager := NewManager([]Provider{a, b, c}, &Config{AttemptTimeout: 20 * time.Millisecond}, logger)

	_, err := manager.GenerateContent(context.Background(), testRequest, nil)
	if !errors.Is(err, ErrChainExhausted) {
		t.Fatalf("Expected ErrChainExhausted, got %v", err)
	}
	if a.calls() != 1 || b.calls() != 1 || c.calls() != 1 {
		t.Errorf("Each provider should be tried once")
	}
	if len(logger.warnMessages) != 3 {
		t.Errorf("Expected 3 warn logs, got %d", len(logger.warnMessages))
	}
}

func TestGenerateContent_TimeoutFallsBack(t *testing.T) {
	a := &mockProvider{name: "a", delay: 500 * time.Millisecond, text: `{"intent":"create"}`}
	b := &mockProvider{name: "b", text: `{"intent":"update"}`}

	manager := NewManager([]Provider{a, b}, &Config{AttemptTimeout: 30 * time.Millisecond}, &mockLogger{})

	start := time.Now()
	var out map[string]any
	resp, err := manager.GenerateContent(context.Background(), testRequest, jsonDecoder(&out))
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if resp.ProviderName != "b" || out["intent"] != "update" {
		t.Errorf("Expected b's response, got %s", resp.ProviderName)
	}
	if elapsed := time.Since(start); elapsed > 400*time.Millisecond {
		t.Errorf("Chain waited for the slow provider: %s", elapsed)
	}
}

func TestGenerateContent_NoProviders(t *testing.T) {
	manager := NewManager(nil, nil, &mockLogger{})
	if _, err := manager.GenerateContent(context.Background(), testRequest, nil); !errors.Is(err, ErrNoProvidersConfigured) {
		t.Errorf("Expected ErrNoProvidersConfigured, got %v", err)
	}
}

func TestGenerateContent_EmptyPrompt(t *testing.T) {
	manager := NewManager([]Provider{&mockProvider{name: "a"}}, nil, &mockLogger{})
	if _, err := manager.GenerateContent(context.Background(), &Request{}, nil); !errors.Is(err, ErrInvalidRequest) {
		t.Errorf("Expected ErrInvalidRequest, got %v", err)
	}
}

func TestGenerateContent_TotalTimeoutStopsChain(t *testing.T) {
	a := &mockProvider{name: "a", delay: time.Second}
	b := &mockProvider{name: "b", text: `{}`}

	manager := NewManager([]Provider{a, b}, &Config{
		AttemptTimeout:  time.Second,
		MaxTotalTimeout: 30 * time.Millisecond,
	}, &mockLogger{})

	_, err := manager.GenerateContent(context.Background(), testRequest, nil)
	if !errors.Is(err, ErrChainExhausted) {
		t.Fatalf("Expected ErrChainExhausted, got %v", err)
	}
	if b.calls() != 0 {
		t.Errorf("b should not be reached after the chain deadline")
	}
}

func TestNewManager_Defaults(t *testing.T) {
	m := NewManager([]Provider{&mockProvider{name: "x"}, &mockProvider{name: "y"}}, nil, &mockLogger{})
	if m.config.AttemptTimeout != DefaultAttemptTimeout {
		t.Errorf("AttemptTimeout = %s, want %s", m.config.AttemptTimeout, DefaultAttemptTimeout)
	}
	if got := m.Providers(); len(got) != 2 || got[0] != "x" || got[1] != "y" {
		t.Errorf("Providers() = %v", got)
	}
}
