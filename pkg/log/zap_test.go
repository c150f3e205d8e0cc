package log

import (
	"context"
	"testing"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name   string
		args   []any
		wantKV bool
	}{
		{name: "empty", args: nil, wantKV: false},
		{name: "message only", args: []any{"hello"}, wantKV: false},
		{name: "message and error", args: []any{"failed: ", "boom"}, wantKV: false},
		{name: "key value pairs", args: []any{"done", "provider", "openrouter", "tokens", 12}, wantKV: true},
		{name: "non-string key", args: []any{"done", 1, 2}, wantKV: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, ok := split(tt.args)
			if ok != tt.wantKV {
				t.Errorf("split(%v) ok = %v, want %v", tt.args, ok, tt.wantKV)
			}
		})
	}
}

func TestNopLoggerDoesNotPanic(t *testing.T) {
	l := NewNop()
	ctx := context.WithValue(context.Background(), SessionIDKey, "abc")

	l.Info(ctx, "provider attempt", "provider", "togetherai")
	l.Infof(ctx, "attempt %d", 1)
	l.Warn(ctx, "rate limited")
	l.Errorf(ctx, "dispatch failed: %v", "not found")
	l.Debug(nil, "no context")
}

func TestInitFallsBackOnBadLevel(t *testing.T) {
	l := Init(ZapConfig{Level: "not-a-level", Mode: "debug", Encoding: "console"})
	if l == nil {
		t.Fatal("expected logger, got nil")
	}
}
