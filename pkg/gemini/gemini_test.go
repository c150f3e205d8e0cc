package gemini_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"breeze/pkg/gemini"
)

func TestGenerateContent(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("x-goog-api-key") != "test-api-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if r.URL.Path != "/models/gemini-2.5-flash:generateContent" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if _, ok := body["system_instruction"]; !ok {
			t.Errorf("system_instruction missing from request")
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"part one "},{"text":"part two"}]}}],"usageMetadata":{"promptTokenCount":5,"candidatesTokenCount":2,"totalTokenCount":7}}`))
	}))
	defer ts.Close()

	client, err := gemini.New(gemini.Config{APIKey: "test-api-key", APIURL: ts.URL})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	resp, err := client.GenerateContent(context.Background(), &gemini.Request{System: "sys", Prompt: "hi"})
	if err != nil {
		t.Fatalf("GenerateContent() error = %v", err)
	}
	if resp.Text != "part one part two" {
		t.Errorf("Text = %q", resp.Text)
	}
	if resp.Usage.TotalTokens != 7 {
		t.Errorf("TotalTokens = %d, want 7", resp.Usage.TotalTokens)
	}
}

func TestGenerateContent_RateLimited(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer ts.Close()

	client, _ := gemini.New(gemini.Config{APIKey: "k", APIURL: ts.URL})
	_, err := client.GenerateContent(context.Background(), &gemini.Request{Prompt: "hi"})

	var apiErr *gemini.APIError
	if !errors.As(err, &apiErr) || apiErr.StatusCode != http.StatusTooManyRequests {
		t.Fatalf("expected 429 APIError, got %v", err)
	}
}

func TestGenerateContent_Blocked(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"candidates":[],"promptFeedback":{"blockReason":"SAFETY"}}`))
	}))
	defer ts.Close()

	client, _ := gemini.New(gemini.Config{APIKey: "k", APIURL: ts.URL + "/"})
	_, err := client.GenerateContent(context.Background(), &gemini.Request{Prompt: "hi"})
	if !errors.Is(err, gemini.ErrBlocked) {
		t.Fatalf("expected ErrBlocked, got %v", err)
	}
}
