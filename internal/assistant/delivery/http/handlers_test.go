package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"breeze/internal/assistant"
	"breeze/internal/middleware"
	"breeze/internal/model"
	"breeze/internal/task"
	"breeze/pkg/llmprovider"
	"breeze/pkg/log"
)

type mockUseCase struct {
	out      assistant.SubmitOutput
	err      error
	resetErr error
}

func (m *mockUseCase) SubmitPrompt(ctx context.Context, sc model.Scope, in assistant.SubmitInput) (assistant.SubmitOutput, error) {
	return m.out, m.err
}

func (m *mockUseCase) History(ctx context.Context, sc model.Scope) (assistant.HistoryOutput, error) {
	return assistant.HistoryOutput{Turns: []assistant.ConversationTurn{{ID: 1, Text: "hi", IsUser: true}}}, nil
}

func (m *mockUseCase) Reset(ctx context.Context, sc model.Scope) error { return m.resetErr }

func submit(t *testing.T, uc assistant.UseCase, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	l := log.NewNop()
	RegisterRoutes(r.Group("/api/v1"), New(l, uc), middleware.New(l, middleware.Config{}))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/ai", strings.NewReader(body)))

	var got map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
	return w, got
}

func TestSubmit_Clarification(t *testing.T) {
	uc := &mockUseCase{out: assistant.SubmitOutput{
		Intent:  assistant.IntentCreate,
		Fields:  assistant.ProvidedFields{Title: "submit the report"},
		Message: "Please provide the following fields: description, dueDate, priority.",
	}}
	w, got := submit(t, uc, `{"prompt":"submit the report"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if got["intent"] != "create" || got["message"] != uc.out.Message {
		t.Errorf("body = %v", got)
	}
	if data, _ := got["taskData"].(map[string]any); data["title"] != "submit the report" {
		t.Errorf("taskData = %v", got["taskData"])
	}
}

func TestSubmit_Success(t *testing.T) {
	uc := &mockUseCase{out: assistant.SubmitOutput{
		Intent:     assistant.IntentCreate,
		Dispatched: true,
		Task:       model.Task{ID: "t1", Title: "x", DueDate: time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC), Priority: "high"},
	}}
	w, got := submit(t, uc, `{"prompt":"go"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if got["success"] != true || got["message"] != "" {
		t.Errorf("body = %v", got)
	}
	if data, _ := got["taskData"].(map[string]any); data["id"] != "t1" || data["dueDate"] != "2025-01-15" {
		t.Errorf("taskData = %v", got["taskData"])
	}
}

func TestSubmit_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"exhausted", llmprovider.ErrChainExhausted, http.StatusServiceUnavailable, assistant.MessageExhausted},
		{"malformed", &llmprovider.ProviderError{Provider: "a", Kind: llmprovider.FailureMalformed, Err: errors.New("bad")}, http.StatusInternalServerError, assistant.MessageFailure},
		{"unknown intent", assistant.ErrUnknownIntent, http.StatusInternalServerError, assistant.MessageFailure},
		{"dispatch not found", errors.Join(assistant.ErrDispatchFailure, task.ErrTaskNotFound), http.StatusUnprocessableEntity, assistant.MessageNotFound},
		{"empty prompt", assistant.ErrEmptyPrompt, http.StatusBadRequest, "Please type a request first."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, got := submit(t, &mockUseCase{err: tt.err}, `{"prompt":"x"}`)
			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			if got["success"] != false || got["message"] != tt.wantMsg {
				t.Errorf("body = %v", got)
			}
		})
	}
}

func TestReset_SessionBusy(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	l := log.NewNop()
	RegisterRoutes(r.Group("/api/v1"), New(l, &mockUseCase{resetErr: assistant.ErrSessionBusy}), middleware.New(l, middleware.Config{}))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/v1/ai/session", nil))
	if w.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", w.Code)
	}
	if !strings.Contains(w.Body.String(), assistant.MessageBusy) {
		t.Errorf("body = %s", w.Body.String())
	}
}
