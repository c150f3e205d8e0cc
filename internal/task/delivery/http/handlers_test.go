package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"breeze/internal/middleware"
	"breeze/internal/model"
	"breeze/internal/task"
	"breeze/pkg/log"
)

type mockUseCase struct {
	task.UseCase
	createIn  task.CreateInput
	createErr error
	detailErr error
	scope     model.Scope
}

func (m *mockUseCase) Create(ctx context.Context, sc model.Scope, in task.CreateInput) (task.CreateOutput, error) {
	m.scope, m.createIn = sc, in
	if m.createErr != nil {
		return task.CreateOutput{}, m.createErr
	}
	return task.CreateOutput{Task: model.Task{
		ID:       "t1",
		Title:    in.Title,
		DueDate:  time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		Priority: model.Priority(in.Priority),
	}}, nil
}

func (m *mockUseCase) Detail(ctx context.Context, sc model.Scope, id string) (task.DetailOutput, error) {
	return task.DetailOutput{}, m.detailErr
}

func setup(uc task.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	l := log.NewNop()
	RegisterRoutes(r.Group("/api/v1"), New(l, uc), middleware.New(l, middleware.Config{}))
	return r
}

func TestCreateHandler(t *testing.T) {
	uc := &mockUseCase{}
	r := setup(uc)

	body := `{"title":"Write report","description":"Q1","dueDate":"2025-03-01","priority":"high"}`
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/tasks", strings.NewReader(body)))

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if uc.scope.SessionID == "" {
		t.Error("use case should receive the cookie session")
	}

	var resp struct {
		Data taskItemResp `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Data.Task.DueDate.String() != "2025-03-01" || resp.Data.Task.Priority != "high" {
		t.Errorf("unexpected task: %+v", resp.Data.Task)
	}
}

func TestCreateHandler_BadBody(t *testing.T) {
	r := setup(&mockUseCase{})

	body := `{"title":"x","description":"y","dueDate":"2025-03-01","priority":"urgent"}`
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/tasks", strings.NewReader(body)))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestDetailHandler_NotFound(t *testing.T) {
	r := setup(&mockUseCase{detailErr: task.ErrTaskNotFound})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/tasks/abc", nil))

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestMapError_Unknown(t *testing.T) {
	h := New(log.NewNop(), &mockUseCase{})
	err := h.mapError(context.DeadlineExceeded)
	if !strings.Contains(err.Error(), "Internal Server Error") {
		t.Errorf("unexpected mapping: %v", err)
	}
}
