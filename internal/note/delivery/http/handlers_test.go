package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"breeze/internal/middleware"
	"breeze/internal/model"
	"breeze/internal/note"
	"breeze/pkg/log"
)

type mockUseCase struct {
	note.UseCase
	updateIn  note.UpdateInput
	updateErr error
}

func (m *mockUseCase) Update(ctx context.Context, sc model.Scope, in note.UpdateInput) (note.UpdateOutput, error) {
	m.updateIn = in
	if m.updateErr != nil {
		return note.UpdateOutput{}, m.updateErr
	}
	return note.UpdateOutput{Note: model.Note{ID: in.ID, Title: in.Title}}, nil
}

func setup(uc note.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	l := log.NewNop()
	RegisterRoutes(r.Group("/api/v1"), New(l, uc), middleware.New(l, middleware.Config{}))
	return r
}

func TestUpdateHandler(t *testing.T) {
	uc := &mockUseCase{}
	r := setup(uc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/api/v1/notes/n1", strings.NewReader(`{"title":"Renamed"}`)))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if uc.updateIn.ID != "n1" || uc.updateIn.Title != "Renamed" || uc.updateIn.Content != "" {
		t.Errorf("input = %+v", uc.updateIn)
	}
}

func TestUpdateHandler_ErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"missing note", note.ErrNoteNotFound, http.StatusNotFound},
		{"nothing to change", note.ErrNothingToUpdate, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := setup(&mockUseCase{updateErr: tt.err})
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/api/v1/notes/n1", strings.NewReader(`{}`)))
			if w.Code != tt.want {
				t.Errorf("status = %d, want %d", w.Code, tt.want)
			}
		})
	}
}

func TestCreateHandler_MissingContent(t *testing.T) {
	r := setup(&mockUseCase{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/notes", strings.NewReader(`{"title":"x"}`)))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}
