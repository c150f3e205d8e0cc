package usecase

import (
	"context"
	"errors"
	"testing"

	"breeze/internal/model"
	"breeze/internal/note"
	repo "breeze/internal/note/repository"
	"breeze/pkg/log"
)

type mockRepo struct {
	notes      map[string]model.Note
	lastUpdate repo.UpdateNoteOptions
}

func newMockRepo() *mockRepo {
	return &mockRepo{notes: map[string]model.Note{}}
}

func (m *mockRepo) CreateNote(ctx context.Context, opt repo.CreateNoteOptions) (model.Note, error) {
	n := model.Note{ID: "n1", SessionID: opt.SessionID, Title: opt.Title, Content: opt.Content}
	m.notes[n.ID] = n
	return n, nil
}

func (m *mockRepo) ListNotes(ctx context.Context, sessionID string) ([]model.Note, error) {
	var out []model.Note
	for _, n := range m.notes {
		if n.SessionID == sessionID && !n.Deleted {
			out = append(out, n)
		}
	}
	return out, nil
}

func (m *mockRepo) UpdateNote(ctx context.Context, opt repo.UpdateNoteOptions) (model.Note, error) {
	m.lastUpdate = opt
	n, ok := m.notes[opt.ID]
	if !ok || n.SessionID != opt.SessionID || n.Deleted {
		return model.Note{}, nil
	}
	if opt.Title != "" {
		n.Title = opt.Title
	}
	if opt.Content != "" {
		n.Content = opt.Content
	}
	m.notes[n.ID] = n
	return n, nil
}

func (m *mockRepo) SoftDeleteNote(ctx context.Context, id, sessionID string) (model.Note, error) {
	n, ok := m.notes[id]
	if !ok || n.SessionID != sessionID || n.Deleted {
		return model.Note{}, nil
	}
	n.Deleted = true
	m.notes[id] = n
	return n, nil
}

var sc = model.NewScope("s1")

func TestCreate(t *testing.T) {
	uc := New(newMockRepo(), log.NewNop())

	out, err := uc.Create(context.Background(), sc, note.CreateInput{Title: "Groceries", Content: "milk"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if out.Note.SessionID != "s1" || out.Note.Content != "milk" {
		t.Errorf("note = %+v", out.Note)
	}
}

func TestCreate_Validation(t *testing.T) {
	uc := New(newMockRepo(), log.NewNop())

	if _, err := uc.Create(context.Background(), model.Scope{}, note.CreateInput{Title: "a", Content: "b"}); !errors.Is(err, note.ErrSessionRequired) {
		t.Errorf("no session: err = %v", err)
	}
	if _, err := uc.Create(context.Background(), sc, note.CreateInput{Title: " ", Content: "b"}); !errors.Is(err, note.ErrTitleRequired) {
		t.Errorf("blank title: err = %v", err)
	}
	if _, err := uc.Create(context.Background(), sc, note.CreateInput{Title: "a"}); !errors.Is(err, note.ErrContentRequired) {
		t.Errorf("no content: err = %v", err)
	}
}

func TestUpdate_PartialKeepsContent(t *testing.T) {
	r := newMockRepo()
	r.notes["n1"] = model.Note{ID: "n1", SessionID: "s1", Title: "old", Content: "keep me"}
	uc := New(r, log.NewNop())

	out, err := uc.Update(context.Background(), sc, note.UpdateInput{ID: "n1", Title: "new", Content: "   "})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if out.Note.Title != "new" || out.Note.Content != "keep me" {
		t.Errorf("note = %+v", out.Note)
	}
	if r.lastUpdate.Content != "" {
		t.Errorf("blank content should not be sent: %+v", r.lastUpdate)
	}
}

func TestUpdate_Errors(t *testing.T) {
	r := newMockRepo()
	r.notes["n1"] = model.Note{ID: "n1", SessionID: "other", Title: "x", Content: "y"}
	uc := New(r, log.NewNop())

	if _, err := uc.Update(context.Background(), sc, note.UpdateInput{ID: "n1"}); !errors.Is(err, note.ErrNothingToUpdate) {
		t.Errorf("empty update: err = %v", err)
	}
	if _, err := uc.Update(context.Background(), sc, note.UpdateInput{ID: "n1", Title: "mine"}); !errors.Is(err, note.ErrNoteNotFound) {
		t.Errorf("foreign note: err = %v", err)
	}
}

func TestDelete(t *testing.T) {
	r := newMockRepo()
	r.notes["n1"] = model.Note{ID: "n1", SessionID: "s1"}
	uc := New(r, log.NewNop())

	if _, err := uc.Delete(context.Background(), sc, "n1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	list, _ := uc.List(context.Background(), sc)
	if len(list.Notes) != 0 {
		t.Errorf("deleted note still listed: %+v", list.Notes)
	}
	if _, err := uc.Delete(context.Background(), sc, "n1"); !errors.Is(err, note.ErrNoteNotFound) {
		t.Errorf("second delete: err = %v", err)
	}
}
