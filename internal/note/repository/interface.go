package repository

import (
	"context"

	"breeze/internal/model"
)

// Repository is the data store for notes. Soft-deleted rows are invisible to every read.
type Repository interface {
	CreateNote(ctx context.Context, opt CreateNoteOptions) (model.Note, error)
	ListNotes(ctx context.Context, sessionID string) ([]model.Note, error)
	// UpdateNote returns a zero-value Note (ID == "") when nothing matches.
	UpdateNote(ctx context.Context, opt UpdateNoteOptions) (model.Note, error)
	// SoftDeleteNote returns a zero-value Note when nothing matches.
	SoftDeleteNote(ctx context.Context, id, sessionID string) (model.Note, error)
}

type CreateNoteOptions struct {
	SessionID string
	Title     string
	Content   string
}

// UpdateNoteOptions leaves a column untouched when its field is empty.
type UpdateNoteOptions struct {
	ID        string
	SessionID string
	Title     string
	Content   string
}
