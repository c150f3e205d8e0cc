package usecase

import (
	"context"
	"strings"

	"breeze/internal/model"
	"breeze/internal/note"
	repo "breeze/internal/note/repository"
)

func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input note.CreateInput) (note.CreateOutput, error) {
	if sc.SessionID == "" {
		return note.CreateOutput{}, note.ErrSessionRequired
	}
	if strings.TrimSpace(input.Title) == "" {
		return note.CreateOutput{}, note.ErrTitleRequired
	}
	if strings.TrimSpace(input.Content) == "" {
		return note.CreateOutput{}, note.ErrContentRequired
	}

	n, err := uc.repo.CreateNote(ctx, repo.CreateNoteOptions{
		SessionID: sc.SessionID,
		Title:     input.Title,
		Content:   input.Content,
	})
	if err != nil {
		uc.l.Errorf(ctx, "note.usecase.Create CreateNote: %v", err)
		return note.CreateOutput{}, err
	}
	return note.CreateOutput{Note: n}, nil
}

func (uc *implUseCase) List(ctx context.Context, sc model.Scope) (note.ListOutput, error) {
	if sc.SessionID == "" {
		return note.ListOutput{}, note.ErrSessionRequired
	}

	ns, err := uc.repo.ListNotes(ctx, sc.SessionID)
	if err != nil {
		uc.l.Errorf(ctx, "note.usecase.List ListNotes: %v", err)
		return note.ListOutput{}, err
	}
	return note.ListOutput{Notes: ns}, nil
}

// Update changes the title and/or content of a note. Blank fields keep their value.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input note.UpdateInput) (note.UpdateOutput, error) {
	if sc.SessionID == "" {
		return note.UpdateOutput{}, note.ErrSessionRequired
	}
	title, content := strings.TrimSpace(input.Title), strings.TrimSpace(input.Content)
	if title == "" && content == "" {
		return note.UpdateOutput{}, note.ErrNothingToUpdate
	}

	opt := repo.UpdateNoteOptions{ID: input.ID, SessionID: sc.SessionID}
	if title != "" {
		opt.Title = input.Title
	}
	if content != "" {
		opt.Content = input.Content
	}

	n, err := uc.repo.UpdateNote(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "note.usecase.Update UpdateNote: %v", err)
		return note.UpdateOutput{}, err
	}
	if n.ID == "" {
		return note.UpdateOutput{}, note.ErrNoteNotFound
	}
	return note.UpdateOutput{Note: n}, nil
}

// Delete soft-deletes a note. Returns ErrNoteNotFound when not found.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) (note.DeleteOutput, error) {
	if sc.SessionID == "" {
		return note.DeleteOutput{}, note.ErrSessionRequired
	}

	n, err := uc.repo.SoftDeleteNote(ctx, id, sc.SessionID)
	if err != nil {
		uc.l.Errorf(ctx, "note.usecase.Delete SoftDeleteNote: %v", err)
		return note.DeleteOutput{}, err
	}
	if n.ID == "" {
		return note.DeleteOutput{}, note.ErrNoteNotFound
	}
	return note.DeleteOutput{Note: n}, nil
}
