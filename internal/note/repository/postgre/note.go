package postgre

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"breeze/internal/model"
	repo "breeze/internal/note/repository"
)

const noteColumns = `id, session_id, title, content, deleted, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanNote(row rowScanner) (model.Note, error) {
	var n model.Note
	err := row.Scan(&n.ID, &n.SessionID, &n.Title, &n.Content, &n.Deleted, &n.CreatedAt, &n.UpdatedAt)
	return n, err
}

// CreateNote inserts a new Note row and returns the created entity.
func (r *implRepository) CreateNote(ctx context.Context, opt repo.CreateNoteOptions) (model.Note, error) {
	query := fmt.Sprintf(`
		INSERT INTO notes (id, session_id, title, content, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING %s`, noteColumns)

	n, err := scanNote(r.db.QueryRowContext(ctx, query, r.newID(), opt.SessionID, opt.Title, opt.Content))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateNote"), err)
		return model.Note{}, repo.ErrFailedToInsert
	}
	return n, nil
}

// ListNotes returns every live Note of the session, most recently edited first.
func (r *implRepository) ListNotes(ctx context.Context, sessionID string) ([]model.Note, error) {
	query := fmt.Sprintf(`SELECT %s FROM notes WHERE session_id = $1 AND NOT deleted ORDER BY updated_at DESC`, noteColumns)

	rows, err := r.db.QueryContext(ctx, query, sessionID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListNotes"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	notes := make([]model.Note, 0)
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListNotes"), err)
			return nil, repo.ErrFailedToList
		}
		notes = append(notes, n)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListNotes"), err)
		return nil, repo.ErrFailedToList
	}
	return notes, nil
}

// UpdateNote overwrites the non-empty fields of a live Note.
func (r *implRepository) UpdateNote(ctx context.Context, opt repo.UpdateNoteOptions) (model.Note, error) {
	query := fmt.Sprintf(`
		UPDATE notes
		SET title = COALESCE(NULLIF($1, ''), title),
		    content = COALESCE(NULLIF($2, ''), content),
		    updated_at = NOW()
		WHERE id = $3 AND session_id = $4 AND NOT deleted
		RETURNING %s`, noteColumns)

	n, err := scanNote(r.db.QueryRowContext(ctx, query, opt.Title, opt.Content, opt.ID, opt.SessionID))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Note{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateNote"), err)
		return model.Note{}, repo.ErrFailedToUpdate
	}
	return n, nil
}

// SoftDeleteNote flags a live Note as deleted and returns it.
func (r *implRepository) SoftDeleteNote(ctx context.Context, id, sessionID string) (model.Note, error) {
	query := fmt.Sprintf(`
		UPDATE notes SET deleted = TRUE, updated_at = NOW()
		WHERE id = $1 AND session_id = $2 AND NOT deleted
		RETURNING %s`, noteColumns)

	n, err := scanNote(r.db.QueryRowContext(ctx, query, id, sessionID))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Note{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("SoftDeleteNote"), err)
		return model.Note{}, repo.ErrFailedToDelete
	}
	return n, nil
}
