package postgre

import (
	"context"
	"database/sql"
	"fmt"
)

const schema = `
CREATE TABLE IF NOT EXISTS notes (
	id         TEXT PRIMARY KEY,
	session_id TEXT NOT NULL,
	title      TEXT NOT NULL,
	content    TEXT NOT NULL,
	deleted    BOOLEAN NOT NULL DEFAULT FALSE,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_notes_session ON notes (session_id) WHERE NOT deleted;
`

// EnsureSchema creates the notes table and its index if they do not exist.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("note/repository/postgre: ensure schema: %w", err)
	}
	return nil
}
