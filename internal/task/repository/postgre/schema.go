package postgre

import (
	"context"
	"database/sql"
	"fmt"
)

const schema = `
CREATE TABLE IF NOT EXISTS tasks (
	id                TEXT PRIMARY KEY,
	session_id        TEXT NOT NULL,
	project_id        TEXT NOT NULL DEFAULT 'default_project_id',
	title             TEXT NOT NULL,
	description       TEXT NOT NULL,
	due_date          DATE NOT NULL,
	priority          TEXT NOT NULL CHECK (priority IN ('high', 'medium', 'low')),
	completed         BOOLEAN NOT NULL DEFAULT FALSE,
	tracked           BOOLEAN NOT NULL DEFAULT FALSE,
	deleted           BOOLEAN NOT NULL DEFAULT FALSE,
	calendar_event_id TEXT NOT NULL DEFAULT '',
	created_at        TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at        TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_tasks_session_project ON tasks (session_id, project_id) WHERE NOT deleted;
`

// EnsureSchema creates the tasks table and its index if they do not exist.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("task/repository/postgre: ensure schema: %w", err)
	}
	return nil
}
