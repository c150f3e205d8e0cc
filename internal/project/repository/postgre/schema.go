package postgre

import (
	"context"
	"database/sql"
	"fmt"
)

const schema = `
CREATE TABLE IF NOT EXISTS projects (
	id          TEXT PRIMARY KEY,
	session_id  TEXT NOT NULL,
	name        TEXT NOT NULL,
	description TEXT NOT NULL,
	status      TEXT NOT NULL CHECK (status IN ('Active', 'Completed', 'On Hold')),
	deleted     BOOLEAN NOT NULL DEFAULT FALSE,
	created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_projects_session ON projects (session_id) WHERE NOT deleted;
`

// EnsureSchema creates the projects table and its index if they do not exist.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("project/repository/postgre: ensure schema: %w", err)
	}
	return nil
}
