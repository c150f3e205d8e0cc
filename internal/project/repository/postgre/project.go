package postgre

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"breeze/internal/model"
	repo "breeze/internal/project/repository"
)

const projectColumns = `id, session_id, name, description, status, deleted, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProject(row rowScanner) (model.Project, error) {
	var p model.Project
	var status string
	err := row.Scan(&p.ID, &p.SessionID, &p.Name, &p.Description, &status, &p.Deleted, &p.CreatedAt, &p.UpdatedAt)
	p.Status = model.ProjectStatus(status)
	return p, err
}

// CreateProject inserts a new Project row and returns the created entity.
func (r *implRepository) CreateProject(ctx context.Context, opt repo.CreateProjectOptions) (model.Project, error) {
	query := fmt.Sprintf(`
		INSERT INTO projects (id, session_id, name, description, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING %s`, projectColumns)

	p, err := scanProject(r.db.QueryRowContext(ctx, query,
		r.newID(), opt.SessionID, opt.Name, opt.Description, string(opt.Status),
	))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateProject"), err)
		return model.Project{}, repo.ErrFailedToInsert
	}
	return p, nil
}

// GetOneProject retrieves a single live Project owned by the session.
func (r *implRepository) GetOneProject(ctx context.Context, id, sessionID string) (model.Project, error) {
	query := fmt.Sprintf(`SELECT %s FROM projects WHERE id = $1 AND session_id = $2 AND NOT deleted LIMIT 1`, projectColumns)

	p, err := scanProject(r.db.QueryRowContext(ctx, query, id, sessionID))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Project{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneProject"), err)
		return model.Project{}, repo.ErrFailedToGet
	}
	return p, nil
}

// ListProjects returns every live Project of the session, newest first.
func (r *implRepository) ListProjects(ctx context.Context, sessionID string) ([]model.Project, error) {
	query := fmt.Sprintf(`SELECT %s FROM projects WHERE session_id = $1 AND NOT deleted ORDER BY created_at DESC`, projectColumns)

	rows, err := r.db.QueryContext(ctx, query, sessionID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListProjects"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	projects := make([]model.Project, 0)
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListProjects"), err)
			return nil, repo.ErrFailedToList
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListProjects"), err)
		return nil, repo.ErrFailedToList
	}
	return projects, nil
}

// SoftDeleteProject flags a live Project as deleted and returns it.
func (r *implRepository) SoftDeleteProject(ctx context.Context, id, sessionID string) (model.Project, error) {
	query := fmt.Sprintf(`
		UPDATE projects SET deleted = TRUE, updated_at = NOW()
		WHERE id = $1 AND session_id = $2 AND NOT deleted
		RETURNING %s`, projectColumns)

	p, err := scanProject(r.db.QueryRowContext(ctx, query, id, sessionID))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Project{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("SoftDeleteProject"), err)
		return model.Project{}, repo.ErrFailedToDelete
	}
	return p, nil
}
