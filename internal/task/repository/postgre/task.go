package postgre

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"breeze/internal/model"
	repo "breeze/internal/task/repository"
)

const taskColumns = `id, session_id, project_id, title, description, due_date, priority,
	completed, tracked, deleted, calendar_event_id, created_at, updated_at`

func newUUID() string {
	return uuid.NewString()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (model.Task, error) {
	var t model.Task
	var priority string
	err := row.Scan(
		&t.ID, &t.SessionID, &t.ProjectID, &t.Title, &t.Description, &t.DueDate, &priority,
		&t.Completed, &t.Tracked, &t.Deleted, &t.CalendarEventID, &t.CreatedAt, &t.UpdatedAt,
	)
	t.Priority = model.Priority(priority)
	return t, err
}

// CreateTask inserts a new Task row and returns the created entity.
func (r *implRepository) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (model.Task, error) {
	query := fmt.Sprintf(`
		INSERT INTO tasks (id, session_id, project_id, title, description, due_date, priority, tracked, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING %s`, taskColumns)

	projectID := opt.ProjectID
	if projectID == "" {
		projectID = model.DefaultProjectID
	}

	t, err := scanTask(r.db.QueryRowContext(ctx, query,
		r.newID(), opt.SessionID, projectID, opt.Title, opt.Description, opt.DueDate, string(opt.Priority), opt.Tracked,
	))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTask"), err)
		return model.Task{}, repo.ErrFailedToInsert
	}
	return t, nil
}

// GetOneTask retrieves a single live Task owned by the session.
func (r *implRepository) GetOneTask(ctx context.Context, opt repo.GetOneTaskOptions) (model.Task, error) {
	mods, args := r.buildGetOneQuery(opt)
	query := fmt.Sprintf("SELECT %s FROM tasks WHERE %s LIMIT 1", taskColumns, mods)

	t, err := scanTask(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneTask"), err)
		return model.Task{}, repo.ErrFailedToGet
	}
	return t, nil
}

// ListTasks returns a page of live Tasks and the total count.
func (r *implRepository) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]model.Task, int, error) {
	countMods, countArgs := r.buildCountQuery(opt)
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM tasks WHERE %s", countMods)
	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListTasks"), err)
		return nil, 0, repo.ErrFailedToList
	}

	mods, args := r.buildListQuery(opt)
	query := fmt.Sprintf("SELECT %s FROM tasks %s", taskColumns, mods)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTasks"), err)
		return nil, 0, repo.ErrFailedToList
	}
	defer rows.Close()

	tasks := make([]model.Task, 0)
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListTasks"), err)
			return nil, 0, repo.ErrFailedToList
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListTasks"), err)
		return nil, 0, repo.ErrFailedToList
	}
	return tasks, total, nil
}

// UpdateTask overwrites the mutable columns of a live Task.
func (r *implRepository) UpdateTask(ctx context.Context, opt repo.UpdateTaskOptions) (model.Task, error) {
	query := fmt.Sprintf(`
		UPDATE tasks
		SET title = $1, description = $2, due_date = $3, priority = $4,
		    completed = $5, tracked = $6, updated_at = $7
		WHERE id = $8 AND session_id = $9 AND NOT deleted
		RETURNING %s`, taskColumns)

	t, err := scanTask(r.db.QueryRowContext(ctx, query,
		opt.Title, opt.Description, opt.DueDate, string(opt.Priority),
		opt.Completed, opt.Tracked, time.Now(), opt.ID, opt.SessionID,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateTask"), err)
		return model.Task{}, repo.ErrFailedToUpdate
	}
	return t, nil
}

// SoftDeleteTask flags a live Task as deleted and returns it.
func (r *implRepository) SoftDeleteTask(ctx context.Context, opt repo.GetOneTaskOptions) (model.Task, error) {
	mods, args := r.buildGetOneQuery(opt)
	query := fmt.Sprintf(`UPDATE tasks SET deleted = TRUE, updated_at = NOW() WHERE %s RETURNING %s`, mods, taskColumns)

	t, err := scanTask(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("SoftDeleteTask"), err)
		return model.Task{}, repo.ErrFailedToDelete
	}
	return t, nil
}

// SoftDeleteProjectTasks flags every live Task of a project as deleted.
func (r *implRepository) SoftDeleteProjectTasks(ctx context.Context, sessionID, projectID string) (int, error) {
	const query = `
		UPDATE tasks SET deleted = TRUE, updated_at = NOW()
		WHERE session_id = $1 AND project_id = $2 AND NOT deleted`

	res, err := r.db.ExecContext(ctx, query, sessionID, projectID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("SoftDeleteProjectTasks"), err)
		return 0, repo.ErrFailedToDelete
	}
	n, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "%s RowsAffected: %v", r.dsn("SoftDeleteProjectTasks"), err)
		return 0, repo.ErrFailedToDelete
	}
	return int(n), nil
}

// SetCalendarEventID records the mirrored calendar event of a Task.
func (r *implRepository) SetCalendarEventID(ctx context.Context, id, eventID string) error {
	const query = `UPDATE tasks SET calendar_event_id = $1 WHERE id = $2`
	if _, err := r.db.ExecContext(ctx, query, eventID, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("SetCalendarEventID"), err)
		return repo.ErrFailedToUpdate
	}
	return nil
}
