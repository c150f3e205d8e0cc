package postgre

import (
	"fmt"
	"strings"

	repo "breeze/internal/task/repository"
)

var allowedOrderBy = map[string]bool{
	"created_at DESC": true,
	"created_at ASC":  true,
	"due_date ASC":    true,
	"due_date DESC":   true,
}

// buildGetOneQuery builds WHERE clause + args for a single live Task.
func (r *implRepository) buildGetOneQuery(opt repo.GetOneTaskOptions) (string, []any) {
	conditions := []string{"id = $1", "session_id = $2", "NOT deleted"}
	args := []any{opt.ID, opt.SessionID}

	if opt.ProjectID != "" {
		conditions = append(conditions, "project_id = $3")
		args = append(args, opt.ProjectID)
	}
	return strings.Join(conditions, " AND "), args
}

// buildCountQuery builds WHERE clause + args for counting Tasks (no pagination).
func (r *implRepository) buildCountQuery(opt repo.ListTasksOptions) (string, []any) {
	conditions, args := r.listConditions(opt)
	return strings.Join(conditions, " AND "), args
}

// buildListQuery builds the full WHERE + ORDER + LIMIT + OFFSET clause for ListTasks.
func (r *implRepository) buildListQuery(opt repo.ListTasksOptions) (string, []any) {
	conditions, args := r.listConditions(opt)
	idx := len(args) + 1

	parts := []string{"WHERE " + strings.Join(conditions, " AND ")}

	orderBy := opt.OrderBy
	if !allowedOrderBy[orderBy] {
		orderBy = "created_at DESC"
	}
	parts = append(parts, fmt.Sprintf("ORDER BY %s", orderBy))

	if opt.Limit > 0 {
		parts = append(parts, fmt.Sprintf("LIMIT $%d", idx))
		args = append(args, opt.Limit)
		idx++
	}
	if opt.Offset > 0 {
		parts = append(parts, fmt.Sprintf("OFFSET $%d", idx))
		args = append(args, opt.Offset)
	}

	return strings.Join(parts, " "), args
}

func (r *implRepository) listConditions(opt repo.ListTasksOptions) ([]string, []any) {
	conditions := []string{"session_id = $1", "NOT deleted"}
	args := []any{opt.SessionID}

	if opt.ProjectID != "" {
		conditions = append(conditions, "project_id = $2")
		args = append(args, opt.ProjectID)
	}
	return conditions, args
}
