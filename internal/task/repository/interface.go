package repository

import (
	"context"

	"breeze/internal/model"
)

// Repository is the data store for tasks.
// Soft-deleted rows are invisible to every read.
type Repository interface {
	CreateTask(ctx context.Context, opt CreateTaskOptions) (model.Task, error)
	// GetOneTask returns a zero-value Task (ID == "") when nothing matches.
	GetOneTask(ctx context.Context, opt GetOneTaskOptions) (model.Task, error)
	ListTasks(ctx context.Context, opt ListTasksOptions) ([]model.Task, int, error)
	// UpdateTask returns a zero-value Task when nothing matches.
	UpdateTask(ctx context.Context, opt UpdateTaskOptions) (model.Task, error)
	// SoftDeleteTask returns a zero-value Task when nothing matches.
	SoftDeleteTask(ctx context.Context, opt GetOneTaskOptions) (model.Task, error)
	SoftDeleteProjectTasks(ctx context.Context, sessionID, projectID string) (int, error)
	SetCalendarEventID(ctx context.Context, id, eventID string) error
}
