package repository

import (
	"time"

	"breeze/internal/model"
)

// CreateTaskOptions holds parameters for inserting a new Task.
type CreateTaskOptions struct {
	SessionID   string
	ProjectID   string
	Title       string
	Description string
	DueDate     time.Time
	Priority    model.Priority
	Tracked     bool
}

// GetOneTaskOptions identifies a single Task.
// ID and SessionID are always applied; ProjectID only when non-empty.
type GetOneTaskOptions struct {
	ID        string
	SessionID string
	ProjectID string
}

// ListTasksOptions holds filter and pagination parameters for listing Tasks.
type ListTasksOptions struct {
	SessionID string
	ProjectID string
	Limit     int
	Offset    int
	OrderBy   string
}

// UpdateTaskOptions carries the full new state of a Task.
type UpdateTaskOptions struct {
	ID          string
	SessionID   string
	Title       string
	Description string
	DueDate     time.Time
	Priority    model.Priority
	Completed   bool
	Tracked     bool
}
