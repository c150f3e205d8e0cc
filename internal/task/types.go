package task

import "breeze/internal/model"

// --- UseCase Inputs ---

// CreateInput carries the fields of a new task. DueDate is YYYY-MM-DD.
type CreateInput struct {
	ProjectID   string
	Title       string
	Description string
	DueDate     string
	Priority    string
	Tracked     bool
}

type ListInput struct {
	ProjectID string
	Limit     int
	Offset    int
}

// UpdateInput changes only the non-empty / non-nil fields.
type UpdateInput struct {
	ID          string
	ProjectID   string // optional ownership filter
	Title       string
	Description string
	DueDate     string
	Priority    string
	Completed   *bool
	Tracked     *bool
}

type DeleteInput struct {
	ID        string
	ProjectID string // optional ownership filter
}

// --- UseCase Outputs ---

type CreateOutput struct {
	Task model.Task
}

type ListOutput struct {
	Tasks  []model.Task
	Total  int
	Limit  int
	Offset int
}

type DetailOutput struct {
	Task model.Task
}

type UpdateOutput struct {
	Task model.Task
}

type DeleteOutput struct {
	Task model.Task
}
