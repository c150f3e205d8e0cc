package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrTaskNotFound      = errors.New("task not found")
	ErrSessionRequired   = errors.New("session id is required")
	ErrTitleRequired     = errors.New("title is required")
	ErrDescriptionNeeded = errors.New("description is required")
	ErrInvalidPriority   = errors.New("priority must be one of high, medium, low")
	ErrInvalidDueDate    = errors.New("dueDate must be a YYYY-MM-DD calendar date")
	ErrNothingToUpdate   = errors.New("no update fields provided")
	ErrProjectRequired   = errors.New("projectId is required")
)
