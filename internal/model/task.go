package model

import "time"

// Priority is the urgency of a task.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// IsValid reports whether p is one of high, medium or low (case-sensitive).
func (p Priority) IsValid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// DefaultProjectID is assigned to tasks created without a project.
const DefaultProjectID = "default_project_id"

// Task is a to-do item owned by an anonymous browser session.
type Task struct {
	ID              string
	SessionID       string
	ProjectID       string
	Title           string
	Description     string
	DueDate         time.Time
	Priority        Priority
	Completed       bool
	Tracked         bool
	Deleted         bool
	CalendarEventID string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
