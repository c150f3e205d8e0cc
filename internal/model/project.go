package model

import "time"

// ProjectStatus is the lifecycle state of a project.
type ProjectStatus string

const (
	ProjectActive    ProjectStatus = "Active"
	ProjectCompleted ProjectStatus = "Completed"
	ProjectOnHold    ProjectStatus = "On Hold"
)

// IsValid reports whether s is Active, Completed or On Hold (case-sensitive).
func (s ProjectStatus) IsValid() bool {
	switch s {
	case ProjectActive, ProjectCompleted, ProjectOnHold:
		return true
	}
	return false
}

// Project groups tasks of one session.
type Project struct {
	ID          string
	SessionID   string
	Name        string
	Description string
	Status      ProjectStatus
	Deleted     bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
