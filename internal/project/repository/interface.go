package repository

import (
	"context"

	"breeze/internal/model"
)

// Repository is the data store for projects. Soft-deleted rows are invisible to every read.
type Repository interface {
	CreateProject(ctx context.Context, opt CreateProjectOptions) (model.Project, error)
	// GetOneProject returns a zero-value Project (ID == "") when nothing matches.
	GetOneProject(ctx context.Context, id, sessionID string) (model.Project, error)
	ListProjects(ctx context.Context, sessionID string) ([]model.Project, error)
	// SoftDeleteProject returns a zero-value Project when nothing matches.
	SoftDeleteProject(ctx context.Context, id, sessionID string) (model.Project, error)
}

type CreateProjectOptions struct {
	SessionID   string
	Name        string
	Description string
	Status      model.ProjectStatus
}
