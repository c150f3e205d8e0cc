package usecase

import (
	"context"
	"strings"

	"breeze/internal/model"
	"breeze/internal/project"
	repo "breeze/internal/project/repository"
)

// Create validates and stores a new project.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input project.CreateInput) (project.CreateOutput, error) {
	if sc.SessionID == "" {
		return project.CreateOutput{}, project.ErrSessionRequired
	}
	if strings.TrimSpace(input.Name) == "" {
		return project.CreateOutput{}, project.ErrNameRequired
	}
	if strings.TrimSpace(input.Description) == "" {
		return project.CreateOutput{}, project.ErrDescriptionNeeded
	}
	status := model.ProjectStatus(input.Status)
	if !status.IsValid() {
		return project.CreateOutput{}, project.ErrInvalidStatus
	}

	p, err := uc.repo.CreateProject(ctx, repo.CreateProjectOptions{
		SessionID:   sc.SessionID,
		Name:        input.Name,
		Description: input.Description,
		Status:      status,
	})
	if err != nil {
		uc.l.Errorf(ctx, "project.usecase.Create CreateProject: %v", err)
		return project.CreateOutput{}, err
	}
	return project.CreateOutput{Project: p}, nil
}

// List returns every live project of the session.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope) (project.ListOutput, error) {
	if sc.SessionID == "" {
		return project.ListOutput{}, project.ErrSessionRequired
	}

	ps, err := uc.repo.ListProjects(ctx, sc.SessionID)
	if err != nil {
		uc.l.Errorf(ctx, "project.usecase.List ListProjects: %v", err)
		return project.ListOutput{}, err
	}
	return project.ListOutput{Projects: ps}, nil
}

// Detail retrieves a single project. Returns ErrProjectNotFound when not found.
func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id string) (project.DetailOutput, error) {
	if sc.SessionID == "" {
		return project.DetailOutput{}, project.ErrSessionRequired
	}

	p, err := uc.repo.GetOneProject(ctx, id, sc.SessionID)
	if err != nil {
		uc.l.Errorf(ctx, "project.usecase.Detail GetOneProject: %v", err)
		return project.DetailOutput{}, err
	}
	if p.ID == "" {
		return project.DetailOutput{}, project.ErrProjectNotFound
	}
	return project.DetailOutput{Project: p}, nil
}

// Delete soft-deletes a project, then its tasks. The project stays deleted even if
// the task cascade fails; the failure is returned so the caller can retry it.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) (project.DeleteOutput, error) {
	if sc.SessionID == "" {
		return project.DeleteOutput{}, project.ErrSessionRequired
	}

	p, err := uc.repo.SoftDeleteProject(ctx, id, sc.SessionID)
	if err != nil {
		uc.l.Errorf(ctx, "project.usecase.Delete SoftDeleteProject: %v", err)
		return project.DeleteOutput{}, err
	}
	if p.ID == "" {
		return project.DeleteOutput{}, project.ErrProjectNotFound
	}

	n, err := uc.taskUC.DeleteByProject(ctx, sc, p.ID)
	if err != nil {
		uc.l.Errorf(ctx, "project.usecase.Delete DeleteByProject %s: %v", p.ID, err)
		return project.DeleteOutput{Project: p}, err
	}
	return project.DeleteOutput{Project: p, TasksDeleted: n}, nil
}
