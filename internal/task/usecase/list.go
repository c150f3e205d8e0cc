package usecase

import (
	"context"

	"breeze/internal/model"
	"breeze/internal/task"
	repo "breeze/internal/task/repository"
)

// List returns a page of the session's live tasks, optionally narrowed to one project.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input task.ListInput) (task.ListOutput, error) {
	if sc.SessionID == "" {
		return task.ListOutput{}, task.ErrSessionRequired
	}

	tasks, total, err := uc.repo.ListTasks(ctx, repo.ListTasksOptions{
		SessionID: sc.SessionID,
		ProjectID: input.ProjectID,
		Limit:     input.Limit,
		Offset:    input.Offset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.List ListTasks: %v", err)
		return task.ListOutput{}, err
	}

	return task.ListOutput{
		Tasks:  tasks,
		Total:  total,
		Limit:  input.Limit,
		Offset: input.Offset,
	}, nil
}
