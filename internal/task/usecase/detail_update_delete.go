package usecase

import (
	"context"

	"breeze/internal/model"
	"breeze/internal/task"
	repo "breeze/internal/task/repository"
)

// Detail retrieves a single task. Returns ErrTaskNotFound when not found.
func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id string) (task.DetailOutput, error) {
	if sc.SessionID == "" {
		return task.DetailOutput{}, task.ErrSessionRequired
	}

	t, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{ID: id, SessionID: sc.SessionID})
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.Detail GetOneTask: %v", err)
		return task.DetailOutput{}, err
	}
	if t.ID == "" {
		return task.DetailOutput{}, task.ErrTaskNotFound
	}
	return task.DetailOutput{Task: t}, nil
}

// Update changes the provided fields of an existing task. Returns ErrTaskNotFound when not found.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input task.UpdateInput) (task.UpdateOutput, error) {
	if sc.SessionID == "" {
		return task.UpdateOutput{}, task.ErrSessionRequired
	}
	if !hasChanges(input) {
		return task.UpdateOutput{}, task.ErrNothingToUpdate
	}

	existing, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{
		ID:        input.ID,
		SessionID: sc.SessionID,
		ProjectID: input.ProjectID,
	})
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.Update GetOneTask: %v", err)
		return task.UpdateOutput{}, err
	}
	if existing.ID == "" {
		return task.UpdateOutput{}, task.ErrTaskNotFound
	}

	due := existing.DueDate
	if input.DueDate != "" {
		if due, err = parseDueDate(input.DueDate); err != nil {
			return task.UpdateOutput{}, err
		}
	}
	priority := existing.Priority
	if input.Priority != "" {
		if priority, err = parsePriority(input.Priority); err != nil {
			return task.UpdateOutput{}, err
		}
	}

	t, err := uc.repo.UpdateTask(ctx, repo.UpdateTaskOptions{
		ID:          existing.ID,
		SessionID:   sc.SessionID,
		Title:       uc.coalesce(input.Title, existing.Title),
		Description: uc.coalesce(input.Description, existing.Description),
		DueDate:     due,
		Priority:    priority,
		Completed:   boolOr(input.Completed, existing.Completed),
		Tracked:     boolOr(input.Tracked, existing.Tracked),
	})
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.Update UpdateTask: %v", err)
		return task.UpdateOutput{}, err
	}
	if t.ID == "" {
		return task.UpdateOutput{}, task.ErrTaskNotFound
	}
	if t.Title != existing.Title || t.Description != existing.Description || !t.DueDate.Equal(existing.DueDate) {
		uc.syncCalendar(ctx, t)
	}
	return task.UpdateOutput{Task: t}, nil
}

// Delete soft-deletes a task. Returns ErrTaskNotFound when not found.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, input task.DeleteInput) (task.DeleteOutput, error) {
	if sc.SessionID == "" {
		return task.DeleteOutput{}, task.ErrSessionRequired
	}

	t, err := uc.repo.SoftDeleteTask(ctx, repo.GetOneTaskOptions{
		ID:        input.ID,
		SessionID: sc.SessionID,
		ProjectID: input.ProjectID,
	})
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.Delete SoftDeleteTask: %v", err)
		return task.DeleteOutput{}, err
	}
	if t.ID == "" {
		return task.DeleteOutput{}, task.ErrTaskNotFound
	}

	if uc.calendar != nil && t.CalendarEventID != "" {
		if err := uc.calendar.Client.DeleteEvent(ctx, uc.calendar.CalendarID, t.CalendarEventID); err != nil {
			uc.l.Warnf(ctx, "task.usecase.Delete calendar event %s: %v", t.CalendarEventID, err)
		}
	}
	return task.DeleteOutput{Task: t}, nil
}

// DeleteByProject soft-deletes every live task of a project and returns how many were affected.
func (uc *implUseCase) DeleteByProject(ctx context.Context, sc model.Scope, projectID string) (int, error) {
	if sc.SessionID == "" {
		return 0, task.ErrSessionRequired
	}
	if projectID == "" {
		return 0, task.ErrProjectRequired
	}

	n, err := uc.repo.SoftDeleteProjectTasks(ctx, sc.SessionID, projectID)
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.DeleteByProject: %v", err)
		return 0, err
	}
	return n, nil
}
