package usecase

import (
	"context"
	"fmt"

	"breeze/internal/assistant"
	"breeze/internal/model"
	"breeze/internal/task"
)

// dispatch invokes the task operation for a complete intent. An update only
// writes the fields supplied since the update became pending.
func (uc *implUseCase) dispatch(ctx context.Context, sc model.Scope, outcome assistant.Outcome) (model.Task, error) {
	f, c := outcome.Fields, outcome.Changed

	switch outcome.Intent {
	case assistant.IntentCreate:
		out, err := uc.taskUC.Create(ctx, sc, task.CreateInput{
			ProjectID:   f.ProjectID,
			Title:       f.Title,
			Description: f.Description,
			DueDate:     f.DueDate,
			Priority:    f.Priority,
		})
		return out.Task, err

	case assistant.IntentUpdate:
		out, err := uc.taskUC.Update(ctx, sc, task.UpdateInput{
			ID:          f.TaskID,
			ProjectID:   f.ProjectID,
			Title:       c.Title,
			Description: c.Description,
			DueDate:     c.DueDate,
			Priority:    c.Priority,
		})
		return out.Task, err

	case assistant.IntentDelete:
		out, err := uc.taskUC.Delete(ctx, sc, task.DeleteInput{
			ID:        f.TaskID,
			ProjectID: f.ProjectID,
		})
		return out.Task, err

	default:
		return model.Task{}, fmt.Errorf("%w: %q", assistant.ErrUnknownIntent, outcome.Intent)
	}
}
