package usecase

import (
	"context"

	"breeze/internal/model"
	"breeze/internal/task"
	repo "breeze/internal/task/repository"
)

// Create validates and stores a new task, then mirrors it to the calendar when configured.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input task.CreateInput) (task.CreateOutput, error) {
	if sc.SessionID == "" {
		return task.CreateOutput{}, task.ErrSessionRequired
	}

	due, priority, err := validateCreate(input)
	if err != nil {
		return task.CreateOutput{}, err
	}

	t, err := uc.repo.CreateTask(ctx, repo.CreateTaskOptions{
		SessionID:   sc.SessionID,
		ProjectID:   input.ProjectID,
		Title:       input.Title,
		Description: input.Description,
		DueDate:     due,
		Priority:    priority,
		Tracked:     input.Tracked,
	})
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.Create CreateTask: %v", err)
		return task.CreateOutput{}, err
	}

	if eventID := uc.mirrorToCalendar(ctx, t); eventID != "" {
		t.CalendarEventID = eventID
	}

	return task.CreateOutput{Task: t}, nil
}

// mirrorToCalendar creates an all-day event for t. Failures are logged, never returned.
func (uc *implUseCase) mirrorToCalendar(ctx context.Context, t model.Task) string {
	if uc.calendar == nil {
		return ""
	}

	event, err := uc.calendar.Client.InsertDayEvent(ctx, uc.calendar.dayEvent(t))
	if err != nil {
		uc.l.Warnf(ctx, "task.usecase.Create calendar mirror for %s: %v", t.ID, err)
		return ""
	}

	if err := uc.repo.SetCalendarEventID(ctx, t.ID, event.ID); err != nil {
		uc.l.Warnf(ctx, "task.usecase.Create SetCalendarEventID: %v", err)
	}
	return event.ID
}

// syncCalendar keeps an already mirrored event in line with t.
func (uc *implUseCase) syncCalendar(ctx context.Context, t model.Task) {
	if uc.calendar == nil || t.CalendarEventID == "" {
		return
	}
	if _, err := uc.calendar.Client.PatchDayEvent(ctx, t.CalendarEventID, uc.calendar.dayEvent(t)); err != nil {
		uc.l.Warnf(ctx, "task.usecase.Update calendar event %s: %v", t.CalendarEventID, err)
	}
}
