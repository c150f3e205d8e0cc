package usecase

import (
	"context"

	"breeze/internal/task"
	"breeze/internal/task/repository"
	"breeze/pkg/gcalendar"
	"breeze/pkg/log"
)

// CalendarClient is the subset of the Google Calendar client used to mirror tasks.
type CalendarClient interface {
	InsertDayEvent(ctx context.Context, ev gcalendar.DayEvent) (gcalendar.Event, error)
	PatchDayEvent(ctx context.Context, eventID string, ev gcalendar.DayEvent) (gcalendar.Event, error)
	DeleteEvent(ctx context.Context, calendarID, eventID string) error
}

// CalendarMirror configures the optional all-day calendar copy of tasks.
type CalendarMirror struct {
	Client     CalendarClient
	CalendarID string
	Timezone   string
}

// implUseCase is the private implementation of task.UseCase.
type implUseCase struct {
	repo     repository.Repository
	l        log.Logger
	calendar *CalendarMirror
}

// New creates a new task UseCase. calendar may be nil.
func New(repo repository.Repository, l log.Logger, calendar *CalendarMirror) task.UseCase {
	if calendar != nil && calendar.Client == nil {
		calendar = nil
	}
	return &implUseCase{
		repo:     repo,
		l:        l,
		calendar: calendar,
	}
}
