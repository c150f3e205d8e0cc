package usecase

import (
	"context"

	"breeze/internal/model"
	"breeze/pkg/gcalendar"
	"breeze/pkg/log"
)

// CalendarConfig selects the optional Google Calendar mirror.
type CalendarConfig struct {
	Enabled         bool
	CredentialsPath string
	CalendarID      string
	Timezone        string
}

// NewCalendarMirror connects to Google Calendar. It returns nil when the mirror
// is disabled or the client cannot be built; task writes never depend on it.
func NewCalendarMirror(ctx context.Context, l log.Logger, cfg CalendarConfig) *CalendarMirror {
	if !cfg.Enabled || cfg.CredentialsPath == "" {
		return nil
	}
	client, err := gcalendar.NewClientFromCredentialsFile(ctx, cfg.CredentialsPath)
	if err != nil {
		l.Warnf(ctx, "Google Calendar not available (optional): %v", err)
		return nil
	}
	l.Info(ctx, "Google Calendar mirror enabled")
	return &CalendarMirror{
		Client:     client,
		CalendarID: cfg.CalendarID,
		Timezone:   cfg.Timezone,
	}
}

func (m *CalendarMirror) dayEvent(t model.Task) gcalendar.DayEvent {
	return gcalendar.DayEvent{
		CalendarID:  m.CalendarID,
		Summary:     t.Title,
		Description: t.Description,
		Day:         t.DueDate,
		Timezone:    m.Timezone,
	}
}
