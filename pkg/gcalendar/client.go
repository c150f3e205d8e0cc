package gcalendar

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

const dayLayout = "2006-01-02"

// Client mirrors task due dates into Google Calendar.
type Client struct {
	events *calendar.EventsService
}

// New builds a Client from raw API options. Most callers use NewClientFromCredentialsFile.
func New(ctx context.Context, opts ...option.ClientOption) (*Client, error) {
	svc, err := calendar.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("gcalendar: create service: %w", err)
	}
	return &Client{events: svc.Events}, nil
}

// NewClientFromCredentialsFile accepts either a Service Account key or an
// OAuth desktop-app secret. The desktop flow also needs TokenFile in the same directory.
func NewClientFromCredentialsFile(ctx context.Context, credentialsPath string) (*Client, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("gcalendar: read credentials: %w", err)
	}
	return NewClientFromCredentialsJSON(ctx, data, filepath.Join(filepath.Dir(credentialsPath), TokenFile))
}

// NewClientFromCredentialsJSON is NewClientFromCredentialsFile for in-memory credentials.
func NewClientFromCredentialsJSON(ctx context.Context, credentialsJSON []byte, tokenPath string) (*Client, error) {
	if jwt, err := google.JWTConfigFromJSON(credentialsJSON, calendar.CalendarScope); err == nil {
		return New(ctx, option.WithTokenSource(jwt.TokenSource(ctx)))
	}

	conf, err := google.ConfigFromJSON(credentialsJSON, calendar.CalendarScope)
	if err != nil {
		return nil, fmt.Errorf("gcalendar: unsupported credentials format: %w", err)
	}
	tok, err := readToken(tokenPath)
	if err != nil {
		return nil, err
	}
	return New(ctx, option.WithTokenSource(conf.TokenSource(ctx, tok)))
}

func readToken(path string) (*oauth2.Token, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("gcalendar: desktop credentials need %s, run scripts/gcal-auth first", path)
	}
	if err != nil {
		return nil, fmt.Errorf("gcalendar: read token: %w", err)
	}
	var tok oauth2.Token
	if err := json.Unmarshal(data, &tok); err != nil {
		return nil, fmt.Errorf("gcalendar: parse token: %w", err)
	}
	return &tok, nil
}

// InsertDayEvent creates an all-day event on ev.Day.
func (c *Client) InsertDayEvent(ctx context.Context, ev DayEvent) (Event, error) {
	created, err := c.events.Insert(calendarID(ev.CalendarID), toAPI(ev)).Context(ctx).Do()
	if err != nil {
		return Event{}, fmt.Errorf("gcalendar: insert event: %w", err)
	}
	return Event{ID: created.Id, Link: created.HtmlLink}, nil
}

// PatchDayEvent rewrites summary, description and day of an existing event.
func (c *Client) PatchDayEvent(ctx context.Context, eventID string, ev DayEvent) (Event, error) {
	patched, err := c.events.Patch(calendarID(ev.CalendarID), eventID, toAPI(ev)).Context(ctx).Do()
	if err != nil {
		return Event{}, fmt.Errorf("gcalendar: patch event %s: %w", eventID, err)
	}
	return Event{ID: patched.Id, Link: patched.HtmlLink}, nil
}

// DeleteEvent removes an event.
func (c *Client) DeleteEvent(ctx context.Context, calID, eventID string) error {
	if err := c.events.Delete(calendarID(calID), eventID).Context(ctx).Do(); err != nil {
		return fmt.Errorf("gcalendar: delete event %s: %w", eventID, err)
	}
	return nil
}

// toAPI maps ev to an all-day event. The end date is exclusive.
func toAPI(ev DayEvent) *calendar.Event {
	return &calendar.Event{
		Summary:     ev.Summary,
		Description: ev.Description,
		Start:       &calendar.EventDateTime{Date: ev.Day.Format(dayLayout), TimeZone: ev.Timezone},
		End:         &calendar.EventDateTime{Date: ev.Day.AddDate(0, 0, 1).Format(dayLayout), TimeZone: ev.Timezone},
	}
}

func calendarID(id string) string {
	if id == "" {
		return "primary"
	}
	return id
}
