package gcalendar_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"google.golang.org/api/option"

	"breeze/pkg/gcalendar"
)

const desktopCreds = `{
	"installed": {
		"client_id": "test-client-id.apps.googleusercontent.com",
		"project_id": "test-project",
		"auth_uri": "https://accounts.google.com/o/oauth2/auth",
		"token_uri": "https://oauth2.googleapis.com/token",
		"client_secret": "test-secret",
		"redirect_uris": ["http://localhost"]
	}
}`

// fakeAPI serves the calendar/v3 events collection and records request bodies.
type fakeAPI struct {
	bodies []map[string]any
}

func (f *fakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const base = "/calendar/v3/calendars/team-calendar/events"
	path := r.URL.EscapedPath()
	if r.Body != nil && (r.Method == http.MethodPost || r.Method == http.MethodPatch) {
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		f.bodies = append(f.bodies, body)
	}

	switch {
	case r.Method == http.MethodPost && path == base:
		_, _ = w.Write([]byte(`{"id":"evt-1","htmlLink":"https://calendar.google.com/evt-1"}`))
	case r.Method == http.MethodPatch && path == base+"/evt-1":
		_, _ = w.Write([]byte(`{"id":"evt-1"}`))
	case r.Method == http.MethodDelete && path == base+"/evt-1":
		w.WriteHeader(http.StatusNoContent)
	case strings.HasPrefix(path, "/calendar/v3/calendars/primary/"):
		w.WriteHeader(http.StatusInternalServerError)
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func newTestClient(t *testing.T) (*gcalendar.Client, *fakeAPI) {
	t.Helper()
	api := &fakeAPI{}
	ts := httptest.NewServer(api)
	t.Cleanup(ts.Close)

	client, err := gcalendar.New(context.Background(),
		option.WithHTTPClient(ts.Client()),
		option.WithEndpoint(ts.URL+"/calendar/v3/"),
	)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return client, api
}

func TestNewClientFromCredentials(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown format", func(t *testing.T) {
		if _, err := gcalendar.NewClientFromCredentialsJSON(ctx, []byte(`{"broken":true}`), ""); err == nil {
			t.Error("expected decoding failure")
		}
	})

	t.Run("desktop credentials without token", func(t *testing.T) {
		_, err := gcalendar.NewClientFromCredentialsJSON(ctx, []byte(desktopCreds), filepath.Join(t.TempDir(), "token.json"))
		if err == nil || !strings.Contains(err.Error(), "gcal-auth") {
			t.Errorf("expected hint to run gcal-auth, got %v", err)
		}
	})

	t.Run("desktop credentials with token next to file", func(t *testing.T) {
		dir := t.TempDir()
		credPath := filepath.Join(dir, "google-credentials.json")
		if err := os.WriteFile(credPath, []byte(desktopCreds), 0o600); err != nil {
			t.Fatal(err)
		}
		tok := `{"access_token":"dummy","token_type":"Bearer","expiry":"2030-01-01T00:00:00Z"}`
		if err := os.WriteFile(filepath.Join(dir, gcalendar.TokenFile), []byte(tok), 0o600); err != nil {
			t.Fatal(err)
		}

		if _, err := gcalendar.NewClientFromCredentialsFile(ctx, credPath); err != nil {
			t.Fatalf("NewClientFromCredentialsFile() error = %v", err)
		}
	})

	t.Run("corrupt token", func(t *testing.T) {
		tokPath := filepath.Join(t.TempDir(), "token.json")
		if err := os.WriteFile(tokPath, []byte(`{"broken": true`), 0o600); err != nil {
			t.Fatal(err)
		}
		if _, err := gcalendar.NewClientFromCredentialsJSON(ctx, []byte(desktopCreds), tokPath); err == nil {
			t.Error("expected token parse error")
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := gcalendar.NewClientFromCredentialsFile(ctx, filepath.Join(t.TempDir(), "nope.json")); err == nil {
			t.Error("expected read error")
		}
	})
}

func TestDayEvents(t *testing.T) {
	ctx := context.Background()
	client, api := newTestClient(t)
	ev := gcalendar.DayEvent{
		CalendarID: "team-calendar",
		Summary:    "Submit the report",
		Day:        time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC),
		Timezone:   "UTC",
	}

	created, err := client.InsertDayEvent(ctx, ev)
	if err != nil {
		t.Fatalf("InsertDayEvent() error = %v", err)
	}
	if created.ID != "evt-1" || created.Link == "" {
		t.Errorf("InsertDayEvent() = %+v", created)
	}
	start, _ := api.bodies[0]["start"].(map[string]any)
	end, _ := api.bodies[0]["end"].(map[string]any)
	if start["date"] != "2024-05-31" || end["date"] != "2024-06-01" {
		t.Errorf("all-day range = %v -> %v", start, end)
	}

	ev.Summary = "Submit the final report"
	if _, err := client.PatchDayEvent(ctx, "evt-1", ev); err != nil {
		t.Fatalf("PatchDayEvent() error = %v", err)
	}
	if api.bodies[1]["summary"] != "Submit the final report" {
		t.Errorf("patch body = %v", api.bodies[1])
	}

	if err := client.DeleteEvent(ctx, ev.CalendarID, "evt-1"); err != nil {
		t.Fatalf("DeleteEvent() error = %v", err)
	}
	if err := client.DeleteEvent(ctx, ev.CalendarID, "missing"); err == nil {
		t.Error("expected error for missing event")
	}
}

func TestInsertDayEvent_DefaultsToPrimary(t *testing.T) {
	client, _ := newTestClient(t)
	// The fake answers 500 for the primary calendar.
	if _, err := client.InsertDayEvent(context.Background(), gcalendar.DayEvent{Day: time.Now()}); err == nil {
		t.Fatal("expected insert error")
	}
}
