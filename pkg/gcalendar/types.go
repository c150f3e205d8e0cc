package gcalendar

import "time"

// TokenFile is the OAuth token written by scripts/gcal-auth. It is looked up
// next to the credentials file.
const TokenFile = "token.json"

// DayEvent is an all-day calendar entry for a task due date.
type DayEvent struct {
	CalendarID  string
	Summary     string
	Description string
	Day         time.Time
	Timezone    string // e.g. "Europe/Berlin"
}

// Event is what the API returned for an inserted or patched entry.
type Event struct {
	ID   string
	Link string
}
