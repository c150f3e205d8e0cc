package datemath

import (
	"errors"
	"regexp"
	"time"
)

// DateLayout is the calendar-date format used for task due dates.
const DateLayout = "2006-01-02"

// ErrUnrecognized is returned for expressions the parser does not understand.
var ErrUnrecognized = errors.New("unrecognized date expression")

// Parser converts relative date expressions to calendar days in one timezone.
type Parser struct {
	location *time.Location
}

var (
	// "in 3 days", "in a week", "in 2 months"
	offsetPattern = regexp.MustCompile(`^in (\d+|a|an|one) (day|week|month)s?$`)
	// "monday", "next monday", "this friday"
	weekdayPattern = regexp.MustCompile(`^(?:(next|this) )?(monday|tuesday|wednesday|thursday|friday|saturday|sunday)$`)
)

var dayOffsets = map[string]int{
	"today":                  0,
	"tonight":                0,
	"tomorrow":               1,
	"day after tomorrow":     2,
	"the day after tomorrow": 2,
	"next week":              7,
}

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}
