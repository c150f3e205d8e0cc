package datemath

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// NewParser creates a parser for the given IANA timezone, e.g. "Europe/Berlin".
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Parse resolves a relative expression against now and returns midnight of
// the resulting day in the parser's timezone.
func (p *Parser) Parse(expr string, now time.Time) (time.Time, error) {
	expr = strings.Join(strings.Fields(strings.ToLower(expr)), " ")
	today := p.day(now)

	if n, ok := dayOffsets[expr]; ok {
		return today.AddDate(0, 0, n), nil
	}
	if m := offsetPattern.FindStringSubmatch(expr); m != nil {
		n := 1
		if m[1] != "a" && m[1] != "an" && m[1] != "one" {
			v, err := strconv.Atoi(m[1])
			if err != nil {
				return time.Time{}, fmt.Errorf("%w: %q", ErrUnrecognized, expr)
			}
			n = v
		}
		switch m[2] {
		case "day":
			return today.AddDate(0, 0, n), nil
		case "week":
			return today.AddDate(0, 0, 7*n), nil
		default:
			return today.AddDate(0, n, 0), nil
		}
	}
	if m := weekdayPattern.FindStringSubmatch(expr); m != nil {
		return today.AddDate(0, 0, daysUntil(today.Weekday(), weekdays[m[2]], m[1] == "next")), nil
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrUnrecognized, expr)
}

// Normalize returns value as a YYYY-MM-DD calendar date. Absolute dates must
// be real calendar days; anything else goes through Parse.
func (p *Parser) Normalize(value string, now time.Time) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", fmt.Errorf("%w: empty", ErrUnrecognized)
	}
	if t, err := time.ParseInLocation(DateLayout, value, p.location); err == nil {
		return t.Format(DateLayout), nil
	}
	t, err := p.Parse(value, now)
	if err != nil {
		return "", err
	}
	return t.Format(DateLayout), nil
}

func (p *Parser) day(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// daysUntil counts forward to target. A bare weekday naming today means
// today; "next" always moves at least one day ahead.
func daysUntil(from, target time.Weekday, next bool) int {
	d := (int(target) - int(from) + 7) % 7
	if d == 0 && next {
		d = 7
	}
	return d
}
