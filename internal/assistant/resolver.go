package assistant

import (
	"fmt"
	"strings"
	"time"

	"breeze/pkg/datemath"
)

// Resolver reconciles provider responses with the fields collected so far.
type Resolver struct {
	dates *datemath.Parser
	now   func() time.Time
}

// NewResolver creates a Resolver. dates resolves relative due dates and may be nil,
// in which case only YYYY-MM-DD values are accepted.
func NewResolver(dates *datemath.Parser) *Resolver {
	return &Resolver{dates: dates, now: time.Now}
}

// WithClock replaces the time source used to resolve relative dates.
func (r *Resolver) WithClock(now func() time.Time) *Resolver {
	r.now = now
	return r
}

// ParseIntent maps a provider intent tag to an Intent. Tags are case-sensitive.
// An empty tag falls back to pending, the intent still being collected.
func ParseIntent(tag string, pending Intent) (Intent, error) {
	switch Intent(tag) {
	case IntentCreate:
		return IntentCreate, nil
	case IntentUpdate:
		return IntentUpdate, nil
	case IntentDelete:
		return IntentDelete, nil
	case "":
		if pending != "" {
			return pending, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownIntent, tag)
}

// Resolve merges resp into prior and decides whether the intent can be dispatched.
// Switching to another intent starts a fresh Changed set; Fields keeps growing.
func (r *Resolver) Resolve(resp IntentResponse, prior Draft) (Outcome, error) {
	intent, err := ParseIntent(resp.Intent, prior.Intent)
	if err != nil {
		return Outcome{}, err
	}

	now := r.now()
	changed := prior.Changed
	if intent != prior.Intent {
		changed = ProvidedFields{}
	}
	changed = MergeFields(changed, resp.ProvidedFields, r.dates, now)
	merged := MergeFields(prior.Fields, resp.ProvidedFields, r.dates, now)

	missing := MissingFields(intent, merged, changed)
	if len(missing) == 0 {
		return Outcome{Intent: intent, Fields: merged, Changed: changed, Ready: true}, nil
	}

	msg := strings.TrimSpace(resp.Message)
	if msg == "" {
		msg = MissingFieldsMessage(missing)
	}
	return Outcome{
		Intent:  intent,
		Fields:  merged,
		Changed: changed,
		Missing: missing,
		Message: msg,
	}, nil
}
