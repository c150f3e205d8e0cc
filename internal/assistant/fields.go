package assistant

import (
	"strings"
	"time"

	"breeze/internal/model"
	"breeze/pkg/datemath"
)

// Field names as the user sees them in clarification messages.
const (
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldDueDate     = "dueDate"
	FieldPriority    = "priority"
	FieldTaskID      = "taskId"
)

// MergeFields overlays every non-empty, valid incoming value onto prior.
// An invalid priority or due date is dropped, so a known value is never reverted.
// Priority must match the enum exactly, surrounding spaces included.
func MergeFields(prior, incoming ProvidedFields, dates *datemath.Parser, now time.Time) ProvidedFields {
	merged := prior

	setIfPresent(&merged.Title, incoming.Title)
	setIfPresent(&merged.Description, incoming.Description)
	setIfPresent(&merged.TaskID, incoming.TaskID)
	setIfPresent(&merged.ProjectID, incoming.ProjectID)

	if model.Priority(incoming.Priority).IsValid() {
		merged.Priority = incoming.Priority
	}
	if d, ok := normalizeDueDate(incoming.DueDate, dates, now); ok {
		merged.DueDate = d
	}
	return merged
}

func setIfPresent(dst *string, v string) {
	if v = strings.TrimSpace(v); v != "" {
		*dst = v
	}
}

func normalizeDueDate(v string, dates *datemath.Parser, now time.Time) (string, bool) {
	v = strings.TrimSpace(v)
	if v == "" {
		return "", false
	}
	if dates == nil {
		if _, err := time.Parse(datemath.DateLayout, v); err != nil {
			return "", false
		}
		return v, true
	}
	d, err := dates.Normalize(v, now)
	if err != nil {
		return "", false
	}
	return d, true
}

// MissingFields lists the fields intent still needs, in a stable order.
// f is everything collected; changed is what arrived for this intent and is
// the only set an update counts as a change.
func MissingFields(intent Intent, f, changed ProvidedFields) []string {
	var missing []string
	switch intent {
	case IntentCreate:
		if f.Title == "" {
			missing = append(missing, FieldTitle)
		}
		if f.Description == "" {
			missing = append(missing, FieldDescription)
		}
		if f.DueDate == "" {
			missing = append(missing, FieldDueDate)
		}
		if f.Priority == "" {
			missing = append(missing, FieldPriority)
		}
	case IntentUpdate:
		if f.TaskID == "" {
			missing = append(missing, FieldTaskID)
		}
		if !changed.HasChanges() {
			missing = append(missing, "at least one of title, description, dueDate, priority")
		}
	case IntentDelete:
		if f.TaskID == "" {
			missing = append(missing, FieldTaskID)
		}
	}
	return missing
}

// MissingFieldsMessage is the fallback clarification when the provider gave none.
func MissingFieldsMessage(missing []string) string {
	return "Please provide the following fields: " + strings.Join(missing, ", ") + "."
}
