package usecase

import (
	"strings"
	"time"

	"breeze/internal/model"
	"breeze/internal/task"
)

const dateLayout = "2006-01-02"

// coalesce returns the first non-empty string, used for partial updates.
func (uc *implUseCase) coalesce(newVal, existing string) string {
	if newVal != "" {
		return newVal
	}
	return existing
}

func parseDueDate(s string) (time.Time, error) {
	d, err := time.Parse(dateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, task.ErrInvalidDueDate
	}
	return d, nil
}

func parsePriority(s string) (model.Priority, error) {
	p := model.Priority(s)
	if !p.IsValid() {
		return "", task.ErrInvalidPriority
	}
	return p, nil
}

func validateCreate(input task.CreateInput) (time.Time, model.Priority, error) {
	if strings.TrimSpace(input.Title) == "" {
		return time.Time{}, "", task.ErrTitleRequired
	}
	if strings.TrimSpace(input.Description) == "" {
		return time.Time{}, "", task.ErrDescriptionNeeded
	}
	priority, err := parsePriority(input.Priority)
	if err != nil {
		return time.Time{}, "", err
	}
	due, err := parseDueDate(input.DueDate)
	if err != nil {
		return time.Time{}, "", err
	}
	return due, priority, nil
}

func hasChanges(input task.UpdateInput) bool {
	return input.Title != "" || input.Description != "" || input.DueDate != "" ||
		input.Priority != "" || input.Completed != nil || input.Tracked != nil
}

func boolOr(v *bool, existing bool) bool {
	if v != nil {
		return *v
	}
	return existing
}
