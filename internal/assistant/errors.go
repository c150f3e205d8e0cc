package assistant

import (
	"errors"
	"net/http"

	"breeze/internal/task"
	"breeze/pkg/llmprovider"
)

var (
	ErrEmptyPrompt     = errors.New("prompt is required")
	ErrUnknownIntent   = errors.New("unknown intent")
	ErrDispatchFailure = errors.New("task dispatch failed")
	ErrNoJSONBlock     = errors.New("no fenced json block in provider output")
	ErrSessionBusy     = errors.New("session is busy")
)

// User-facing chat text for failures.
const (
	MessageExhausted = "All AI providers exhausted. Please try again in a few minutes."
	MessageFailure   = "Sorry, I encountered an error. Please try again."
	MessageNotFound  = "I couldn't find that task. Please check the task id and try again."
	MessageInvalid   = "Some of the task details look invalid. Please check them and try again."
	MessageBusy      = "Still working on your previous message. Please try again in a moment."
)

// ReplyFor turns a SubmitPrompt error into the chat text shown to the user.
func ReplyFor(err error) string {
	switch {
	case errors.Is(err, ErrEmptyPrompt):
		return "Please type a request first."
	case errors.Is(err, ErrSessionBusy):
		return MessageBusy
	case errors.Is(err, llmprovider.ErrChainExhausted):
		return MessageExhausted
	case errors.Is(err, task.ErrTaskNotFound):
		return MessageNotFound
	case errors.Is(err, task.ErrInvalidDueDate), errors.Is(err, task.ErrInvalidPriority):
		return MessageInvalid
	default:
		return MessageFailure
	}
}

// StatusFor maps a SubmitPrompt error to an HTTP-style status code.
// Exhaustion is transient (503); a rejected dispatch is the caller's to fix (422).
func StatusFor(err error) int {
	switch {
	case errors.Is(err, ErrEmptyPrompt):
		return http.StatusBadRequest
	case errors.Is(err, llmprovider.ErrChainExhausted):
		return http.StatusServiceUnavailable
	case errors.Is(err, ErrDispatchFailure):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ErrSessionBusy):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
