package note

import "errors"

var (
	ErrNoteNotFound    = errors.New("note not found")
	ErrSessionRequired = errors.New("session id is required")
	ErrTitleRequired   = errors.New("title is required")
	ErrContentRequired = errors.New("content is required")
	ErrNothingToUpdate = errors.New("no update fields provided")
)
