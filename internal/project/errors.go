package project

import "errors"

var (
	ErrProjectNotFound   = errors.New("project not found")
	ErrSessionRequired   = errors.New("session id is required")
	ErrNameRequired      = errors.New("name is required")
	ErrDescriptionNeeded = errors.New("description is required")
	ErrInvalidStatus     = errors.New("status must be one of Active, Completed, On Hold")
)
