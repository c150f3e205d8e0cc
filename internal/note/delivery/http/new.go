package http

import (
	"breeze/internal/note"
	"breeze/pkg/log"
)

type handler struct {
	l  log.Logger
	uc note.UseCase
}

// New creates a new HTTP handler for the note domain.
func New(l log.Logger, uc note.UseCase) *handler {
	return &handler{l: l, uc: uc}
}
