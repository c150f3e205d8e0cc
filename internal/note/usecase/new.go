package usecase

import (
	"breeze/internal/note"
	"breeze/internal/note/repository"
	"breeze/pkg/log"
)

type implUseCase struct {
	repo repository.Repository
	l    log.Logger
}

// New creates a new note UseCase.
func New(repo repository.Repository, l log.Logger) note.UseCase {
	return &implUseCase{repo: repo, l: l}
}
