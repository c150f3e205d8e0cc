package usecase

import (
	"breeze/internal/project"
	"breeze/internal/project/repository"
	"breeze/internal/task"
	"breeze/pkg/log"
)

type implUseCase struct {
	repo   repository.Repository
	taskUC task.UseCase
	l      log.Logger
}

// New creates a new project UseCase. taskUC receives the cascade when a project is deleted.
func New(repo repository.Repository, taskUC task.UseCase, l log.Logger) project.UseCase {
	return &implUseCase{repo: repo, taskUC: taskUC, l: l}
}
