package usecase

import (
	"context"
	"time"

	"breeze/internal/assistant"
	"breeze/internal/assistant/repository"
	"breeze/internal/task"
	"breeze/pkg/llmprovider"
	"breeze/pkg/log"
)

const (
	// MaxTurns caps the stored transcript; older turns are dropped first.
	MaxTurns = 200

	defaultTemperature = 0.2
	defaultMaxTokens   = 512
)

// Chain is the ordered provider fallback used to extract an intent.
type Chain interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request, decode llmprovider.Decoder) (*llmprovider.Response, error)
}

// implUseCase is the private implementation of assistant.UseCase.
type implUseCase struct {
	l        log.Logger
	chain    Chain
	resolver *assistant.Resolver
	repo     repository.Repository
	taskUC   task.UseCase
	locks    *keyedMutex
	now      func() time.Time
}

// New creates a new assistant UseCase.
func New(l log.Logger, chain Chain, resolver *assistant.Resolver, repo repository.Repository, taskUC task.UseCase) assistant.UseCase {
	return &implUseCase{
		l:        l,
		chain:    chain,
		resolver: resolver,
		repo:     repo,
		taskUC:   taskUC,
		locks:    newKeyedMutex(),
		now:      time.Now,
	}
}
