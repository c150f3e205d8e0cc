package assistant

import (
	"context"

	"breeze/internal/model"
)

type UseCase interface {
	// SubmitPrompt runs one chat turn through the provider chain and resolver,
	// dispatching to the task domain once the intent is complete.
	SubmitPrompt(ctx context.Context, sc model.Scope, input SubmitInput) (SubmitOutput, error)
	History(ctx context.Context, sc model.Scope) (HistoryOutput, error)
	Reset(ctx context.Context, sc model.Scope) error
}
