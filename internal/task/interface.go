package task

import (
	"context"

	"breeze/internal/model"
)

// UseCase defines the business logic interface for the task domain.
// Every operation is restricted to tasks owned by sc.SessionID.
type UseCase interface {
	Create(ctx context.Context, sc model.Scope, input CreateInput) (CreateOutput, error)
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)
	Detail(ctx context.Context, sc model.Scope, id string) (DetailOutput, error)
	Update(ctx context.Context, sc model.Scope, input UpdateInput) (UpdateOutput, error)
	Delete(ctx context.Context, sc model.Scope, input DeleteInput) (DeleteOutput, error)
	DeleteByProject(ctx context.Context, sc model.Scope, projectID string) (int, error)
}
