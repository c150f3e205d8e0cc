package project

import (
	"context"

	"breeze/internal/model"
)

// UseCase defines the business logic interface for the project domain.
// Every operation is restricted to projects owned by sc.SessionID.
type UseCase interface {
	Create(ctx context.Context, sc model.Scope, input CreateInput) (CreateOutput, error)
	List(ctx context.Context, sc model.Scope) (ListOutput, error)
	Detail(ctx context.Context, sc model.Scope, id string) (DetailOutput, error)
	// Delete soft-deletes the project and every live task filed under it.
	Delete(ctx context.Context, sc model.Scope, id string) (DeleteOutput, error)
}
