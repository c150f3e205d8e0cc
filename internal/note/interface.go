package note

import (
	"context"

	"breeze/internal/model"
)

// UseCase defines the business logic interface for the note domain.
// Every operation is restricted to notes owned by sc.SessionID.
type UseCase interface {
	Create(ctx context.Context, sc model.Scope, input CreateInput) (CreateOutput, error)
	List(ctx context.Context, sc model.Scope) (ListOutput, error)
	Update(ctx context.Context, sc model.Scope, input UpdateInput) (UpdateOutput, error)
	Delete(ctx context.Context, sc model.Scope, id string) (DeleteOutput, error)
}
