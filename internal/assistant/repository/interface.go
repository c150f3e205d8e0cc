package repository

import (
	"context"

	"breeze/internal/assistant"
)

// Repository stores one Conversation per session.
type Repository interface {
	// GetConversation returns an empty Conversation for an unknown session.
	GetConversation(ctx context.Context, sessionID string) (assistant.Conversation, error)
	SaveConversation(ctx context.Context, conv assistant.Conversation) error
	DeleteConversation(ctx context.Context, sessionID string) error
}

// SessionLocker is implemented by stores shared between processes. The returned
// func releases the lock and is safe to call once.
type SessionLocker interface {
	LockSession(ctx context.Context, sessionID string) (unlock func(), err error)
}
