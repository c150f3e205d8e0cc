package memory

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"breeze/internal/assistant"
	"breeze/internal/assistant/repository"
)

const (
	DefaultMaxSessions = 10000
	DefaultTTL         = 24 * time.Hour
)

type implRepository struct {
	cache *expirable.LRU[string, assistant.Conversation]
}

// New creates an in-process conversation store.
// Sessions idle for longer than ttl, or beyond maxSessions, are evicted.
func New(maxSessions int, ttl time.Duration) repository.Repository {
	if maxSessions <= 0 {
		maxSessions = DefaultMaxSessions
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &implRepository{
		cache: expirable.NewLRU[string, assistant.Conversation](maxSessions, nil, ttl),
	}
}

func (r *implRepository) GetConversation(ctx context.Context, sessionID string) (assistant.Conversation, error) {
	if sessionID == "" {
		return assistant.Conversation{}, repository.ErrSessionRequired
	}
	conv, ok := r.cache.Get(sessionID)
	if !ok {
		return assistant.Conversation{SessionID: sessionID}, nil
	}
	return clone(conv), nil
}

func (r *implRepository) SaveConversation(ctx context.Context, conv assistant.Conversation) error {
	if conv.SessionID == "" {
		return repository.ErrSessionRequired
	}
	r.cache.Add(conv.SessionID, clone(conv))
	return nil
}

func (r *implRepository) DeleteConversation(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return repository.ErrSessionRequired
	}
	r.cache.Remove(sessionID)
	return nil
}

// clone copies the transcript so callers never share a backing array with the cache.
func clone(conv assistant.Conversation) assistant.Conversation {
	turns := make([]assistant.ConversationTurn, len(conv.Turns))
	copy(turns, conv.Turns)
	conv.Turns = turns
	return conv
}
