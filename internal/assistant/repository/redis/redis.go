package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"breeze/internal/assistant"
	"breeze/internal/assistant/repository"
	"breeze/pkg/log"
)

const (
	DefaultTTL = 24 * time.Hour
	keyPrefix  = "assistant:session:"
)

type implRepository struct {
	client   *redis.Client
	ttl      time.Duration
	leaseTTL time.Duration
	l        log.Logger
}

// New creates a Redis-backed conversation store. Every save refreshes the key's TTL.
// The store also implements repository.SessionLocker so that replicas sharing it
// process one turn per session at a time.
func New(client *redis.Client, ttl time.Duration, l log.Logger) repository.Repository {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &implRepository{client: client, ttl: ttl, leaseTTL: DefaultLeaseTTL, l: l}
}

func (r *implRepository) key(sessionID string) string {
	return keyPrefix + sessionID
}

func (r *implRepository) GetConversation(ctx context.Context, sessionID string) (assistant.Conversation, error) {
	if sessionID == "" {
		return assistant.Conversation{}, repository.ErrSessionRequired
	}

	data, err := r.client.Get(ctx, r.key(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return assistant.Conversation{SessionID: sessionID}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "assistant.repository.redis.GetConversation: %v", err)
		return assistant.Conversation{}, fmt.Errorf("load conversation: %w", err)
	}

	var conv assistant.Conversation
	if err := json.Unmarshal(data, &conv); err != nil {
		r.l.Errorf(ctx, "assistant.repository.redis.GetConversation unmarshal: %v", err)
		return assistant.Conversation{}, fmt.Errorf("parse conversation: %w", err)
	}
	return conv, nil
}

func (r *implRepository) SaveConversation(ctx context.Context, conv assistant.Conversation) error {
	if conv.SessionID == "" {
		return repository.ErrSessionRequired
	}

	data, err := json.Marshal(conv)
	if err != nil {
		return fmt.Errorf("marshal conversation: %w", err)
	}
	if err := r.client.Set(ctx, r.key(conv.SessionID), data, r.ttl).Err(); err != nil {
		r.l.Errorf(ctx, "assistant.repository.redis.SaveConversation: %v", err)
		return fmt.Errorf("save conversation: %w", err)
	}
	return nil
}

func (r *implRepository) DeleteConversation(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return repository.ErrSessionRequired
	}
	if err := r.client.Del(ctx, r.key(sessionID)).Err(); err != nil {
		r.l.Errorf(ctx, "assistant.repository.redis.DeleteConversation: %v", err)
		return fmt.Errorf("delete conversation: %w", err)
	}
	return nil
}
