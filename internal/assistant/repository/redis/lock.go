package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"breeze/internal/assistant"
	"breeze/internal/assistant/repository"
)

const (
	lockPrefix = "assistant:lock:"

	// DefaultLeaseTTL outlives a full provider chain plus dispatch.
	DefaultLeaseTTL  = time.Minute
	leaseRetryPeriod = 50 * time.Millisecond
)

// releaseScript deletes the lease only while it still carries our token.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0`)

func (r *implRepository) lockKey(sessionID string) string {
	return lockPrefix + sessionID
}

// LockSession takes a SET NX lease on the session, polling until it is free or ctx ends.
// An expired lease is taken over, so a crashed holder blocks the session for at most the lease TTL.
func (r *implRepository) LockSession(ctx context.Context, sessionID string) (func(), error) {
	if sessionID == "" {
		return nil, repository.ErrSessionRequired
	}

	key := r.lockKey(sessionID)
	token := uuid.NewString()
	ticker := time.NewTicker(leaseRetryPeriod)
	defer ticker.Stop()

	for {
		ok, err := r.client.SetNX(ctx, key, token, r.leaseTTL).Result()
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil, assistant.ErrSessionBusy
			}
			r.l.Errorf(ctx, "assistant.repository.redis.LockSession: %v", err)
			return nil, fmt.Errorf("lock session: %w", err)
		}
		if ok {
			break
		}

		select {
		case <-ctx.Done():
			r.l.Warnf(ctx, "assistant.repository.redis.LockSession: session %s still locked: %v", sessionID, ctx.Err())
			return nil, assistant.ErrSessionBusy
		case <-ticker.C:
		}
	}

	return func() {
		// Release must run even when the request context is already done.
		rctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), time.Second)
		defer cancel()
		if err := releaseScript.Run(rctx, r.client, []string{key}, token).Err(); err != nil {
			r.l.Warnf(rctx, "assistant.repository.redis.LockSession release: %v", err)
		}
	}, nil
}
