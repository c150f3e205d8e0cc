package usecase

import (
	"context"
	"sync"

	"breeze/internal/assistant/repository"
)

// keyedMutex serializes work per key. Entries are removed once no goroutine holds or waits on them.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*refMutex
}

type refMutex struct {
	sync.Mutex
	refs int
}

func newKeyedMutex() *keyedMutex {
	return &keyedMutex{locks: make(map[string]*refMutex)}
}

// Lock blocks until key is free and returns the matching unlock func.
func (k *keyedMutex) Lock(key string) func() {
	k.mu.Lock()
	m, ok := k.locks[key]
	if !ok {
		m = &refMutex{}
		k.locks[key] = m
	}
	m.refs++
	k.mu.Unlock()

	m.Lock()
	return func() {
		m.Unlock()
		k.mu.Lock()
		m.refs--
		if m.refs == 0 {
			delete(k.locks, key)
		}
		k.mu.Unlock()
	}
}

// lockSession serializes turns for one session. The in-process mutex is always taken;
// a store that implements repository.SessionLocker adds a lease shared with other replicas.
func (uc *implUseCase) lockSession(ctx context.Context, sessionID string) (func(), error) {
	unlock := uc.locks.Lock(sessionID)
	locker, ok := uc.repo.(repository.SessionLocker)
	if !ok {
		return unlock, nil
	}

	release, err := locker.LockSession(ctx, sessionID)
	if err != nil {
		unlock()
		return nil, err
	}
	return func() {
		release()
		unlock()
	}, nil
}
