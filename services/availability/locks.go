package availability

import (
	"context"
	"sync"
)

// providerLocks hands out one mutual-exclusion lock per provider, created
// lazily and retained for the process lifetime. Slot computation for a
// provider reads several collaborators that are not snapshotted atomically;
// serializing per provider keeps two near-simultaneous requests from
// interleaving those reads. Requests for different providers never block
// each other.
//
// Each lock is a one-slot channel rather than a sync.Mutex so a waiter can
// abandon the acquisition when its context expires.
type providerLocks struct {
	mu    sync.Mutex
	locks map[string]chan struct{}
}

func newProviderLocks() *providerLocks {
	return &providerLocks{locks: make(map[string]chan struct{})}
}

// get returns the lock channel for a provider, creating it if needed.
func (l *providerLocks) get(providerID string) chan struct{} {
	l.mu.Lock()
	defer l.mu.Unlock()

	lock, exists := l.locks[providerID]
	if !exists {
		lock = make(chan struct{}, 1)
		l.locks[providerID] = lock
	}
	return lock
}

// withLock runs fn while holding the provider's lock. A second concurrent
// call for the same provider queues until the first completes. Waiting is
// abandoned with ctx.Err() when the context is cancelled first.
func (l *providerLocks) withLock(ctx context.Context, providerID string, fn func() error) error {
	lock := l.get(providerID)
	select {
	case lock <- struct{}{}:
	case <-ctx.Done():
		return ctx.Err()
	}
	defer func() { <-lock }()
	return fn()
}
