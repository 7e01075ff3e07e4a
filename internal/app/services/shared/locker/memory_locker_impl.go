package locker

import (
	"booking-service/internal/app/contracts"
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

type lockEntry struct {
	token     string
	expiresAt time.Time
}

func (e lockEntry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && now.After(e.expiresAt)
}

type memoryLocker struct {
	log *zap.Logger

	mu      sync.Mutex
	entries map[string]lockEntry
}

// NewMemoryLocker returns an in-process LockerService. It is the default
// backend for single-instance deployments.
func NewMemoryLocker(log *zap.Logger) contracts.LockerService {
	return &memoryLocker{
		log:     log,
		entries: make(map[string]lockEntry),
	}
}

func (l *memoryLocker) TryLock(_ context.Context, key, token string, expiration time.Duration) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	if entry, ok := l.entries[key]; ok && !entry.expired(now) {
		return false, nil
	}

	entry := lockEntry{token: token}
	if expiration > 0 {
		entry.expiresAt = now.Add(expiration)
	}
	l.entries[key] = entry

	l.log.Debug("lock acquired",
		zap.String("lock_key", key),
	)
	return true, nil
}

func (l *memoryLocker) Unlock(_ context.Context, key, token string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry, ok := l.entries[key]
	if !ok || entry.expired(time.Now()) {
		delete(l.entries, key)
		return contracts.ErrLockNotHeld
	}
	// A mismatched token must not release someone else's hold.
	if entry.token != token {
		return contracts.ErrLockTokenMismatch
	}

	delete(l.entries, key)
	return nil
}

func (l *memoryLocker) ForceUnlock(_ context.Context, key string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	delete(l.entries, key)
	return nil
}
