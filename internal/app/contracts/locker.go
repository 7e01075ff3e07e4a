package contracts

import (
	"context"
	"errors"
	"time"
)

// Sentinel errors shared by every locker backend. Usecases translate them
// into client-facing exceptions.
var (
	ErrLockNotHeld       = errors.New("lock is not held")
	ErrLockTokenMismatch = errors.New("lock is held by a different token")
)

// LockerService is the reservation coordinator's lock table. TryLock inserts
// the key with the caller's token only if the key is absent.
// A zero expiration means the lock never expires on its own.
type LockerService interface {
	TryLock(ctx context.Context, key, token string, expiration time.Duration) (bool, error)
	// Unlock removes the key only when the stored token matches; a mismatch
	// leaves the entry in place for inspection.
	Unlock(ctx context.Context, key, token string) error
	// ForceUnlock removes the key regardless of holder. Idempotent.
	ForceUnlock(ctx context.Context, key string) error
}
