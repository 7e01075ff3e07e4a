package locker

import (
	"booking-service/internal/app/contracts"
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMemoryLocker_TryLock(t *testing.T) {
	ctx := context.Background()
	svc := NewMemoryLocker(zap.NewNop())

	acquired, err := svc.TryLock(ctx, "reservation:sched-1:2024-12-02", "token-a", 0)
	require.NoError(t, err)
	assert.True(t, acquired)

	acquired, err = svc.TryLock(ctx, "reservation:sched-1:2024-12-02", "token-b", 0)
	require.NoError(t, err)
	assert.False(t, acquired, "second holder must be rejected while the key is held")

	acquired, err = svc.TryLock(ctx, "reservation:sched-2:2024-12-02", "token-b", 0)
	require.NoError(t, err)
	assert.True(t, acquired, "a different key is independent")
}

func TestMemoryLocker_TryLockConcurrent(t *testing.T) {
	ctx := context.Background()
	svc := NewMemoryLocker(zap.NewNop())

	const attempts = 32
	var wg sync.WaitGroup
	results := make([]bool, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			acquired, err := svc.TryLock(ctx, "reservation:sched-1:2024-12-02", "token", 0)
			assert.NoError(t, err)
			results[i] = acquired
		}(i)
	}
	wg.Wait()

	winners := 0
	for _, acquired := range results {
		if acquired {
			winners++
		}
	}
	assert.Equal(t, 1, winners, "exactly one concurrent caller may win the lock")
}

func TestMemoryLocker_Unlock(t *testing.T) {
	ctx := context.Background()
	svc := NewMemoryLocker(zap.NewNop())

	err := svc.Unlock(ctx, "reservation:sched-1:2024-12-02", "token-a")
	assert.ErrorIs(t, err, contracts.ErrLockNotHeld)

	acquired, err := svc.TryLock(ctx, "reservation:sched-1:2024-12-02", "token-a", 0)
	require.NoError(t, err)
	require.True(t, acquired)

	err = svc.Unlock(ctx, "reservation:sched-1:2024-12-02", "token-b")
	assert.ErrorIs(t, err, contracts.ErrLockTokenMismatch)

	// The mismatch must not have released the hold.
	acquired, err = svc.TryLock(ctx, "reservation:sched-1:2024-12-02", "token-b", 0)
	require.NoError(t, err)
	assert.False(t, acquired)

	err = svc.Unlock(ctx, "reservation:sched-1:2024-12-02", "token-a")
	require.NoError(t, err)

	acquired, err = svc.TryLock(ctx, "reservation:sched-1:2024-12-02", "token-b", 0)
	require.NoError(t, err)
	assert.True(t, acquired, "the key is free again after a matching unlock")
}

func TestMemoryLocker_ForceUnlock(t *testing.T) {
	ctx := context.Background()
	svc := NewMemoryLocker(zap.NewNop())

	require.NoError(t, svc.ForceUnlock(ctx, "reservation:sched-1:2024-12-02"))

	acquired, err := svc.TryLock(ctx, "reservation:sched-1:2024-12-02", "token-a", 0)
	require.NoError(t, err)
	require.True(t, acquired)

	require.NoError(t, svc.ForceUnlock(ctx, "reservation:sched-1:2024-12-02"))
	require.NoError(t, svc.ForceUnlock(ctx, "reservation:sched-1:2024-12-02"))

	acquired, err = svc.TryLock(ctx, "reservation:sched-1:2024-12-02", "token-b", 0)
	require.NoError(t, err)
	assert.True(t, acquired)
}

func TestMemoryLocker_Expiration(t *testing.T) {
	ctx := context.Background()
	svc := NewMemoryLocker(zap.NewNop())

	acquired, err := svc.TryLock(ctx, "reservation:sched-1:2024-12-02", "token-a", 10*time.Millisecond)
	require.NoError(t, err)
	require.True(t, acquired)

	time.Sleep(25 * time.Millisecond)

	acquired, err = svc.TryLock(ctx, "reservation:sched-1:2024-12-02", "token-b", 0)
	require.NoError(t, err)
	assert.True(t, acquired, "an expired entry is treated as absent")

	err = svc.Unlock(ctx, "reservation:sched-1:2024-12-02", "token-b")
	assert.NoError(t, err)
}
