package locker

import (
	"booking-service/internal/app/contracts"
	"booking-service/internal/pkg/constvars"
	"booking-service/internal/pkg/exceptions"
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type redisLocker struct {
	client *redis.Client
	log    *zap.Logger
}

// NewRedisLocker returns a LockerService backed by a shared redis instance,
// for deployments running more than one replica of this service.
func NewRedisLocker(client *redis.Client, log *zap.Logger) contracts.LockerService {
	return &redisLocker{client: client, log: log}
}

func (l *redisLocker) TryLock(ctx context.Context, key, token string, expiration time.Duration) (bool, error) {
	requestID, _ := ctx.Value(constvars.ContextRequestIDKey).(string)

	acquired, err := l.client.SetNX(ctx, key, token, expiration).Result()
	if err != nil {
		l.log.Error("redisLocker.TryLock error calling SetNX",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingLockKey, key),
			zap.Error(err),
		)
		return false, exceptions.ErrRedisLockSet(err)
	}

	if !acquired {
		l.log.Info("redisLocker.TryLock not acquired",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingLockKey, key),
		)
		return false, nil
	}

	l.log.Info("redisLocker.TryLock acquired lock",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingLockKey, key),
	)
	return true, nil
}

func (l *redisLocker) Unlock(ctx context.Context, key, token string) error {
	requestID, _ := ctx.Value(constvars.ContextRequestIDKey).(string)

	stored, err := l.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return contracts.ErrLockNotHeld
	}
	if err != nil {
		l.log.Error("redisLocker.Unlock error retrieving lock",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingLockKey, key),
			zap.Error(err),
		)
		return exceptions.ErrRedisLockGet(err)
	}

	if stored != token {
		l.log.Warn("redisLocker.Unlock lock ownership mismatch",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingLockKey, key),
		)
		return contracts.ErrLockTokenMismatch
	}

	if err := l.client.Del(ctx, key).Err(); err != nil {
		l.log.Error("redisLocker.Unlock error deleting lock",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingLockKey, key),
			zap.Error(err),
		)
		return exceptions.ErrRedisLockDelete(err)
	}
	return nil
}

func (l *redisLocker) ForceUnlock(ctx context.Context, key string) error {
	requestID, _ := ctx.Value(constvars.ContextRequestIDKey).(string)

	if err := l.client.Del(ctx, key).Err(); err != nil {
		l.log.Error("redisLocker.ForceUnlock error deleting lock",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingLockKey, key),
			zap.Error(err),
		)
		return exceptions.ErrRedisLockDelete(err)
	}
	return nil
}
