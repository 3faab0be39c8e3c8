package pages

import (
	"context"
	"time"

	"clinic-portal/internal/app/contracts"
	"clinic-portal/internal/pkg/constvars"
	"clinic-portal/internal/pkg/exceptions"
	"clinic-portal/internal/pkg/utils"

	"go.uber.org/zap"
)

// SaveLock keeps two requests of one browser session from writing the same
// page at the same time, across every portal instance sharing the Redis.
type SaveLock struct {
	locker     contracts.LockerService
	expiration time.Duration
	log        *zap.Logger
}

func NewSaveLock(locker contracts.LockerService, expiration time.Duration, logger *zap.Logger) *SaveLock {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SaveLock{locker: locker, expiration: expiration, log: logger}
}

func SaveLockKey(sessionID, page string) string {
	return constvars.RedisLockKeyPrefix + sessionID + ":" + page
}

// RunSave runs save on the session's page while holding the page's lock.
// When the lock is taken the page shows its save failure and save is not
// called. show runs in both cases, before the page is released.
func RunSave[P Saver](ctx context.Context, l *SaveLock, r *Registry, sessionID string, fresh func() P, save func(P) error, show func(P)) error {
	requestID := utils.RequestIDFromContext(ctx)
	key := SaveLockKey(sessionID, fresh().Name())

	acquired, lockValue, err := l.locker.TryLock(ctx, key, l.expiration)
	if err != nil || !acquired {
		if err == nil {
			err = exceptions.ErrSaveInProgress()
		}
		l.log.Warn("SaveLock.RunSave lock not acquired",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, key),
			zap.Error(err),
		)
		Use(ctx, r, sessionID, fresh, func(page P) {
			page.RejectSave()
			show(page)
		})
		return err
	}
	defer func() {
		if err := l.locker.Unlock(context.WithoutCancel(ctx), key, lockValue); err != nil {
			l.log.Warn("SaveLock.RunSave error releasing lock",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingRedisKey, key),
				zap.Error(err),
			)
		}
	}()

	var saveErr error
	Use(ctx, r, sessionID, fresh, func(page P) {
		saveErr = save(page)
		show(page)
	})
	return saveErr
}
