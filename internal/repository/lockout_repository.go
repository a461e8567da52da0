package repository

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	lockoutKeyPrefix  = "mathgame-lock-user-"
	failureKeyPrefix  = "mathgame-login-failures-"
	lockoutDuration   = 10 * time.Minute
	failureWindow     = 15 * time.Minute
	maxFailedAttempts = 10
)

// LockoutRepository tracks failed logins in Redis and locks accounts that
// fail too often. With a nil client every operation is a no-op.
type LockoutRepository struct {
	client *redis.Client
}

func NewLockoutRepository(client *redis.Client) *LockoutRepository {
	return &LockoutRepository{client: client}
}

func (r *LockoutRepository) IsLocked(ctx context.Context, username string) bool {
	if r.client == nil {
		return false
	}
	n, err := r.client.Exists(ctx, lockoutKeyPrefix+username).Result()
	return err == nil && n > 0
}

// RecordFailure bumps the failure counter and locks the account once it
// crosses the threshold.
func (r *LockoutRepository) RecordFailure(ctx context.Context, username string) {
	if r.client == nil {
		return
	}
	key := failureKeyPrefix + username
	count, err := r.client.Incr(ctx, key).Result()
	if err != nil {
		return
	}
	r.client.Expire(ctx, key, failureWindow)
	if count >= maxFailedAttempts {
		r.client.Set(ctx, lockoutKeyPrefix+username, time.Now().UnixMilli(), lockoutDuration)
		r.client.Del(ctx, key)
	}
}

func (r *LockoutRepository) Reset(ctx context.Context, username string) {
	if r.client == nil {
		return
	}
	r.client.Del(ctx, failureKeyPrefix+username)
}
