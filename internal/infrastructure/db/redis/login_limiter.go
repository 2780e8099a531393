package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	defaultMaxAttempts = 5
	defaultLockout     = 15 * time.Minute
)

// LoginLimiter throttles repeated failed logins per username, backed by a
// Redis counter with a lockout TTL.
// Key format: login_fail:<username>
type LoginLimiter struct {
	client      *redis.Client
	maxAttempts int
	lockout     time.Duration
}

// NewLoginLimiter creates a LoginLimiter wrapping the given Redis client.
// Zero values fall back to the defaults.
func NewLoginLimiter(client *redis.Client, maxAttempts int, lockout time.Duration) *LoginLimiter {
	if maxAttempts <= 0 {
		maxAttempts = defaultMaxAttempts
	}
	if lockout <= 0 {
		lockout = defaultLockout
	}
	return &LoginLimiter{client: client, maxAttempts: maxAttempts, lockout: lockout}
}

// TooMany reports whether the username has exhausted its attempt budget.
func (l *LoginLimiter) TooMany(ctx context.Context, username string) (bool, error) {
	n, err := l.client.Get(ctx, l.key(username)).Int()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, fmt.Errorf("login limiter get: %w", err)
	}
	return n >= l.maxAttempts, nil
}

// Fail records one failed attempt. The lockout window starts at the first
// failure and is not extended by later ones.
func (l *LoginLimiter) Fail(ctx context.Context, username string) error {
	key := l.key(username)
	n, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("login limiter incr: %w", err)
	}
	if n == 1 {
		if err := l.client.Expire(ctx, key, l.lockout).Err(); err != nil {
			return fmt.Errorf("login limiter expire: %w", err)
		}
	}
	return nil
}

// Reset clears the counter after a successful login.
func (l *LoginLimiter) Reset(ctx context.Context, username string) error {
	return l.client.Del(ctx, l.key(username)).Err()
}

func (l *LoginLimiter) key(username string) string {
	return "login_fail:" + username
}
