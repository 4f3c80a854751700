package service

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// LoginLimiter throttles failed login attempts per username.
type LoginLimiter interface {
	Allow(ctx context.Context, username string) (bool, error)
	RecordFailure(ctx context.Context, username string) error
	Reset(ctx context.Context, username string) error
}

// redisLoginLimiter keeps a failure counter per username with a TTL window.
// The counter only grows on failed attempts and is cleared on success, so a
// legitimate login resets the window.
type redisLoginLimiter struct {
	client      *redis.Client
	maxAttempts int
	window      time.Duration
}

func NewLoginLimiter(client *redis.Client, maxAttempts int, window time.Duration) LoginLimiter {
	return &redisLoginLimiter{
		client:      client,
		maxAttempts: maxAttempts,
		window:      window,
	}
}

func loginAttemptsKey(username string) string {
	return "login:attempts:" + username
}

func (l *redisLoginLimiter) Allow(ctx context.Context, username string) (bool, error) {
	count, err := l.client.Get(ctx, loginAttemptsKey(username)).Int()
	if err != nil {
		if err == redis.Nil {
			return true, nil
		}
		return true, err
	}
	return count < l.maxAttempts, nil
}

func (l *redisLoginLimiter) RecordFailure(ctx context.Context, username string) error {
	key := loginAttemptsKey(username)
	count, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		return err
	}
	if count == 1 {
		// First failure opens the window
		return l.client.Expire(ctx, key, l.window).Err()
	}
	return nil
}

func (l *redisLoginLimiter) Reset(ctx context.Context, username string) error {
	return l.client.Del(ctx, loginAttemptsKey(username)).Err()
}
