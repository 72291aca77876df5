package ratelimiter

import (
	"context"
	"sync"
)

type TestRateLimiter struct {
	DoNotAllow  bool
	CheckedKeys []string
	lock        sync.Mutex
}

func NewTestRateLimiter() *TestRateLimiter {
	return &TestRateLimiter{}
}

func (l *TestRateLimiter) CheckLimit(ctx context.Context, key string, limit Limit) Result {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.CheckedKeys = append(l.CheckedKeys, key)
	if l.DoNotAllow {
		return NotAllowed()
	}
	return Allowed()
}
