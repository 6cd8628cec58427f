package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

type mockRedisEvaler struct {
	lastScript string
	lastKeys   []string
	lastArgs   []interface{}
	result     int64
	err        error
}

func (m *mockRedisEvaler) Eval(ctx context.Context, script string, keys []string, args ...interface{}) *redis.Cmd {
	m.lastScript = script
	m.lastKeys = keys
	m.lastArgs = args
	cmd := redis.NewCmd(ctx)
	if m.err != nil {
		cmd.SetErr(m.err)
		return cmd
	}
	cmd.SetVal(m.result)
	return cmd
}

func TestAnalyzeRateLimiterAllow(t *testing.T) {
	l := NewAnalyzeRateLimiter(time.Minute, 2)

	if !l.Allow("1.2.3.4") || !l.Allow("1.2.3.4") {
		t.Fatalf("expected first two requests allowed")
	}
	if l.Allow("1.2.3.4") {
		t.Fatalf("expected third request within window rejected")
	}
	if !l.Allow("5.6.7.8") {
		t.Fatalf("expected independent key allowed")
	}
}

func TestAnalyzeRateLimiterWindowExpiry(t *testing.T) {
	l := NewAnalyzeRateLimiter(10*time.Millisecond, 1)

	if !l.Allow("1.2.3.4") {
		t.Fatalf("expected first request allowed")
	}
	if l.Allow("1.2.3.4") {
		t.Fatalf("expected second request rejected")
	}
	time.Sleep(15 * time.Millisecond)
	if !l.Allow("1.2.3.4") {
		t.Fatalf("expected request allowed after window expiry")
	}
}

func TestRedisAnalyzeRateLimiterAllow(t *testing.T) {
	t.Run("nil receiver fail-open", func(t *testing.T) {
		var l *redisAnalyzeRateLimiter
		if !l.Allow("1.2.3.4") {
			t.Fatalf("expected fail-open for nil limiter")
		}
	})

	t.Run("empty key rejected", func(t *testing.T) {
		l := &redisAnalyzeRateLimiter{
			client: &mockRedisEvaler{result: 1},
			window: time.Minute,
			max:    3,
			prefix: "scan:rl:",
		}
		if l.Allow("   ") {
			t.Fatalf("expected empty key to be rejected")
		}
	})

	t.Run("allow when count within max", func(t *testing.T) {
		mock := &mockRedisEvaler{result: 2}
		l := &redisAnalyzeRateLimiter{
			client: mock,
			window: 2 * time.Minute,
			max:    3,
			prefix: "scan:rl:",
		}
		if !l.Allow("1.2.3.4") {
			t.Fatalf("expected request within max allowed")
		}
		if len(mock.lastKeys) != 1 || mock.lastKeys[0] != "scan:rl:1.2.3.4" {
			t.Fatalf("unexpected redis key: %v", mock.lastKeys)
		}
		if len(mock.lastArgs) != 1 || mock.lastArgs[0] != 120 {
			t.Fatalf("expected window seconds argument, got %v", mock.lastArgs)
		}
	})

	t.Run("reject when over max", func(t *testing.T) {
		l := &redisAnalyzeRateLimiter{
			client: &mockRedisEvaler{result: 4},
			window: time.Minute,
			max:    3,
			prefix: "scan:rl:",
		}
		if l.Allow("1.2.3.4") {
			t.Fatalf("expected request over max rejected")
		}
	})

	t.Run("redis error fail-open", func(t *testing.T) {
		l := &redisAnalyzeRateLimiter{
			client: &mockRedisEvaler{err: errors.New("redis down")},
			window: time.Minute,
			max:    3,
			prefix: "scan:rl:",
		}
		if !l.Allow("1.2.3.4") {
			t.Fatalf("expected fail-open on redis error")
		}
	})
}
