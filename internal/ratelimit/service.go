package ratelimit

//go:generate go run go.uber.org/mock/mockgen@latest -source=service.go -destination=mocks_test.go -package=ratelimit

import (
	"context"
	"fmt"
	"sync"
	"time"

	"adventure-server/internal/clients/redis"
	"adventure-server/internal/config"
	"adventure-server/internal/observability"
)

// WindowCounter is a shared sliding window log, usually Redis
type WindowCounter interface {
	IsEnabled() bool
	SlideWindow(ctx context.Context, key string, now time.Time, window time.Duration, limit int) (redis.WindowResult, error)
}

// Result represents the outcome of a rate limit check
type Result struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetAt    time.Time
	RetryAfter time.Duration
}

// Service limits requests per client IP over a sliding window. It uses the
// shared counter when one is available and an in-process log otherwise.
type Service struct {
	counter WindowCounter
	local   *localLimiter
	limit   int
	window  time.Duration
	logger  *observability.Logger
	now     func() time.Time
}

// NewService creates a new rate limiting service. counter may be nil.
func NewService(counter WindowCounter, cfg config.RateLimitConfig, logger *observability.Logger) *Service {
	return &Service{
		counter: counter,
		local:   newLocalLimiter(cfg.MaxRequests, cfg.Window),
		limit:   cfg.MaxRequests,
		window:  cfg.Window,
		logger:  logger,
		now:     time.Now,
	}
}

// Check records a request from ip and reports whether it is within budget
func (s *Service) Check(ctx context.Context, ip string) Result {
	now := s.now()

	if s.counter != nil && s.counter.IsEnabled() {
		result, err := s.checkShared(ctx, ip, now)
		if err == nil {
			return result
		}
		s.logger.Warn(observability.WithFields(ctx, observability.Field{Key: "error", Value: err.Error()}),
			"shared rate limit check failed, falling back to local limiter")
	}

	return s.local.check(ip, now)
}

func (s *Service) checkShared(ctx context.Context, ip string, now time.Time) (Result, error) {
	window, err := s.counter.SlideWindow(ctx, fmt.Sprintf("rl:%s", ip), now, s.window, s.limit)
	if err != nil {
		return Result{}, err
	}

	resetAt := window.Oldest.Add(s.window)
	if !window.Allowed {
		retryAfter := resetAt.Sub(now)
		if retryAfter < 0 {
			retryAfter = 0
		}
		return Result{
			Allowed:    false,
			Limit:      s.limit,
			Remaining:  0,
			ResetAt:    resetAt,
			RetryAfter: retryAfter,
		}, nil
	}

	return Result{
		Allowed:   true,
		Limit:     s.limit,
		Remaining: max(0, s.limit-window.Count-1),
		ResetAt:   resetAt,
	}, nil
}

type localEntry struct {
	// hits holds the request times inside the current window, oldest first
	hits     []time.Time
	lastSeen time.Time
}

// localLimiter keeps a sliding window log per client, the in-process
// counterpart of the shared sorted set
type localLimiter struct {
	limit   int
	window  time.Duration
	mu      sync.Mutex
	clients map[string]*localEntry
}

func newLocalLimiter(maxRequests int, window time.Duration) *localLimiter {
	return &localLimiter{
		limit:   maxRequests,
		window:  window,
		clients: make(map[string]*localEntry),
	}
}

func (l *localLimiter) check(key string, now time.Time) Result {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry, ok := l.clients[key]
	if !ok {
		l.cleanupLocked(now)
		entry = &localEntry{}
		l.clients[key] = entry
	}
	entry.lastSeen = now

	// a hit leaves the window once it is a full window old
	windowStart := now.Add(-l.window)
	expired := 0
	for expired < len(entry.hits) && !entry.hits[expired].After(windowStart) {
		expired++
	}
	entry.hits = entry.hits[expired:]

	if len(entry.hits) >= l.limit {
		resetAt := entry.hits[0].Add(l.window)
		return Result{
			Allowed:    false,
			Limit:      l.limit,
			Remaining:  0,
			ResetAt:    resetAt,
			RetryAfter: max(0, resetAt.Sub(now)),
		}
	}

	entry.hits = append(entry.hits, now)
	return Result{
		Allowed:   true,
		Limit:     l.limit,
		Remaining: l.limit - len(entry.hits),
		ResetAt:   entry.hits[0].Add(l.window),
	}
}

// cleanupLocked drops clients idle for longer than a window, their logs are empty by then
func (l *localLimiter) cleanupLocked(now time.Time) {
	for key, entry := range l.clients {
		if now.Sub(entry.lastSeen) > l.window {
			delete(l.clients, key)
		}
	}
}
