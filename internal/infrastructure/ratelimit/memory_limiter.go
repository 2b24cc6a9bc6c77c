package ratelimit

import (
	"context"
	"sync"
	"time"
)

type window struct {
	count   int
	resetAt time.Time
}

// MemoryLimiter keeps the windows in process memory. It is only correct for a
// single replica. Expired windows are swept at most once per period, so a
// window may outlive its reset by up to one period.
type MemoryLimiter struct {
	mu        sync.Mutex
	times     int
	period    time.Duration
	windows   map[string]*window
	nextSweep time.Time
	now       func() time.Time
}

// NewMemoryLimiter allows times hits per period for each key
func NewMemoryLimiter(times int, period time.Duration) *MemoryLimiter {
	return &MemoryLimiter{
		times:   times,
		period:  period,
		windows: make(map[string]*window),
		now:     time.Now,
	}
}

// Allow implements Limiter
func (l *MemoryLimiter) Allow(_ context.Context, key string) (time.Duration, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	w, ok := l.windows[key]
	if !ok || !now.Before(w.resetAt) {
		l.evictExpired(now)
		l.windows[key] = &window{count: 1, resetAt: now.Add(l.period)}
		return 0, nil
	}

	if w.count >= l.times {
		return w.resetAt.Sub(now), nil
	}
	w.count++
	return 0, nil
}

func (l *MemoryLimiter) evictExpired(now time.Time) {
	if now.Before(l.nextSweep) {
		return
	}
	l.nextSweep = now.Add(l.period)

	for key, w := range l.windows {
		if !now.Before(w.resetAt) {
			delete(l.windows, key)
		}
	}
}
