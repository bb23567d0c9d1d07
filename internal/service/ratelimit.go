package service

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// LoginLimiter throttles login attempts per client key (usually the remote IP).
// It is safe for concurrent use. Idle keys are dropped after ten minutes.
type LoginLimiter struct {
	mu       sync.Mutex
	limiters map[string]*clientLimiter
	limit    rate.Limit
	burst    int
}

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewLoginLimiter allows burst attempts per key, refilling at perSecond.
// It starts a background goroutine that removes stale keys.
func NewLoginLimiter(perSecond float64, burst int) *LoginLimiter {
	l := &LoginLimiter{
		limiters: make(map[string]*clientLimiter),
		limit:    rate.Limit(perSecond),
		burst:    burst,
	}
	go l.cleanup()
	return l
}

// Allow reports whether key may attempt another login now.
func (l *LoginLimiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	c, ok := l.limiters[key]
	if !ok {
		c = &clientLimiter{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.limiters[key] = c
	}
	c.lastSeen = time.Now()
	return c.limiter.Allow()
}

func (l *LoginLimiter) cleanup() {
	ticker := time.NewTicker(5 * time.Minute)
	for range ticker.C {
		l.mu.Lock()
		cutoff := time.Now().Add(-10 * time.Minute)
		for key, c := range l.limiters {
			if c.lastSeen.Before(cutoff) {
				delete(l.limiters, key)
			}
		}
		l.mu.Unlock()
	}
}
