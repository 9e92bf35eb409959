package ratelimit

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Limiter defines the interface for rate limiting
type Limiter interface {
	Allow(userID string) bool
	// Prune drops buckets not used for longer than idle and returns how many went.
	Prune(idle time.Duration) int
}

type bucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// InMemoryLimiter keeps one token bucket per Slack user id.
type InMemoryLimiter struct {
	users map[string]*bucket
	mu    sync.Mutex
	r     rate.Limit
	b     int
	now   func() time.Time
}

// NewInMemoryLimiter creates a new rate limiter
// Example: NewInMemoryLimiter(1, 5*time.Second, 3) -> allows 1 search every 5 seconds, burst of 3
func NewInMemoryLimiter(requests int, per time.Duration, burst int) *InMemoryLimiter {
	if requests <= 0 {
		requests = 1
	}
	return &InMemoryLimiter{
		users: make(map[string]*bucket),
		r:     rate.Every(per / time.Duration(requests)),
		b:     burst,
		now:   time.Now,
	}
}

var _ Limiter = (*InMemoryLimiter)(nil)

// Allow checks if a user is allowed to perform an action
func (l *InMemoryLimiter) Allow(userID string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	b, exists := l.users[userID]
	if !exists {
		b = &bucket{limiter: rate.NewLimiter(l.r, l.b)}
		l.users[userID] = b
	}
	b.lastSeen = now

	return b.limiter.AllowN(now, 1)
}

func (l *InMemoryLimiter) Prune(idle time.Duration) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	cutoff := l.now().Add(-idle)
	removed := 0
	for id, b := range l.users {
		if b.lastSeen.Before(cutoff) {
			delete(l.users, id)
			removed++
		}
	}
	return removed
}

func (l *InMemoryLimiter) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.users)
}
