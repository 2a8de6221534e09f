package middleware

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	apierrors "github.com/yukikurage/trackhire-api/internal/errors"
)

// Limiter decides whether one more hit for key fits in the current window.
type Limiter interface {
	Allow(key string, limit int, window time.Duration) bool
}

// MemoryLimiter is a fixed-window limiter for a single process.
type MemoryLimiter struct {
	mu        sync.Mutex
	buckets   map[string]*rateBucket
	nextSweep time.Time
	now       func() time.Time
}

type rateBucket struct {
	count     int
	windowEnd time.Time
}

func NewMemoryLimiter() *MemoryLimiter {
	return &MemoryLimiter{
		buckets: make(map[string]*rateBucket),
		now:     time.Now,
	}
}

func (l *MemoryLimiter) Allow(key string, limit int, window time.Duration) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.After(l.nextSweep) {
		l.sweep(now)
		l.nextSweep = now.Add(window)
	}

	bucket, ok := l.buckets[key]
	if !ok || now.After(bucket.windowEnd) {
		l.buckets[key] = &rateBucket{count: 1, windowEnd: now.Add(window)}
		return true
	}
	if bucket.count >= limit {
		return false
	}
	bucket.count++
	return true
}

// sweep drops buckets whose window has ended. Callers hold l.mu.
func (l *MemoryLimiter) sweep(now time.Time) {
	for key, bucket := range l.buckets {
		if now.After(bucket.windowEnd) {
			delete(l.buckets, key)
		}
	}
}

// Len reports how many buckets are tracked.
func (l *MemoryLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.buckets)
}

// RateLimit throttles requests per client IP and route. A nil limiter or a
// non-positive limit disables it.
func RateLimit(limiter Limiter, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limiter == nil || limit <= 0 || window <= 0 {
			c.Next()
			return
		}

		key := "ratelimit:" + c.FullPath() + ":" + c.ClientIP()
		if !limiter.Allow(key, limit, window) {
			abortWithError(c, apierrors.ErrTooManyRequests)
			return
		}
		c.Next()
	}
}
