package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryLimiter_Window(t *testing.T) {
	limiter := NewMemoryLimiter()
	now := time.Now()
	limiter.now = func() time.Time { return now }

	assert.True(t, limiter.Allow("k", 2, time.Minute))
	assert.True(t, limiter.Allow("k", 2, time.Minute))
	assert.False(t, limiter.Allow("k", 2, time.Minute))
	assert.True(t, limiter.Allow("other", 2, time.Minute))

	now = now.Add(2 * time.Minute)
	assert.True(t, limiter.Allow("k", 2, time.Minute))
}

func TestRateLimit(t *testing.T) {
	r := gin.New()
	r.Use(ErrorHandler(discardLogger()))
	r.POST("/login", RateLimit(NewMemoryLimiter(), 2, time.Minute), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/login", nil))
		codes = append(codes, w.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestRateLimit_Disabled(t *testing.T) {
	r := gin.New()
	r.POST("/login", RateLimit(nil, 1, time.Minute), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/login", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}
}

func TestRedisLimiter_FailsOpen(t *testing.T) {
	var nilLimiter *RedisLimiter
	assert.True(t, nilLimiter.Allow("k", 1, time.Minute))

	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()

	limiter := NewRedisLimiter(client)
	assert.True(t, limiter.Allow("k", 1, time.Minute))
	assert.True(t, limiter.Allow("k", 1, time.Minute))
}

func TestMemoryLimiter_SweepsExpiredBuckets(t *testing.T) {
	limiter := NewMemoryLimiter()
	now := time.Now()
	limiter.now = func() time.Time { return now }

	for i := 0; i < 50; i++ {
		limiter.Allow(fmt.Sprintf("client-%d", i), 5, time.Minute)
	}
	assert.Equal(t, 50, limiter.Len())

	now = now.Add(2 * time.Minute)
	assert.True(t, limiter.Allow("fresh", 5, time.Minute))
	assert.Equal(t, 1, limiter.Len())
}

func TestRateLimit_IgnoresForwardedForFromUntrustedPeers(t *testing.T) {
	r := gin.New()
	require.NoError(t, r.SetTrustedProxies(nil))
	r.Use(ErrorHandler(discardLogger()))
	r.POST("/login", RateLimit(NewMemoryLimiter(), 3, time.Minute), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	limited := 0
	for i := 0; i < 10; i++ {
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.Header.Set("X-Forwarded-For", fmt.Sprintf("203.0.113.%d", i))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code == http.StatusTooManyRequests {
			limited++
		}
	}

	assert.Equal(t, 7, limited)
}
