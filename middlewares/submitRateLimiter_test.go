package middlewares

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSubmitCounter struct {
	counts    map[string]int64
	expires   map[string]time.Duration
	incrErr   error
	expireErr error
}

func newFakeSubmitCounter() *fakeSubmitCounter {
	return &fakeSubmitCounter{
		counts:  map[string]int64{},
		expires: map[string]time.Duration{},
	}
}

func (f *fakeSubmitCounter) Incr(ctx context.Context, key string) *redis.IntCmd {
	if f.incrErr != nil {
		return redis.NewIntResult(0, f.incrErr)
	}
	f.counts[key]++
	return redis.NewIntResult(f.counts[key], nil)
}

func (f *fakeSubmitCounter) Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd {
	if f.expireErr != nil {
		return redis.NewBoolResult(false, f.expireErr)
	}
	f.expires[key] = expiration
	return redis.NewBoolResult(true, nil)
}

func (f *fakeSubmitCounter) TTL(ctx context.Context, key string) *redis.DurationCmd {
	return redis.NewDurationResult(f.expires[key], nil)
}

func setupLimitedRouter(limit int, counter SubmitCounter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/issues", SubmitRateLimiter(limit, counter), func(c *gin.Context) {
		c.JSON(http.StatusCreated, gin.H{"success": true})
	})
	return r
}

func submit(r *gin.Engine) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/issues", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSubmitRateLimiterUnderCap(t *testing.T) {
	counter := newFakeSubmitCounter()
	r := setupLimitedRouter(3, counter)

	for i := 0; i < 3; i++ {
		w := submit(r)
		assert.Equal(t, http.StatusCreated, w.Code)
	}

	// First submission arms the 24h window for that client
	require.Len(t, counter.expires, 1)
	for _, ttl := range counter.expires {
		assert.Equal(t, 24*time.Hour, ttl)
	}
}

func TestSubmitRateLimiterOverCap(t *testing.T) {
	counter := newFakeSubmitCounter()
	r := setupLimitedRouter(2, counter)

	submit(r)
	submit(r)
	w := submit(r)
	require.Equal(t, http.StatusTooManyRequests, w.Code)

	var resp struct {
		Error      string  `json:"error"`
		RetryAfter float64 `json:"retry_after"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "rate limit exceeded", resp.Error)
	assert.Equal(t, (24 * time.Hour).Seconds(), resp.RetryAfter)
}

func TestSubmitRateLimiterFailsClosedOnRedisError(t *testing.T) {
	counter := newFakeSubmitCounter()
	counter.incrErr = errors.New("connection refused")
	r := setupLimitedRouter(10, counter)

	w := submit(r)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestSubmitRateLimiterFailsClosedOnExpireError(t *testing.T) {
	counter := newFakeSubmitCounter()
	counter.expireErr = errors.New("connection refused")
	r := setupLimitedRouter(10, counter)

	w := submit(r)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
