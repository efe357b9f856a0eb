package client

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// RateLimiter - ограничитель запросов к сервису скоринга.
// По умолчанию без ограничений, после ответа 429 блокируется на Retry-After.
type RateLimiter struct {
	limiter *rate.Limiter
	mu      sync.Mutex
	base    rate.Limit
	timer   *time.Timer
}

func NewRateLimiter() *RateLimiter {
	return NewRateLimiterWithLimit(rate.Inf, 1)
}

func NewRateLimiterWithLimit(limit rate.Limit, burst int) *RateLimiter {
	return &RateLimiter{
		limiter: rate.NewLimiter(limit, burst),
		base:    limit,
	}
}

func (rl *RateLimiter) Wait(ctx context.Context) error {
	return rl.limiter.Wait(ctx)
}

func (rl *RateLimiter) Update(limit rate.Limit, burst int) {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	rl.base = limit
	rl.limiter.SetLimit(limit)
	rl.limiter.SetBurst(burst)
}

// Blocked - лимитер заблокирован после 429
func (rl *RateLimiter) Blocked() bool {
	return rl.limiter.Limit() == 0
}

func (rl *RateLimiter) BlockFor(duration time.Duration) {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	rl.limiter.SetLimit(0)
	// повторный 429 продлевает блокировку, а не запускает второй таймер
	if rl.timer != nil {
		rl.timer.Stop()
	}
	rl.timer = time.AfterFunc(duration, func() {
		rl.mu.Lock()
		rl.limiter.SetLimit(rl.base)
		rl.mu.Unlock()
	})
}

func ParseRetryAfter(headers http.Header) time.Duration {
	retryAfter := headers.Get("Retry-After")
	if retryAfter == "" {
		return time.Minute // default
	}

	if seconds, err := strconv.Atoi(retryAfter); err == nil {
		return time.Duration(seconds) * time.Second
	}

	if t, err := http.ParseTime(retryAfter); err == nil {
		return time.Until(t)
	}

	return time.Minute // fallback
}
