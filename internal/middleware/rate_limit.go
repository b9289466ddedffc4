package middleware

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"workout-core/pkg/response"
)

// RateLimit throttles per client IP. Limiters are kept in an expiring LRU
// so idle clients age out instead of accumulating.
func (m Middleware) RateLimit() gin.HandlerFunc {
	if !m.cfg.RateLimit.Enabled {
		return func(c *gin.Context) { c.Next() }
	}

	rl := newRateLimiter(m.cfg.RateLimit.RequestsPerMin)
	return func(c *gin.Context) {
		if err := rl.Allow(c.ClientIP()); err != nil {
			response.TooManyRequests(c)
			c.Abort()
			return
		}
		c.Next()
	}
}

type rateLimiter struct {
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newRateLimiter(requestsPerMin int) *rateLimiter {
	burst := requestsPerMin / 10
	if burst < 1 {
		burst = 1
	}
	return &rateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](1000, nil, 5*time.Minute),
		rate:     rate.Limit(float64(requestsPerMin) / 60.0),
		burst:    burst,
	}
}

func (rl *rateLimiter) Allow(key string) error {
	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(key, limiter)
	}

	if !limiter.Allow() {
		return fmt.Errorf("rate limit exceeded for %s", key)
	}
	return nil
}
