package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"catalog-service/config"
	"catalog-service/pkg/apperror"
)

// clientLimiter keeps a token-bucket limiter per client IP. Idle clients
// expire from the LRU so the table stays bounded.
type clientLimiter struct {
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newClientLimiter(cfg config.RateLimitConfig) *clientLimiter {
	maxClients := cfg.MaxClients
	if maxClients <= 0 {
		maxClients = 1000
	}
	ttl := cfg.ClientTTL
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	burst := cfg.RequestsPerMin / 10
	if burst < 1 {
		burst = 1
	}
	return &clientLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](maxClients, nil, ttl),
		rate:     rate.Limit(float64(cfg.RequestsPerMin) / 60.0),
		burst:    burst,
	}
}

func (rl *clientLimiter) allow(key string) bool {
	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(key, limiter)
	}
	return limiter.Allow()
}

// RateLimit rejects clients exceeding the configured request rate with a
// 429 application error through the terminal error handler.
func (m Middleware) RateLimit() gin.HandlerFunc {
	if m.limiter == nil {
		return func(c *gin.Context) { c.Next() }
	}

	return func(c *gin.Context) {
		if !m.limiter.allow(c.ClientIP()) {
			_ = c.Error(apperror.New(http.StatusTooManyRequests, "too many requests"))
			c.Abort()
			return
		}
		c.Next()
	}
}
