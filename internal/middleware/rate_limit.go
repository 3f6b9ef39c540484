package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/skillmap/skillmap/internal/app/models/dto"
	"github.com/skillmap/skillmap/internal/pkg/metrics"
	"golang.org/x/time/rate"
)

// maxTrackedClients bounds the limiter cache
const maxTrackedClients = 10000

// limiterCache keeps one token bucket per key
type limiterCache[K comparable] struct {
	limiters map[K]*rate.Limiter
	mu       sync.RWMutex
	rate     rate.Limit
	burst    int
	maxSize  int
}

func newLimiterCache[K comparable](rps float64, burst, maxSize int) *limiterCache[K] {
	return &limiterCache[K]{
		limiters: make(map[K]*rate.Limiter),
		rate:     rate.Limit(rps),
		burst:    burst,
		maxSize:  maxSize,
	}
}

// get returns the limiter for key, creating one if needed
func (lc *limiterCache[K]) get(key K) *rate.Limiter {
	lc.mu.RLock()
	limiter, exists := lc.limiters[key]
	lc.mu.RUnlock()

	if exists {
		return limiter
	}

	lc.mu.Lock()
	defer lc.mu.Unlock()

	// Double-check after acquiring write lock
	if limiter, exists = lc.limiters[key]; exists {
		return limiter
	}

	if len(lc.limiters) >= lc.maxSize {
		lc.evictLocked()
	}
	limiter = rate.NewLimiter(lc.rate, lc.burst)
	lc.limiters[key] = limiter
	return limiter
}

// evictLocked drops every bucket that has refilled completely, since a new
// bucket for that key would be identical. When none has, the fullest bucket
// goes, so throttled clients keep their state. Caller holds mu.
func (lc *limiterCache[K]) evictLocked() {
	var (
		victim K
		found  bool
		most   float64
	)
	now := time.Now()
	for key, limiter := range lc.limiters {
		tokens := limiter.TokensAt(now)
		if tokens >= float64(lc.burst) {
			delete(lc.limiters, key)
			continue
		}
		if !found || tokens > most {
			victim, most, found = key, tokens, true
		}
	}
	if len(lc.limiters) >= lc.maxSize && found {
		delete(lc.limiters, victim)
	}
}

// LoginRateLimiter throttles credential endpoints per client IP. The IP comes
// from gin's ClientIP, so forwarding headers only count when the engine trusts
// the proxy that set them.
type LoginRateLimiter struct {
	cache   *limiterCache[string]
	logger  zerolog.Logger
	metrics *metrics.Metrics
}

// NewLoginRateLimiter creates a limiter allowing rps requests per second with the given burst
func NewLoginRateLimiter(rps float64, burst int, logger zerolog.Logger, m *metrics.Metrics) *LoginRateLimiter {
	if burst < 1 {
		burst = 1
	}
	return &LoginRateLimiter{
		cache:   newLimiterCache[string](rps, burst, maxTrackedClients),
		logger:  logger.With().Str("component", "rate_limiter").Logger(),
		metrics: m,
	}
}

// Middleware rejects requests over the limit with 429
func (rl *LoginRateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		if !rl.cache.get(ip).Allow() {
			rl.metrics.RecordAuthFailure(metrics.ReasonRateLimit)
			rl.logger.Warn().Str("clientIP", ip).Str("path", c.Request.URL.Path).Msg("Rate limit exceeded")
			c.AbortWithStatusJSON(http.StatusTooManyRequests,
				dto.NewErrorResponse(dto.ErrorCodeTooManyRequests, "Too many requests. Please wait a moment and try again."))
			return
		}
		c.Next()
	}
}
