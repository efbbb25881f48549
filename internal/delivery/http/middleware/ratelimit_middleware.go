package middleware

import (
	"log/slog"
	"strconv"
	"sync"
	"time"

	"marvel/config"
	deliverycontext "marvel/internal/delivery/context"
	domainerrors "marvel/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

// Idle limiters are swept at most this often.
const limiterCleanupInterval = 5 * time.Minute

// RateLimitMiddleware limits requests per client IP with a token bucket.
type RateLimitMiddleware struct {
	logger *slog.Logger
	rate   rate.Limit
	burst  int

	limiters    sync.Map // client IP -> *rate.Limiter
	mu          sync.Mutex
	lastCleanup time.Time
	now         func() time.Time
}

// NewRateLimitMiddleware builds the limiter from auth.rateLimit.
func NewRateLimitMiddleware(logger *slog.Logger, cfg *config.Config) *RateLimitMiddleware {
	limits := cfg.Auth.RateLimit

	burst := limits.Burst
	if burst <= 0 {
		burst = limits.RequestsPerMinute
	}

	return &RateLimitMiddleware{
		logger:      logger,
		rate:        rate.Limit(float64(limits.RequestsPerMinute) / time.Minute.Seconds()),
		burst:       burst,
		lastCleanup: time.Now(),
		now:         time.Now,
	}
}

// Enabled reports whether a request budget is configured.
func (m *RateLimitMiddleware) Enabled() bool {
	return m.rate > 0
}

// Limit rejects requests over budget with 429 and a Retry-After header.
func (m *RateLimitMiddleware) Limit(next echo.HandlerFunc) echo.HandlerFunc {
	if !m.Enabled() {
		return next
	}

	return func(c echo.Context) error {
		key := c.RealIP()
		limiter := m.limiter(key)

		now := m.now()
		reservation := limiter.ReserveN(now, 1)
		if delay := reservation.DelayFrom(now); delay > 0 {
			reservation.CancelAt(now)

			retryAfter := max(int(delay.Seconds()), 1)
			c.Response().Header().Set("Retry-After", strconv.Itoa(retryAfter))

			deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).Warn("Rate limit exceeded",
				slog.String("remote_ip", key),
				slog.String("path", c.Request().URL.Path),
				slog.Int("retry_after", retryAfter),
			)

			return domainerrors.ErrTooManyRequests
		}

		return next(c)
	}
}

func (m *RateLimitMiddleware) limiter(key string) *rate.Limiter {
	if limiter, ok := m.limiters.Load(key); ok {
		return limiter.(*rate.Limiter)
	}

	actual, _ := m.limiters.LoadOrStore(key, rate.NewLimiter(m.rate, m.burst))
	m.maybeCleanup()

	return actual.(*rate.Limiter)
}

// maybeCleanup drops limiters whose bucket has refilled, i.e. idle clients.
func (m *RateLimitMiddleware) maybeCleanup() {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	if now.Sub(m.lastCleanup) < limiterCleanupInterval {
		return
	}
	m.lastCleanup = now

	m.limiters.Range(func(key, value any) bool {
		if value.(*rate.Limiter).TokensAt(now) >= float64(m.burst) {
			m.limiters.Delete(key)
		}

		return true
	})
}
