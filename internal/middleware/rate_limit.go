package middleware

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/deppfellow/jobly/internal/errs"
	"github.com/deppfellow/jobly/internal/server"
	"github.com/labstack/echo/v4"
)

const rateLimitKeyPrefix = "jobly:ratelimit"

// RateLimitMiddleware enforces a fixed-window request limit per client IP,
// counted in Redis.
type RateLimitMiddleware struct {
	server *server.Server
	now    func() time.Time
}

func NewRateLimitMiddleware(s *server.Server) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		server: s,
		now:    time.Now,
	}
}

// RecordRateLimitHit reports a rejected request to New Relic.
func (r *RateLimitMiddleware) RecordRateLimitHit(endpoint string) {
	if r.server.LoggerService != nil && r.server.LoggerService.GetApplication() != nil {
		r.server.LoggerService.GetApplication().RecordCustomEvent("RateLimitHit", map[string]any{
			"endpoint": endpoint,
		})
	}
}

func (r *RateLimitMiddleware) windowKey(ip string, window time.Duration) string {
	bucket := r.now().UnixNano() / int64(window)
	return fmt.Sprintf("%s:%s:%d", rateLimitKeyPrefix, ip, bucket)
}

// increment bumps the counter of the current window and returns it. The
// key expires with the window.
func (r *RateLimitMiddleware) increment(ctx context.Context, key string, window time.Duration) (int64, error) {
	pipe := r.server.Redis.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, window)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, err
	}
	return incr.Val(), nil
}

// Limit returns the limiting middleware. It is a pass-through when rate
// limiting is disabled, and it fails open when Redis cannot be reached.
func (r *RateLimitMiddleware) Limit() echo.MiddlewareFunc {
	cfg := r.server.Config.RateLimit
	if cfg == nil || !cfg.Enabled || r.server.Redis == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return next
		}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx, cancel := context.WithTimeout(c.Request().Context(), 500*time.Millisecond)
			defer cancel()

			count, err := r.increment(ctx, r.windowKey(c.RealIP(), cfg.Window), cfg.Window)
			if err != nil {
				GetLogger(c).Warn().Err(err).Msg("rate limit check failed, allowing request")
				return next(c)
			}

			remaining := max(int64(cfg.Requests)-count, 0)
			header := c.Response().Header()
			header.Set("X-RateLimit-Limit", strconv.Itoa(cfg.Requests))
			header.Set("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

			if count > int64(cfg.Requests) {
				GetLogger(c).Warn().
					Str("ip", c.RealIP()).
					Int64("count", count).
					Msg("rate limit exceeded")
				r.RecordRateLimitHit(c.Path())
				header.Set("Retry-After", strconv.Itoa(int(cfg.Window.Seconds())))
				return errs.NewTooManyRequestsError("Too many requests, slow down")
			}

			return next(c)
		}
	}
}
