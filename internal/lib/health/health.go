// Package health pings the service's dependencies. The /status endpoint and
// the scheduled checks share one Checker.
package health

import (
	"context"
	"time"

	"github.com/deppfellow/jobly/internal/server"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/rs/zerolog"
)

const (
	StatusHealthy   = "healthy"
	StatusUnhealthy = "unhealthy"
	// StatusDegraded means only optional dependencies failed.
	StatusDegraded = "degraded"

	CheckDatabase = "database"
	CheckRedis    = "redis"
)

// Check is one dependency probe. A failing Required check makes the whole
// report unhealthy.
type Check struct {
	Name     string
	Required bool
	Ping     func(ctx context.Context) error
}

type Result struct {
	Status       string `json:"status"`
	ResponseTime string `json:"response_time"`
	Error        string `json:"error,omitempty"`
}

type Report struct {
	Status      string            `json:"status"`
	Timestamp   time.Time         `json:"timestamp"`
	Environment string            `json:"environment"`
	Checks      map[string]Result `json:"checks"`
}

type Checker struct {
	checks  []Check
	timeout time.Duration
	env     string
	nrApp   *newrelic.Application
}

func NewChecker(env string, timeout time.Duration, nrApp *newrelic.Application, checks ...Check) *Checker {
	return &Checker{
		checks:  checks,
		timeout: timeout,
		env:     env,
		nrApp:   nrApp,
	}
}

// ForServer builds a Checker for the named dependencies of s. Redis is
// optional since the API keeps serving without it.
func ForServer(s *server.Server, names ...string) *Checker {
	var checks []Check
	for _, name := range names {
		switch name {
		case CheckDatabase:
			checks = append(checks, Check{
				Name:     CheckDatabase,
				Required: true,
				Ping:     s.DB.Pool.Ping,
			})
		case CheckRedis:
			if s.Redis == nil {
				continue
			}
			checks = append(checks, Check{
				Name: CheckRedis,
				Ping: func(ctx context.Context) error {
					return s.Redis.Ping(ctx).Err()
				},
			})
		}
	}

	var nrApp *newrelic.Application
	if s.LoggerService != nil {
		nrApp = s.LoggerService.GetApplication()
	}

	return NewChecker(s.Config.Primary.Env, s.Config.Observability.HealthChecks.Timeout, nrApp, checks...)
}

// Run executes every check in order, each under its own timeout, and logs
// the outcome on logger.
func (c *Checker) Run(ctx context.Context, logger *zerolog.Logger) Report {
	report := Report{
		Status:      StatusHealthy,
		Timestamp:   time.Now().UTC(),
		Environment: c.env,
		Checks:      make(map[string]Result, len(c.checks)),
	}

	for _, check := range c.checks {
		start := time.Now()
		err := c.ping(ctx, check)
		elapsed := time.Since(start)

		if err == nil {
			report.Checks[check.Name] = Result{Status: StatusHealthy, ResponseTime: elapsed.String()}
			logger.Debug().Str("check", check.Name).Dur("response_time", elapsed).Msg("health check passed")
			continue
		}

		report.Checks[check.Name] = Result{
			Status:       StatusUnhealthy,
			ResponseTime: elapsed.String(),
			Error:        err.Error(),
		}

		switch {
		case check.Required:
			report.Status = StatusUnhealthy
		case report.Status == StatusHealthy:
			report.Status = StatusDegraded
		}

		logger.Error().
			Err(err).
			Str("check", check.Name).
			Dur("response_time", elapsed).
			Msg("health check failed")

		if c.nrApp != nil {
			c.nrApp.RecordCustomEvent("HealthCheckError", map[string]any{
				"check_type":       check.Name,
				"error_type":       check.Name + "_unhealthy",
				"response_time_ms": elapsed.Milliseconds(),
				"error_message":    err.Error(),
			})
		}
	}

	return report
}

func (c *Checker) ping(ctx context.Context, check Check) error {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}
	return check.Ping(ctx)
}
