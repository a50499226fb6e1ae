package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/deppfellow/jobly/internal/lib/health"
	"github.com/deppfellow/jobly/internal/server"
	"github.com/labstack/echo/v4"
)

// HealthHandler serves /status for load balancers and uptime monitors.
type HealthHandler struct {
	Handler
	checker *health.Checker
}

func NewHealthHandler(s *server.Server) *HealthHandler {
	return &HealthHandler{
		Handler: NewHandler(s),
		checker: health.ForServer(s, health.CheckDatabase, health.CheckRedis),
	}
}

// CheckHealth answers 200 while the database is reachable (a Redis outage
// only degrades the report) and 503 otherwise.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()
	logger := h.logger(c).With().
		Str("operation", "health_check").
		Logger()

	report := h.checker.Run(c.Request().Context(), &logger)

	status := http.StatusOK
	if report.Status == health.StatusUnhealthy {
		status = http.StatusServiceUnavailable
		logger.Warn().Dur("total_duration", time.Since(start)).Msg("health check failed")
	}

	if err := c.JSON(status, report); err != nil {
		return fmt.Errorf("failed to write JSON response: %w", err)
	}
	return nil
}
