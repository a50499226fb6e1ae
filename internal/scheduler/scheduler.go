// Package scheduler runs the periodic dependency health checks on a cron.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/deppfellow/jobly/internal/lib/health"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

type Scheduler struct {
	cron    *cron.Cron
	checker *health.Checker
	logger  *zerolog.Logger
	spec    string // cron spec, e.g. "@every 30s"
}

// New creates a Scheduler that runs checker every interval. A run that is
// still going when the next tick fires causes that tick to be skipped.
func New(checker *health.Checker, interval time.Duration, logger *zerolog.Logger) *Scheduler {
	cronLogger := newCronLogger(logger)

	return &Scheduler{
		cron: cron.New(
			cron.WithLogger(cronLogger),
			cron.WithChain(cron.Recover(cronLogger), cron.SkipIfStillRunning(cronLogger)),
		),
		checker: checker,
		logger:  logger,
		spec:    fmt.Sprintf("@every %s", interval),
	}
}

// Start registers the health check job and starts the cron in its own
// goroutine.
func (s *Scheduler) Start(ctx context.Context) error {
	if _, err := s.cron.AddFunc(s.spec, func() { s.runChecks(ctx) }); err != nil {
		return fmt.Errorf("cron.AddFunc: %w", err)
	}

	s.cron.Start()
	s.logger.Info().Str("spec", s.spec).Msg("health check scheduler started")

	return nil
}

// Stop stops the cron and waits for a running check to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	s.logger.Info().Msg("health check scheduler stopped")
}

func (s *Scheduler) runChecks(ctx context.Context) {
	report := s.checker.Run(ctx, s.logger)
	if report.Status != health.StatusHealthy {
		s.logger.Warn().Str("status", report.Status).Msg("scheduled health check reported problems")
	}
}

// cronLogger forwards cron's key/value logging to zerolog.
type cronLogger struct {
	logger *zerolog.Logger
}

func newCronLogger(logger *zerolog.Logger) cron.Logger {
	return &cronLogger{logger: logger}
}

func (l *cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug().Fields(keysAndValues).Msg(msg)
}

func (l *cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error().Err(err).Fields(keysAndValues).Msg(msg)
}
