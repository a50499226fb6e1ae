// Package job runs background work on Asynq, a Redis-backed task queue.
// The API enqueues tasks through JobService.Client; the worker server
// started by JobService.Start consumes them.
package job

import (
	"context"

	"github.com/deppfellow/jobly/internal/config"
	"github.com/deppfellow/jobly/internal/lib/email"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
)

type JobService struct {
	Client *asynq.Client

	server *asynq.Server
	mailer Mailer
	logger *zerolog.Logger
}

func NewJobService(logger *zerolog.Logger, cfg *config.Config) *JobService {
	redisAddr := cfg.Redis.Address

	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr: redisAddr,
	})

	// Out of 10 workers roughly 6 serve critical, 3 default and 1 low.
	server := asynq.NewServer(
		asynq.RedisClientOpt{Addr: redisAddr},
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"critical": 6,
				"default":  3,
				"low":      1,
			},
			Logger:   newAsynqLogger(logger),
			LogLevel: asynq.WarnLevel,
		},
	)

	return &JobService{
		Client: client,
		server: server,
		mailer: email.NewClient(cfg, logger),
		logger: logger,
	}
}

func (j *JobService) mux() *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.HandleFunc(TaskWelcome, j.handleWelcomeEmailTask)
	mux.HandleFunc(TaskApplication, j.handleApplicationEmailTask)
	return mux
}

// Start registers the task handlers and starts the workers. It returns once
// the workers are running.
func (j *JobService) Start() error {
	j.logger.Info().Msg("Starting background job server")
	return j.server.Start(j.mux())
}

func (j *JobService) Stop() {
	j.logger.Info().Msg("Stopping background job server")
	j.server.Shutdown()
	j.Client.Close()
}

// EnqueueWelcomeEmail queues the welcome email for a new user.
func (j *JobService) EnqueueWelcomeEmail(ctx context.Context, p WelcomeEmailPayload) error {
	task, err := NewWelcomeEmailTask(p)
	if err != nil {
		return err
	}
	_, err = j.Client.EnqueueContext(ctx, task)
	return err
}

// EnqueueApplicationEmail queues the confirmation for a job application.
func (j *JobService) EnqueueApplicationEmail(ctx context.Context, p ApplicationEmailPayload) error {
	task, err := NewApplicationEmailTask(p)
	if err != nil {
		return err
	}
	_, err = j.Client.EnqueueContext(ctx, task)
	return err
}
