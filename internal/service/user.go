package service

import (
	"context"

	"github.com/deppfellow/jobly/internal/lib/job"
	"github.com/deppfellow/jobly/internal/model"
	"github.com/rs/zerolog"
)

type UserService struct {
	users  UserStore
	jobs   JobStore
	auth   *AuthService
	queue  EmailQueue
	logger *zerolog.Logger
}

func NewUserService(users UserStore, jobs JobStore, auth *AuthService, queue EmailQueue, logger *zerolog.Logger) *UserService {
	return &UserService{
		users:  users,
		jobs:   jobs,
		auth:   auth,
		queue:  queue,
		logger: logger,
	}
}

// Create is the admin path for adding accounts, admins included.
func (s *UserService) Create(ctx context.Context, r Registration) (*model.User, string, error) {
	return s.auth.Create(ctx, r)
}

func (s *UserService) FindAll(ctx context.Context) ([]model.User, error) {
	users, err := s.users.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []model.User{}
	}
	return users, nil
}

func (s *UserService) Get(ctx context.Context, username string) (*model.UserDetail, error) {
	user, err := s.users.Get(ctx, username)
	if err != nil {
		return nil, err
	}
	if user.Jobs == nil {
		user.Jobs = []int{}
	}
	return user, nil
}

// Update applies a partial update. A new password is hashed before it is
// stored.
func (s *UserService) Update(ctx context.Context, username string, u model.UserUpdate) (*model.User, error) {
	if u.Password != nil {
		hash, err := s.auth.HashPassword(*u.Password)
		if err != nil {
			return nil, err
		}
		u.Password = &hash
	}
	return s.users.Update(ctx, username, u)
}

func (s *UserService) Remove(ctx context.Context, username string) error {
	return s.users.Remove(ctx, username)
}

// ApplyToJob records the application and queues a confirmation email. The
// email is best effort: lookup or enqueue failures are logged only.
func (s *UserService) ApplyToJob(ctx context.Context, username string, jobID int) error {
	if err := s.users.ApplyToJob(ctx, username, jobID); err != nil {
		return err
	}

	logger := s.logger.With().Str("username", username).Int("job_id", jobID).Logger()

	user, err := s.users.Get(ctx, username)
	if err != nil {
		logger.Error().Err(err).Msg("failed to load applicant for confirmation email")
		return nil
	}
	detail, err := s.jobs.Get(ctx, jobID)
	if err != nil {
		logger.Error().Err(err).Msg("failed to load job for confirmation email")
		return nil
	}

	enqueueCtx, cancel := context.WithTimeout(ctx, enqueueTimeout)
	defer cancel()

	if err := s.queue.EnqueueApplicationEmail(enqueueCtx, job.ApplicationEmailPayload{
		To:          user.Email,
		FirstName:   user.FirstName,
		JobID:       jobID,
		JobTitle:    detail.Title,
		CompanyName: detail.Company.Name,
	}); err != nil {
		logger.Error().Err(err).Msg("failed to enqueue application email")
	}

	return nil
}
