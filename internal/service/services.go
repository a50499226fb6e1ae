package service

import (
	"github.com/deppfellow/jobly/internal/lib/job"
	"github.com/deppfellow/jobly/internal/lib/token"
	"github.com/deppfellow/jobly/internal/repository"
	"github.com/deppfellow/jobly/internal/server"
)

type Services struct {
	Auth    *AuthService
	Company *CompanyService
	Job     *JobService
	User    *UserService
	Tasks   *job.JobService
}

func NewService(s *server.Server, repos *repository.Repositories) (*Services, error) {
	authService, err := NewAuthService(
		repos.User,
		token.NewManager(s.Config.Auth),
		s.Job,
		s.Config.Auth.BcryptCost,
		s.Logger,
	)
	if err != nil {
		return nil, err
	}

	return &Services{
		Auth:    authService,
		Company: NewCompanyService(repos.Company),
		Job:     NewJobService(repos.Job),
		User:    NewUserService(repos.User, repos.Job, authService, s.Job, s.Logger),
		Tasks:   s.Job,
	}, nil
}
