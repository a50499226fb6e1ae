package repository

import (
	"github.com/deppfellow/jobly/internal/server"
)

// Repositories is the container for all repository instances.
type Repositories struct {
	Company *CompanyRepository
	Job     *JobRepository
	User    *UserRepository
}

// NewRepositories builds every repository on top of the server's pool.
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Company: NewCompanyRepository(s.DB.Pool),
		Job:     NewJobRepository(s.DB.Pool),
		User:    NewUserRepository(s.DB.Pool),
	}
}
