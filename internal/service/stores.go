package service

import (
	"context"
	"time"

	"github.com/deppfellow/jobly/internal/lib/job"
	"github.com/deppfellow/jobly/internal/model"
)

// The repository methods each service depends on. The pgx repositories in
// internal/repository satisfy them.

type CompanyStore interface {
	Create(ctx context.Context, c model.Company) (*model.Company, error)
	FindAll(ctx context.Context, f model.CompanyFilter) ([]model.Company, error)
	Get(ctx context.Context, handle string) (*model.CompanyDetail, error)
	Update(ctx context.Context, handle string, u model.CompanyUpdate) (*model.Company, error)
	Remove(ctx context.Context, handle string) error
}

type JobStore interface {
	Create(ctx context.Context, j model.NewJob) (*model.Job, error)
	FindAll(ctx context.Context, f model.JobFilter) ([]model.JobListing, error)
	Get(ctx context.Context, id int) (*model.JobDetail, error)
	Update(ctx context.Context, id int, u model.JobUpdate) (*model.Job, error)
	Remove(ctx context.Context, id int) error
}

type UserStore interface {
	Register(ctx context.Context, u model.NewUser) (*model.User, error)
	GetCredentials(ctx context.Context, username string) (*model.Credentials, error)
	FindAll(ctx context.Context) ([]model.User, error)
	Get(ctx context.Context, username string) (*model.UserDetail, error)
	Update(ctx context.Context, username string, u model.UserUpdate) (*model.User, error)
	Remove(ctx context.Context, username string) error
	ApplyToJob(ctx context.Context, username string, jobID int) error
}

// enqueueTimeout bounds each email enqueue made on the request path.
const enqueueTimeout = 2 * time.Second

// EmailQueue enqueues transactional emails. Implemented by job.JobService.
type EmailQueue interface {
	EnqueueWelcomeEmail(ctx context.Context, p job.WelcomeEmailPayload) error
	EnqueueApplicationEmail(ctx context.Context, p job.ApplicationEmailPayload) error
}
