package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/deppfellow/jobly/internal/config"
	"github.com/deppfellow/jobly/internal/errs"
	"github.com/deppfellow/jobly/internal/lib/job"
	"github.com/deppfellow/jobly/internal/lib/token"
	"github.com/deppfellow/jobly/internal/model"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

type fakeUsers struct {
	creds   map[string]model.Credentials
	applied map[string][]int
	updates []model.UserUpdate
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{creds: map[string]model.Credentials{}, applied: map[string][]int{}}
}

func (f *fakeUsers) Register(_ context.Context, u model.NewUser) (*model.User, error) {
	if _, ok := f.creds[u.Username]; ok {
		return nil, errs.NewBadRequestError("Duplicate username: "+u.Username, true, nil, nil, nil)
	}
	user := model.User{Username: u.Username, FirstName: u.FirstName, LastName: u.LastName, Email: u.Email, IsAdmin: u.IsAdmin}
	f.creds[u.Username] = model.Credentials{User: user, PasswordHash: u.PasswordHash}
	return &user, nil
}

func (f *fakeUsers) GetCredentials(_ context.Context, username string) (*model.Credentials, error) {
	c, ok := f.creds[username]
	if !ok {
		return nil, errs.NewNotFoundError("No user: "+username, true, nil)
	}
	return &c, nil
}

func (f *fakeUsers) FindAll(context.Context) ([]model.User, error) { return nil, nil }

func (f *fakeUsers) Get(_ context.Context, username string) (*model.UserDetail, error) {
	c, ok := f.creds[username]
	if !ok {
		return nil, errs.NewNotFoundError("No user: "+username, true, nil)
	}
	return &model.UserDetail{User: c.User, Jobs: f.applied[username]}, nil
}

func (f *fakeUsers) Update(_ context.Context, username string, u model.UserUpdate) (*model.User, error) {
	f.updates = append(f.updates, u)
	c := f.creds[username]
	return &c.User, nil
}

func (f *fakeUsers) Remove(context.Context, string) error { return nil }

func (f *fakeUsers) ApplyToJob(_ context.Context, username string, jobID int) error {
	if _, ok := f.creds[username]; !ok {
		return errs.NewNotFoundError("No username: "+username, true, nil)
	}
	f.applied[username] = append(f.applied[username], jobID)
	return nil
}

type fakeJobs struct{}

func (fakeJobs) Create(context.Context, model.NewJob) (*model.Job, error) { return nil, nil }
func (fakeJobs) FindAll(context.Context, model.JobFilter) ([]model.JobListing, error) {
	return nil, nil
}
func (fakeJobs) Get(_ context.Context, id int) (*model.JobDetail, error) {
	if id != 7 {
		return nil, errs.NewNotFoundError(fmt.Sprintf("No job: %d", id), true, nil)
	}
	return &model.JobDetail{
		Job:     model.Job{ID: 7, Title: "Engineer", CompanyHandle: "acme"},
		Company: model.Company{Handle: "acme", Name: "Acme"},
	}, nil
}
func (fakeJobs) Update(context.Context, int, model.JobUpdate) (*model.Job, error) { return nil, nil }
func (fakeJobs) Remove(context.Context, int) error                                { return nil }

type fakeQueue struct {
	welcome     []job.WelcomeEmailPayload
	application []job.ApplicationEmailPayload
	err         error

	// budgets records the time left on each enqueue context, or -1 when it
	// had no deadline.
	budgets []time.Duration
}

func (q *fakeQueue) record(ctx context.Context) {
	deadline, ok := ctx.Deadline()
	if !ok {
		q.budgets = append(q.budgets, -1)
		return
	}
	q.budgets = append(q.budgets, time.Until(deadline))
}

func (q *fakeQueue) EnqueueWelcomeEmail(ctx context.Context, p job.WelcomeEmailPayload) error {
	q.record(ctx)
	q.welcome = append(q.welcome, p)
	return q.err
}

func (q *fakeQueue) EnqueueApplicationEmail(ctx context.Context, p job.ApplicationEmailPayload) error {
	q.record(ctx)
	q.application = append(q.application, p)
	return q.err
}

var errQueueDown = errors.New("redis unavailable")

func newTestAuth(users UserStore, queue EmailQueue) (*AuthService, *token.Manager) {
	logger := zerolog.Nop()
	tokens := token.NewManager(config.AuthConfig{SecretKey: "test", TokenTTL: time.Hour})
	auth, err := NewAuthService(users, tokens, queue, bcrypt.MinCost, &logger)
	if err != nil {
		panic(err)
	}
	return auth, tokens
}
