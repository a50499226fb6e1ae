package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/deppfellow/jobly/internal/errs"
	"github.com/deppfellow/jobly/internal/lib/job"
	"github.com/deppfellow/jobly/internal/lib/token"
	"github.com/deppfellow/jobly/internal/model"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

const invalidCredentials = "Invalid username/password"

// Registration is the input of a new account. Password is plaintext.
type Registration struct {
	Username  string
	Password  string
	FirstName string
	LastName  string
	Email     string
	IsAdmin   bool
}

type AuthService struct {
	users  UserStore
	tokens *token.Manager
	queue  EmailQueue
	logger *zerolog.Logger

	cost int
	// dummyHash is compared against when the username is unknown so both
	// failure paths cost one bcrypt comparison.
	dummyHash []byte
}

func NewAuthService(users UserStore, tokens *token.Manager, queue EmailQueue, cost int, logger *zerolog.Logger) (*AuthService, error) {
	dummy, err := bcrypt.GenerateFromPassword([]byte("jobly-unknown-user"), cost)
	if err != nil {
		return nil, fmt.Errorf("prepare dummy hash: %w", err)
	}

	return &AuthService{
		users:     users,
		tokens:    tokens,
		queue:     queue,
		logger:    logger,
		cost:      cost,
		dummyHash: dummy,
	}, nil
}

func (a *AuthService) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), a.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// Authenticate checks username and password. Unknown users and wrong
// passwords fail with the same Unauthorized error.
func (a *AuthService) Authenticate(ctx context.Context, username, password string) (*model.User, error) {
	creds, err := a.users.GetCredentials(ctx, username)
	if err != nil && !errs.IsNotFound(err) {
		return nil, err
	}

	hash := a.dummyHash
	if creds != nil {
		hash = []byte(creds.PasswordHash)
	}

	if cmpErr := bcrypt.CompareHashAndPassword(hash, []byte(password)); cmpErr != nil || creds == nil {
		if cmpErr != nil && !errors.Is(cmpErr, bcrypt.ErrMismatchedHashAndPassword) {
			a.logger.Warn().Err(cmpErr).Str("username", username).Msg("stored password hash is unusable")
		}
		return nil, errs.NewUnauthorizedError(invalidCredentials, true)
	}

	return &creds.User, nil
}

// Token authenticates and returns a signed token.
func (a *AuthService) Token(ctx context.Context, username, password string) (string, error) {
	user, err := a.Authenticate(ctx, username, password)
	if err != nil {
		return "", err
	}
	return a.tokens.Issue(*user)
}

// Create stores a new account and returns it with a token for it. A welcome
// email is queued on a best-effort basis.
func (a *AuthService) Create(ctx context.Context, r Registration) (*model.User, string, error) {
	hash, err := a.HashPassword(r.Password)
	if err != nil {
		return nil, "", err
	}

	user, err := a.users.Register(ctx, model.NewUser{
		Username:     r.Username,
		PasswordHash: hash,
		FirstName:    r.FirstName,
		LastName:     r.LastName,
		Email:        r.Email,
		IsAdmin:      r.IsAdmin,
	})
	if err != nil {
		return nil, "", err
	}

	signed, err := a.tokens.Issue(*user)
	if err != nil {
		return nil, "", err
	}

	enqueueCtx, cancel := context.WithTimeout(ctx, enqueueTimeout)
	defer cancel()

	if err := a.queue.EnqueueWelcomeEmail(enqueueCtx, job.WelcomeEmailPayload{
		To:        user.Email,
		Username:  user.Username,
		FirstName: user.FirstName,
	}); err != nil {
		a.logger.Error().Err(err).Str("username", user.Username).Msg("failed to enqueue welcome email")
	}

	return user, signed, nil
}

// Register is self sign-up. The account is never an admin.
func (a *AuthService) Register(ctx context.Context, r Registration) (string, error) {
	r.IsAdmin = false
	_, signed, err := a.Create(ctx, r)
	return signed, err
}
