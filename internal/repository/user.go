package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/deppfellow/jobly/internal/errs"
	"github.com/deppfellow/jobly/internal/lib/sqlb"
	"github.com/deppfellow/jobly/internal/model"
	"github.com/deppfellow/jobly/internal/sqlerr"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// userSelect never includes the password column.
const userSelect = `username, first_name, last_name, email, is_admin`

// Constraint names from the applications table, used to tell apart the
// reasons an application insert can fail.
const (
	applicationsPkey         = "applications_pkey"
	applicationsJobFkey      = "applications_job_id_fkey"
	applicationsUsernameFkey = "applications_username_fkey"
)

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func scanUser(row pgx.Row) (model.User, error) {
	var u model.User
	err := row.Scan(&u.Username, &u.FirstName, &u.LastName, &u.Email, &u.IsAdmin)
	return u, err
}

func noUser(username string) error {
	return errs.NewNotFoundError(fmt.Sprintf("No user: %s", username), true, nil)
}

// Register stores a new user. u.PasswordHash must already be hashed.
func (r *UserRepository) Register(ctx context.Context, u model.NewUser) (*model.User, error) {
	row := r.pool.QueryRow(ctx,
		`INSERT INTO users (username, password, first_name, last_name, email, is_admin)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING `+userSelect,
		u.Username, u.PasswordHash, u.FirstName, u.LastName, u.Email, u.IsAdmin,
	)

	user, err := scanUser(row)
	if err != nil {
		if sqlErr, ok := sqlerr.AsError(err); ok &&
			sqlErr.Code == sqlerr.UniqueViolation && sqlErr.ConstraintName == "users_pkey" {
			code := "USER_ALREADY_EXISTS"
			return nil, errs.NewBadRequestError(fmt.Sprintf("Duplicate username: %s", u.Username), true, &code, nil, nil)
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	return &user, nil
}

// GetCredentials returns the user together with the stored password hash.
// It is the only read that selects the password.
func (r *UserRepository) GetCredentials(ctx context.Context, username string) (*model.Credentials, error) {
	var c model.Credentials

	err := r.pool.QueryRow(ctx,
		`SELECT `+userSelect+`, password FROM users WHERE username = $1`, username,
	).Scan(&c.Username, &c.FirstName, &c.LastName, &c.Email, &c.IsAdmin, &c.PasswordHash)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, noUser(username)
	}
	if err != nil {
		return nil, fmt.Errorf("get credentials: %w", err)
	}

	return &c, nil
}

// FindAll returns every user ordered by username.
func (r *UserRepository) FindAll(ctx context.Context) ([]model.User, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+userSelect+` FROM users ORDER BY username`)
	if err != nil {
		return nil, fmt.Errorf("find users: %w", err)
	}

	users, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.User, error) {
		return scanUser(row)
	})
	if err != nil {
		return nil, fmt.Errorf("scan users: %w", err)
	}

	return users, nil
}

// Get returns the user with the ids of the jobs they applied to, in
// ascending order.
func (r *UserRepository) Get(ctx context.Context, username string) (*model.UserDetail, error) {
	var d model.UserDetail

	err := r.pool.QueryRow(ctx,
		`SELECT u.username, u.first_name, u.last_name, u.email, u.is_admin,
		        COALESCE(array_agg(a.job_id ORDER BY a.job_id) FILTER (WHERE a.job_id IS NOT NULL), '{}')
		 FROM users u
		 LEFT JOIN applications a ON a.username = u.username
		 WHERE u.username = $1
		 GROUP BY u.username`, username,
	).Scan(&d.Username, &d.FirstName, &d.LastName, &d.Email, &d.IsAdmin, &d.Jobs)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, noUser(username)
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	return &d, nil
}

// Update applies a partial update. A password in u must already be hashed.
func (r *UserRepository) Update(ctx context.Context, username string, u model.UserUpdate) (*model.User, error) {
	set, err := sqlb.ForPartialUpdate(u.Assignments(), model.UserColumns)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`UPDATE users SET %s WHERE username = %s RETURNING %s`,
		set.SetCols, set.NextPlaceholder(), userSelect)

	user, err := scanUser(r.pool.QueryRow(ctx, query, append(set.Values, username)...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, noUser(username)
	}
	if err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}

	return &user, nil
}

// Remove deletes the user and their applications.
func (r *UserRepository) Remove(ctx context.Context, username string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM users WHERE username = $1`, username)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return noUser(username)
	}
	return nil
}

// ApplyToJob records an application in a single insert. The constraints on
// the applications table decide the outcome: a missing job or user is
// NotFound, a repeated application is BadRequest.
func (r *UserRepository) ApplyToJob(ctx context.Context, username string, jobID int) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO applications (username, job_id) VALUES ($1, $2)`, username, jobID)
	if err == nil {
		return nil
	}

	if translated := applicationError(err, username, jobID); translated != nil {
		return translated
	}
	return fmt.Errorf("insert application: %w", err)
}

func applicationError(err error, username string, jobID int) error {
	sqlErr, ok := sqlerr.AsError(err)
	if !ok {
		return nil
	}

	switch {
	case sqlErr.Code == sqlerr.ForeignKeyViolation && sqlErr.ConstraintName == applicationsJobFkey:
		return noJob(jobID)
	case sqlErr.Code == sqlerr.ForeignKeyViolation && sqlErr.ConstraintName == applicationsUsernameFkey:
		return errs.NewNotFoundError(fmt.Sprintf("No username: %s", username), true, nil)
	case sqlErr.Code == sqlerr.UniqueViolation && sqlErr.ConstraintName == applicationsPkey:
		code := "ALREADY_APPLIED"
		return errs.NewBadRequestError("Already applied", true, &code, nil, nil)
	}
	return nil
}
