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

const jobSelect = `id, title, salary, equity, company_handle`

type JobRepository struct {
	pool *pgxpool.Pool
}

func NewJobRepository(pool *pgxpool.Pool) *JobRepository {
	return &JobRepository{pool: pool}
}

func scanJob(row pgx.Row) (model.Job, error) {
	var j model.Job
	err := row.Scan(&j.ID, &j.Title, &j.Salary, &j.Equity, &j.CompanyHandle)
	return j, err
}

func noJob(id int) error {
	return errs.NewNotFoundError(fmt.Sprintf("No job: %d", id), true, nil)
}

// Create inserts a job for an existing company.
func (r *JobRepository) Create(ctx context.Context, j model.NewJob) (*model.Job, error) {
	row := r.pool.QueryRow(ctx,
		`INSERT INTO jobs (title, salary, equity, company_handle)
		 VALUES ($1, $2, $3, $4)
		 RETURNING `+jobSelect,
		j.Title, j.Salary, j.Equity, j.CompanyHandle,
	)

	job, err := scanJob(row)
	if err != nil {
		if sqlerr.ErrCode(err) == sqlerr.ForeignKeyViolation {
			return nil, errs.NewBadRequestError(fmt.Sprintf("No company: %s", j.CompanyHandle), true, nil, nil, nil)
		}
		return nil, fmt.Errorf("insert job: %w", err)
	}

	return &job, nil
}

func jobFilter(f model.JobFilter) *sqlb.Filter {
	filter := &sqlb.Filter{}
	if f.MinSalary > 0 {
		filter.Add("j.salary >= %s", f.MinSalary)
	}
	if f.HasEquity {
		filter.AddLiteral("j.equity > 0")
	}
	if f.Title != "" {
		filter.Add("j.title ILIKE %s", sqlb.Contains(f.Title))
	}
	return filter
}

// FindAll returns jobs matching f with their company name, ordered by
// company name and then title.
func (r *JobRepository) FindAll(ctx context.Context, f model.JobFilter) ([]model.JobListing, error) {
	filter := jobFilter(f)
	query := `SELECT j.id, j.title, j.salary, j.equity, j.company_handle, c.name
		FROM jobs j
		JOIN companies c ON c.handle = j.company_handle` +
		filter.Where() +
		` ORDER BY c.name, j.title, j.id`

	rows, err := r.pool.Query(ctx, query, filter.Args()...)
	if err != nil {
		return nil, fmt.Errorf("find jobs: %w", err)
	}

	jobs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.JobListing, error) {
		var l model.JobListing
		err := row.Scan(&l.ID, &l.Title, &l.Salary, &l.Equity, &l.CompanyHandle, &l.CompanyName)
		return l, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan jobs: %w", err)
	}

	return jobs, nil
}

// Get returns the job with its company embedded.
func (r *JobRepository) Get(ctx context.Context, id int) (*model.JobDetail, error) {
	var d model.JobDetail

	err := r.pool.QueryRow(ctx,
		`SELECT j.id, j.title, j.salary, j.equity, j.company_handle,
		        c.handle, c.name, c.description, c.num_employees, c.logo_url
		 FROM jobs j
		 JOIN companies c ON c.handle = j.company_handle
		 WHERE j.id = $1`, id,
	).Scan(
		&d.ID, &d.Title, &d.Salary, &d.Equity, &d.CompanyHandle,
		&d.Company.Handle, &d.Company.Name, &d.Company.Description, &d.Company.NumEmployees, &d.Company.LogoURL,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, noJob(id)
	}
	if err != nil {
		return nil, fmt.Errorf("get job: %w", err)
	}

	return &d, nil
}

// Update applies a partial update to title, salary and equity.
func (r *JobRepository) Update(ctx context.Context, id int, u model.JobUpdate) (*model.Job, error) {
	set, err := sqlb.ForPartialUpdate(u.Assignments(), model.JobColumns)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`UPDATE jobs SET %s WHERE id = %s RETURNING %s`,
		set.SetCols, set.NextPlaceholder(), jobSelect)

	job, err := scanJob(r.pool.QueryRow(ctx, query, append(set.Values, id)...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, noJob(id)
	}
	if err != nil {
		return nil, fmt.Errorf("update job: %w", err)
	}

	return &job, nil
}

func (r *JobRepository) Remove(ctx context.Context, id int) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete job: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return noJob(id)
	}
	return nil
}
