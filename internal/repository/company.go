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

const companySelect = `handle, name, description, num_employees, logo_url`

type CompanyRepository struct {
	pool *pgxpool.Pool
}

func NewCompanyRepository(pool *pgxpool.Pool) *CompanyRepository {
	return &CompanyRepository{pool: pool}
}

func scanCompany(row pgx.Row) (model.Company, error) {
	var c model.Company
	err := row.Scan(&c.Handle, &c.Name, &c.Description, &c.NumEmployees, &c.LogoURL)
	return c, err
}

func noCompany(handle string) error {
	return errs.NewNotFoundError(fmt.Sprintf("No company: %s", handle), true, nil)
}

// Create inserts c. A second company with the same handle is rejected with
// BadRequest and leaves the existing row untouched.
func (r *CompanyRepository) Create(ctx context.Context, c model.Company) (*model.Company, error) {
	row := r.pool.QueryRow(ctx,
		`INSERT INTO companies (handle, name, description, num_employees, logo_url)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING `+companySelect,
		c.Handle, c.Name, c.Description, c.NumEmployees, c.LogoURL,
	)

	company, err := scanCompany(row)
	if err != nil {
		if sqlErr, ok := sqlerr.AsError(err); ok &&
			sqlErr.Code == sqlerr.UniqueViolation && sqlErr.ConstraintName == "companies_pkey" {
			code := "COMPANY_ALREADY_EXISTS"
			return nil, errs.NewBadRequestError(fmt.Sprintf("Duplicate company: %s", c.Handle), true, &code, nil, nil)
		}
		return nil, fmt.Errorf("insert company: %w", err)
	}

	return &company, nil
}

// companyFilter turns f into WHERE predicates. The caller has already
// checked that MinEmployees <= MaxEmployees.
func companyFilter(f model.CompanyFilter) *sqlb.Filter {
	filter := &sqlb.Filter{}
	if f.MinEmployees > 0 {
		filter.Add("num_employees >= %s", f.MinEmployees)
	}
	if f.MaxEmployees > 0 {
		filter.Add("num_employees <= %s", f.MaxEmployees)
	}
	if f.Name != "" {
		filter.Add("name ILIKE %s", sqlb.Contains(f.Name))
	}
	return filter
}

// FindAll returns every company matching f, ordered by name.
func (r *CompanyRepository) FindAll(ctx context.Context, f model.CompanyFilter) ([]model.Company, error) {
	if f.MinEmployees > 0 && f.MaxEmployees > 0 && f.MinEmployees > f.MaxEmployees {
		return nil, errs.NewBadRequestError("Min employees cannot be greater than max", true, nil, nil, nil)
	}

	filter := companyFilter(f)
	query := `SELECT ` + companySelect + ` FROM companies` + filter.Where() + ` ORDER BY name`

	rows, err := r.pool.Query(ctx, query, filter.Args()...)
	if err != nil {
		return nil, fmt.Errorf("find companies: %w", err)
	}

	companies, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.Company, error) {
		return scanCompany(row)
	})
	if err != nil {
		return nil, fmt.Errorf("scan companies: %w", err)
	}

	return companies, nil
}

// Get returns the company with its jobs. Both reads run in one read-only
// transaction so the job list matches the company row.
func (r *CompanyRepository) Get(ctx context.Context, handle string) (*model.CompanyDetail, error) {
	var detail model.CompanyDetail

	err := pgx.BeginTxFunc(ctx, r.pool, pgx.TxOptions{AccessMode: pgx.ReadOnly, IsoLevel: pgx.RepeatableRead}, func(tx pgx.Tx) error {
		company, err := scanCompany(tx.QueryRow(ctx,
			`SELECT `+companySelect+` FROM companies WHERE handle = $1`, handle))
		if err != nil {
			return err
		}
		detail.Company = company

		rows, err := tx.Query(ctx,
			`SELECT id, title, salary, equity FROM jobs WHERE company_handle = $1 ORDER BY id`, handle)
		if err != nil {
			return err
		}

		detail.Jobs, err = pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.CompanyJob, error) {
			var j model.CompanyJob
			err := row.Scan(&j.ID, &j.Title, &j.Salary, &j.Equity)
			return j, err
		})
		return err
	})
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, noCompany(handle)
	}
	if err != nil {
		return nil, fmt.Errorf("get company: %w", err)
	}

	return &detail, nil
}

// Update applies a partial update. Fields left nil in u are untouched.
func (r *CompanyRepository) Update(ctx context.Context, handle string, u model.CompanyUpdate) (*model.Company, error) {
	set, err := sqlb.ForPartialUpdate(u.Assignments(), model.CompanyColumns)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`UPDATE companies SET %s WHERE handle = %s RETURNING %s`,
		set.SetCols, set.NextPlaceholder(), companySelect)

	company, err := scanCompany(r.pool.QueryRow(ctx, query, append(set.Values, handle)...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, noCompany(handle)
	}
	if err != nil {
		return nil, fmt.Errorf("update company: %w", err)
	}

	return &company, nil
}

// Remove deletes the company. Its jobs and their applications go with it
// (ON DELETE CASCADE).
func (r *CompanyRepository) Remove(ctx context.Context, handle string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM companies WHERE handle = $1`, handle)
	if err != nil {
		return fmt.Errorf("delete company: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return noCompany(handle)
	}
	return nil
}
