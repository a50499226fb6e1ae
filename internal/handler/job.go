package handler

import (
	"github.com/deppfellow/jobly/internal/lib/sqlb"
	"github.com/deppfellow/jobly/internal/model"
	"github.com/deppfellow/jobly/internal/server"
	"github.com/deppfellow/jobly/internal/service"
	"github.com/deppfellow/jobly/internal/validation"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type JobHandler struct {
	Handler
	jobs *service.JobService
}

func NewJobHandler(s *server.Server, jobs *service.JobService) *JobHandler {
	return &JobHandler{
		Handler: NewHandler(s),
		jobs:    jobs,
	}
}

// equityError reports an equity outside [0, 1].
func equityError(equity decimal.Decimal) error {
	if equity.IsNegative() || equity.GreaterThan(decimal.NewFromInt(1)) {
		return validation.CustomValidationErrors{{Field: "equity", Message: "must be between 0 and 1"}}
	}
	return nil
}

// CreateJobRequest accepts equity as a decimal string ("0.05") or a JSON
// number.
type CreateJobRequest struct {
	Title         string              `json:"title" validate:"required,min=1"`
	Salary        *int                `json:"salary" validate:"omitempty,min=0,max=2147483647"`
	Equity        decimal.NullDecimal `json:"equity" validate:"-"`
	CompanyHandle string              `json:"companyHandle" validate:"required,max=25"`
}

func (r *CreateJobRequest) Validate() error {
	if err := validation.Struct(r); err != nil {
		return err
	}
	if r.Equity.Valid {
		return equityError(r.Equity.Decimal)
	}
	return nil
}

type ListJobsRequest struct {
	MinSalary int    `query:"minSalary" validate:"min=0,max=2147483647"`
	HasEquity bool   `query:"hasEquity"`
	Title     string `query:"title"`
}

func (r *ListJobsRequest) Validate() error { return validation.Struct(r) }

// Job ids are Postgres INTEGER (serial) values.
type JobIDRequest struct {
	ID int `param:"id" validate:"required,max=2147483647"`
}

func (r *JobIDRequest) Validate() error { return validation.Struct(r) }

// UpdateJobRequest cannot move a job to another company. Salary and equity
// may be sent as null to clear them.
type UpdateJobRequest struct {
	ID     int                            `param:"id" json:"-" validate:"required,max=2147483647"`
	Title  *string                        `json:"title" validate:"omitempty,min=1"`
	Salary sqlb.Optional[int]             `json:"salary" validate:"omitempty,min=0,max=2147483647"`
	Equity sqlb.Optional[decimal.Decimal] `json:"equity" validate:"-"`
}

func (r *UpdateJobRequest) Validate() error {
	if err := validation.Struct(r); err != nil {
		return err
	}
	if r.Equity.Value != nil {
		return equityError(*r.Equity.Value)
	}
	return nil
}

type JobResponse struct {
	Job *model.Job `json:"job"`
}

type JobDetailResponse struct {
	Job *model.JobDetail `json:"job"`
}

type JobsResponse struct {
	Jobs []model.JobListing `json:"jobs"`
}

func (h *JobHandler) CreateJob(c echo.Context, req *CreateJobRequest) (*JobResponse, error) {
	job, err := h.jobs.Create(c.Request().Context(), model.NewJob{
		Title:         req.Title,
		Salary:        req.Salary,
		Equity:        req.Equity,
		CompanyHandle: req.CompanyHandle,
	})
	if err != nil {
		return nil, err
	}
	return &JobResponse{Job: job}, nil
}

func (h *JobHandler) ListJobs(c echo.Context, req *ListJobsRequest) (*JobsResponse, error) {
	jobs, err := h.jobs.FindAll(c.Request().Context(), model.JobFilter{
		MinSalary: req.MinSalary,
		HasEquity: req.HasEquity,
		Title:     req.Title,
	})
	if err != nil {
		return nil, err
	}
	return &JobsResponse{Jobs: jobs}, nil
}

func (h *JobHandler) GetJob(c echo.Context, req *JobIDRequest) (*JobDetailResponse, error) {
	job, err := h.jobs.Get(c.Request().Context(), req.ID)
	if err != nil {
		return nil, err
	}
	return &JobDetailResponse{Job: job}, nil
}

func (h *JobHandler) UpdateJob(c echo.Context, req *UpdateJobRequest) (*JobResponse, error) {
	job, err := h.jobs.Update(c.Request().Context(), req.ID, model.JobUpdate{
		Title:  req.Title,
		Salary: req.Salary,
		Equity: req.Equity,
	})
	if err != nil {
		return nil, err
	}
	return &JobResponse{Job: job}, nil
}

func (h *JobHandler) DeleteJob(c echo.Context, req *JobIDRequest) (*DeletedResponse[int], error) {
	if err := h.jobs.Remove(c.Request().Context(), req.ID); err != nil {
		return nil, err
	}
	return &DeletedResponse[int]{Deleted: req.ID}, nil
}
