package handler

import (
	"github.com/deppfellow/jobly/internal/lib/sqlb"
	"github.com/deppfellow/jobly/internal/model"
	"github.com/deppfellow/jobly/internal/server"
	"github.com/deppfellow/jobly/internal/service"
	"github.com/deppfellow/jobly/internal/validation"
	"github.com/labstack/echo/v4"
)

type CompanyHandler struct {
	Handler
	companies *service.CompanyService
}

func NewCompanyHandler(s *server.Server, companies *service.CompanyService) *CompanyHandler {
	return &CompanyHandler{
		Handler:   NewHandler(s),
		companies: companies,
	}
}

type CreateCompanyRequest struct {
	Handle       string  `json:"handle" validate:"required,min=1,max=25,lowercase"`
	Name         string  `json:"name" validate:"required,min=1"`
	Description  string  `json:"description" validate:"required"`
	NumEmployees *int    `json:"numEmployees" validate:"omitempty,min=0,max=2147483647"`
	LogoURL      *string `json:"logoUrl" validate:"omitempty,url"`
}

func (r *CreateCompanyRequest) Validate() error { return validation.Struct(r) }

// Integer inputs are capped at the Postgres INTEGER range.
type ListCompaniesRequest struct {
	Name         string `query:"name"`
	MinEmployees int    `query:"minEmployees" validate:"min=0,max=2147483647"`
	MaxEmployees int    `query:"maxEmployees" validate:"min=0,max=2147483647"`
}

func (r *ListCompaniesRequest) Validate() error { return validation.Struct(r) }

type CompanyHandleRequest struct {
	Handle string `param:"handle" validate:"required"`
}

func (r *CompanyHandleRequest) Validate() error { return validation.Struct(r) }

// UpdateCompanyRequest leaves absent fields untouched; numEmployees and
// logoUrl may be sent as null to clear them. The handle comes from the path
// only.
type UpdateCompanyRequest struct {
	Handle       string                `param:"handle" json:"-" validate:"required"`
	Name         *string               `json:"name" validate:"omitempty,min=1"`
	Description  *string               `json:"description"`
	NumEmployees sqlb.Optional[int]    `json:"numEmployees" validate:"omitempty,min=0,max=2147483647"`
	LogoURL      sqlb.Optional[string] `json:"logoUrl" validate:"omitempty,url"`
}

func (r *UpdateCompanyRequest) Validate() error { return validation.Struct(r) }

type CompanyResponse struct {
	Company *model.Company `json:"company"`
}

type CompanyDetailResponse struct {
	Company *model.CompanyDetail `json:"company"`
}

type CompaniesResponse struct {
	Companies []model.Company `json:"companies"`
}

// DeletedResponse echoes the key of a removed record.
type DeletedResponse[K any] struct {
	Deleted K `json:"deleted"`
}

func (h *CompanyHandler) CreateCompany(c echo.Context, req *CreateCompanyRequest) (*CompanyResponse, error) {
	company, err := h.companies.Create(c.Request().Context(), model.Company{
		Handle:       req.Handle,
		Name:         req.Name,
		Description:  req.Description,
		NumEmployees: req.NumEmployees,
		LogoURL:      req.LogoURL,
	})
	if err != nil {
		return nil, err
	}
	return &CompanyResponse{Company: company}, nil
}

func (h *CompanyHandler) ListCompanies(c echo.Context, req *ListCompaniesRequest) (*CompaniesResponse, error) {
	companies, err := h.companies.FindAll(c.Request().Context(), model.CompanyFilter{
		Name:         req.Name,
		MinEmployees: req.MinEmployees,
		MaxEmployees: req.MaxEmployees,
	})
	if err != nil {
		return nil, err
	}
	return &CompaniesResponse{Companies: companies}, nil
}

func (h *CompanyHandler) GetCompany(c echo.Context, req *CompanyHandleRequest) (*CompanyDetailResponse, error) {
	company, err := h.companies.Get(c.Request().Context(), req.Handle)
	if err != nil {
		return nil, err
	}
	return &CompanyDetailResponse{Company: company}, nil
}

func (h *CompanyHandler) UpdateCompany(c echo.Context, req *UpdateCompanyRequest) (*CompanyResponse, error) {
	company, err := h.companies.Update(c.Request().Context(), req.Handle, model.CompanyUpdate{
		Name:         req.Name,
		Description:  req.Description,
		NumEmployees: req.NumEmployees,
		LogoURL:      req.LogoURL,
	})
	if err != nil {
		return nil, err
	}
	return &CompanyResponse{Company: company}, nil
}

func (h *CompanyHandler) DeleteCompany(c echo.Context, req *CompanyHandleRequest) (*DeletedResponse[string], error) {
	if err := h.companies.Remove(c.Request().Context(), req.Handle); err != nil {
		return nil, err
	}
	return &DeletedResponse[string]{Deleted: req.Handle}, nil
}
