package model

import (
	"github.com/deppfellow/jobly/internal/lib/sqlb"
	"github.com/shopspring/decimal"
)

type Company struct {
	Handle       string  `json:"handle"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	NumEmployees *int    `json:"numEmployees"`
	LogoURL      *string `json:"logoUrl"`
}

// CompanyJob is the summary of a job embedded in a company lookup.
type CompanyJob struct {
	ID     int                 `json:"id"`
	Title  string              `json:"title"`
	Salary *int                `json:"salary"`
	Equity decimal.NullDecimal `json:"equity"`
}

// CompanyDetail is a company with the jobs it posts.
type CompanyDetail struct {
	Company
	Jobs []CompanyJob `json:"jobs"`
}

// CompanyFilter narrows Company.FindAll. Zero values mean "no filter".
type CompanyFilter struct {
	Name         string
	MinEmployees int
	MaxEmployees int
}

// CompanyUpdate carries the fields of a partial company update; nil and
// unset fields are left untouched. The nullable columns can be cleared.
type CompanyUpdate struct {
	Name         *string
	Description  *string
	NumEmployees sqlb.Optional[int]
	LogoURL      sqlb.Optional[string]
}

// CompanyColumns maps API field names to storage columns.
var CompanyColumns = map[string]string{
	"numEmployees": "num_employees",
	"logoUrl":      "logo_url",
}

// Assignments lists the set fields in declaration order.
func (u CompanyUpdate) Assignments() []sqlb.Assignment {
	var out []sqlb.Assignment
	if u.Name != nil {
		out = append(out, sqlb.Assignment{Field: "name", Value: *u.Name})
	}
	if u.Description != nil {
		out = append(out, sqlb.Assignment{Field: "description", Value: *u.Description})
	}
	out = u.NumEmployees.Assign(out, "numEmployees")
	out = u.LogoURL.Assign(out, "logoUrl")
	return out
}
