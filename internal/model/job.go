package model

import (
	"github.com/deppfellow/jobly/internal/lib/sqlb"
	"github.com/shopspring/decimal"
)

// Job is a posting. Equity is a fraction in [0, 1] serialized as a decimal
// string ("0.05"), or null.
type Job struct {
	ID            int                 `json:"id"`
	Title         string              `json:"title"`
	Salary        *int                `json:"salary"`
	Equity        decimal.NullDecimal `json:"equity"`
	CompanyHandle string              `json:"companyHandle"`
}

// JobListing is a search result row.
type JobListing struct {
	Job
	CompanyName string `json:"companyName"`
}

// JobDetail is a job with its owning company embedded.
type JobDetail struct {
	Job
	Company Company `json:"company"`
}

// NewJob is the input of Job.Create.
type NewJob struct {
	Title         string
	Salary        *int
	Equity        decimal.NullDecimal
	CompanyHandle string
}

// JobFilter narrows Job.FindAll. Zero values mean "no filter".
type JobFilter struct {
	MinSalary int
	HasEquity bool
	Title     string
}

// JobUpdate carries a partial job update. The id and company of a job
// cannot change. Salary and equity may be set to null.
type JobUpdate struct {
	Title  *string
	Salary sqlb.Optional[int]
	Equity sqlb.Optional[decimal.Decimal]
}

// JobColumns maps API field names to storage columns.
var JobColumns = map[string]string{}

func (u JobUpdate) Assignments() []sqlb.Assignment {
	var out []sqlb.Assignment
	if u.Title != nil {
		out = append(out, sqlb.Assignment{Field: "title", Value: *u.Title})
	}
	out = u.Salary.Assign(out, "salary")
	out = u.Equity.Assign(out, "equity")
	return out
}
