package model

import (
	"encoding/json"
	"testing"

	"github.com/deppfellow/jobly/internal/lib/sqlb"
	"github.com/shopspring/decimal"
)

func ptr[T any](v T) *T { return &v }

func TestUserUpdateAssignmentsOrderAndMapping(t *testing.T) {
	u := UserUpdate{
		Email:     ptr("a@b.com"),
		FirstName: ptr("Aliya"),
		IsAdmin:   ptr(true),
	}

	got, err := sqlb.ForPartialUpdate(u.Assignments(), UserColumns)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := `"first_name"=$1, "email"=$2, "is_admin"=$3`; got.SetCols != want {
		t.Errorf("SetCols = %q, want %q", got.SetCols, want)
	}
	if len(got.Values) != 3 || got.Values[0] != "Aliya" || got.Values[2] != true {
		t.Errorf("Values = %v", got.Values)
	}
}

func TestCompanyUpdateAssignments(t *testing.T) {
	u := CompanyUpdate{NumEmployees: sqlb.Some(10), LogoURL: sqlb.Some("http://logo")}

	got, err := sqlb.ForPartialUpdate(u.Assignments(), CompanyColumns)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := `"num_employees"=$1, "logo_url"=$2`; got.SetCols != want {
		t.Errorf("SetCols = %q, want %q", got.SetCols, want)
	}
	if got.Values[0] != 10 || got.Values[1] != "http://logo" {
		t.Errorf("Values = %v", got.Values)
	}
}

func TestUpdateAssignmentsClearNullableColumns(t *testing.T) {
	company := CompanyUpdate{LogoURL: sqlb.Null[string]()}
	got, err := sqlb.ForPartialUpdate(company.Assignments(), CompanyColumns)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := `"logo_url"=$1`; got.SetCols != want {
		t.Errorf("SetCols = %q, want %q", got.SetCols, want)
	}
	if len(got.Values) != 1 || got.Values[0] != nil {
		t.Errorf("Values = %v, want [nil]", got.Values)
	}

	job := JobUpdate{Title: ptr("x"), Salary: sqlb.Null[int](), Equity: sqlb.Null[decimal.Decimal]()}
	got, err = sqlb.ForPartialUpdate(job.Assignments(), JobColumns)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := `"title"=$1, "salary"=$2, "equity"=$3`; got.SetCols != want {
		t.Errorf("SetCols = %q, want %q", got.SetCols, want)
	}
	if got.Values[0] != "x" || got.Values[1] != nil || got.Values[2] != nil {
		t.Errorf("Values = %v", got.Values)
	}
}

func TestEmptyUpdatesHaveNoAssignments(t *testing.T) {
	if n := len(CompanyUpdate{}.Assignments()); n != 0 {
		t.Errorf("CompanyUpdate{} has %d assignments", n)
	}
	if n := len(JobUpdate{}.Assignments()); n != 0 {
		t.Errorf("JobUpdate{} has %d assignments", n)
	}
	if n := len(UserUpdate{}.Assignments()); n != 0 {
		t.Errorf("UserUpdate{} has %d assignments", n)
	}
}

func TestJobJSON(t *testing.T) {
	job := Job{
		ID:            7,
		Title:         "Engineer",
		Salary:        ptr(100000),
		Equity:        decimal.NewNullDecimal(decimal.RequireFromString("0.05")),
		CompanyHandle: "acme",
	}

	raw, err := json.Marshal(job)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"id":7,"title":"Engineer","salary":100000,"equity":"0.05","companyHandle":"acme"}`
	if string(raw) != want {
		t.Errorf("json = %s, want %s", raw, want)
	}

	raw, _ = json.Marshal(Job{ID: 1, Title: "Intern", CompanyHandle: "acme"})
	want = `{"id":1,"title":"Intern","salary":null,"equity":null,"companyHandle":"acme"}`
	if string(raw) != want {
		t.Errorf("json = %s, want %s", raw, want)
	}
}

func TestUserJSONHasNoPassword(t *testing.T) {
	raw, _ := json.Marshal(Credentials{User: User{Username: "u1"}, PasswordHash: "secret"})
	var fields map[string]any
	_ = json.Unmarshal(raw, &fields)
	if _, ok := fields["password"]; ok {
		t.Error("password leaked into JSON")
	}
}
