package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/deppfellow/jobly/internal/errs"
	"github.com/deppfellow/jobly/internal/lib/job"
	"github.com/deppfellow/jobly/internal/lib/token"
	"github.com/deppfellow/jobly/internal/middleware"
	"github.com/deppfellow/jobly/internal/model"
	"github.com/deppfellow/jobly/internal/server"
	"github.com/deppfellow/jobly/internal/service"
	"github.com/deppfellow/jobly/internal/validation"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

type fakeCompanies struct {
	created []model.Company
	filter  model.CompanyFilter
	handle  string
	update  model.CompanyUpdate
}

func (f *fakeCompanies) Create(_ context.Context, c model.Company) (*model.Company, error) {
	f.created = append(f.created, c)
	return &c, nil
}

func (f *fakeCompanies) FindAll(_ context.Context, filter model.CompanyFilter) ([]model.Company, error) {
	f.filter = filter
	return nil, nil
}

func (f *fakeCompanies) Get(_ context.Context, handle string) (*model.CompanyDetail, error) {
	return nil, errs.NewNotFoundError("No company: "+handle, true, nil)
}

func (f *fakeCompanies) Update(_ context.Context, handle string, u model.CompanyUpdate) (*model.Company, error) {
	f.handle, f.update = handle, u
	return &model.Company{Handle: handle}, nil
}

func (f *fakeCompanies) Remove(context.Context, string) error { return nil }

type fakeJobs struct {
	created []model.NewJob
	ids     []int
	filter  *model.JobFilter
	update  model.JobUpdate
}

func (f *fakeJobs) Create(_ context.Context, j model.NewJob) (*model.Job, error) {
	f.created = append(f.created, j)
	return &model.Job{ID: 1, Title: j.Title, Salary: j.Salary, Equity: j.Equity, CompanyHandle: j.CompanyHandle}, nil
}

func (f *fakeJobs) FindAll(_ context.Context, filter model.JobFilter) ([]model.JobListing, error) {
	f.filter = &filter
	return nil, nil
}

func (f *fakeJobs) Get(_ context.Context, id int) (*model.JobDetail, error) {
	f.ids = append(f.ids, id)
	return &model.JobDetail{
		Job:     model.Job{ID: id, Title: "Engineer", CompanyHandle: "acme"},
		Company: model.Company{Handle: "acme", Name: "Acme"},
	}, nil
}

func (f *fakeJobs) Update(_ context.Context, id int, u model.JobUpdate) (*model.Job, error) {
	f.ids = append(f.ids, id)
	f.update = u
	return &model.Job{ID: id}, nil
}

func (f *fakeJobs) Remove(_ context.Context, id int) error {
	f.ids = append(f.ids, id)
	return nil
}

type fakeUsers struct {
	updates []model.UserUpdate
	applied []int
}

func (f *fakeUsers) Register(context.Context, model.NewUser) (*model.User, error) { return nil, nil }

func (f *fakeUsers) GetCredentials(context.Context, string) (*model.Credentials, error) {
	return nil, nil
}

func (f *fakeUsers) FindAll(context.Context) ([]model.User, error) { return nil, nil }

func (f *fakeUsers) Get(_ context.Context, username string) (*model.UserDetail, error) {
	return &model.UserDetail{User: model.User{Username: username, Email: username + "@example.com"}}, nil
}

func (f *fakeUsers) Update(_ context.Context, username string, u model.UserUpdate) (*model.User, error) {
	f.updates = append(f.updates, u)
	return &model.User{Username: username}, nil
}

func (f *fakeUsers) Remove(context.Context, string) error { return nil }

func (f *fakeUsers) ApplyToJob(_ context.Context, _ string, jobID int) error {
	f.applied = append(f.applied, jobID)
	return nil
}

type nopQueue struct{}

func (nopQueue) EnqueueWelcomeEmail(context.Context, job.WelcomeEmailPayload) error { return nil }

func (nopQueue) EnqueueApplicationEmail(context.Context, job.ApplicationEmailPayload) error {
	return nil
}

type testAPI struct {
	echo      *echo.Echo
	companies *fakeCompanies
	jobs      *fakeJobs
	users     *fakeUsers
}

// newTestAPI registers the company, job, user and preview routes without
// the auth gates. claims, when set, are attached to every request.
func newTestAPI(claims *token.Claims) *testAPI {
	api := &testAPI{
		echo:      echo.New(),
		companies: &fakeCompanies{},
		jobs:      &fakeJobs{},
		users:     &fakeUsers{},
	}

	e := api.echo
	e.JSONSerializer = validation.StrictJSONSerializer{}
	e.HTTPErrorHandler = middleware.NewGlobalMiddlewares(nil).GlobalErrorHandler
	if claims != nil {
		e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error {
				c.Set(middleware.ClaimsKey, claims)
				return next(c)
			}
		})
	}

	logger := zerolog.Nop()
	companies := NewCompanyHandler(nil, service.NewCompanyService(api.companies))
	jobs := NewJobHandler(nil, service.NewJobService(api.jobs))
	users := NewUserHandler(nil, service.NewUserService(api.users, api.jobs, nil, nopQueue{}, &logger))
	preview := NewEmailPreviewHandler(nil)

	e.POST("/companies", Handle(companies.Handler, companies.CreateCompany, http.StatusCreated))
	e.GET("/companies", Handle(companies.Handler, companies.ListCompanies, http.StatusOK))
	e.GET("/companies/:handle", Handle(companies.Handler, companies.GetCompany, http.StatusOK))
	e.PATCH("/companies/:handle", Handle(companies.Handler, companies.UpdateCompany, http.StatusOK))
	e.DELETE("/companies/:handle", Handle(companies.Handler, companies.DeleteCompany, http.StatusOK))

	e.POST("/jobs", Handle(jobs.Handler, jobs.CreateJob, http.StatusCreated))
	e.GET("/jobs", Handle(jobs.Handler, jobs.ListJobs, http.StatusOK))
	e.GET("/jobs/:id", Handle(jobs.Handler, jobs.GetJob, http.StatusOK))
	e.PATCH("/jobs/:id", Handle(jobs.Handler, jobs.UpdateJob, http.StatusOK))
	e.DELETE("/jobs/:id", Handle(jobs.Handler, jobs.DeleteJob, http.StatusOK))

	e.PATCH("/users/:username", Handle(users.Handler, users.UpdateUser, http.StatusOK))
	e.POST("/users/:username/jobs/:id", Handle(users.Handler, users.ApplyToJob, http.StatusOK))

	e.GET("/dev/emails/:template", HandleHTML(preview.Handler, preview.Preview, http.StatusOK))

	return api
}

func (api *testAPI) do(method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	api.echo.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errs.HTTPError {
	t.Helper()
	var body errs.HTTPError
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode error body %q: %v", rec.Body.String(), err)
	}
	return body
}

func TestCreateCompany(t *testing.T) {
	api := newTestAPI(nil)

	rec := api.do(http.MethodPost, "/companies", `{"handle":"acme","name":"Acme","description":"Rockets","numEmployees":5}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var body struct {
		Company model.Company `json:"company"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body.Company.Handle != "acme" || body.Company.NumEmployees == nil || *body.Company.NumEmployees != 5 {
		t.Errorf("company = %s", spew.Sdump(body.Company))
	}
}

func TestHandleBindsFreshRequestEachTime(t *testing.T) {
	api := newTestAPI(nil)

	api.do(http.MethodPost, "/companies", `{"handle":"a1","name":"A1","description":"d","numEmployees":5,"logoUrl":"http://a1.example.com/logo.png"}`)
	api.do(http.MethodPost, "/companies", `{"handle":"a2","name":"A2","description":"d"}`)

	if len(api.companies.created) != 2 {
		t.Fatalf("created = %s", spew.Sdump(api.companies.created))
	}
	second := api.companies.created[1]
	if second.NumEmployees != nil || second.LogoURL != nil {
		t.Errorf("second request inherited fields: %s", spew.Sdump(second))
	}
}

func TestCreateCompanyRejects(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		message string
		fields  []string
	}{
		{"unknown field", `{"handle":"acme","name":"Acme","description":"d","isAdmin":true}`, "Unknown field: isAdmin", nil},
		{"missing fields", `{}`, "Validation failed", []string{"handle", "name", "description"}},
		{"uppercase handle", `{"handle":"ACME","name":"Acme","description":"d"}`, "Validation failed", []string{"handle"}},
		{"negative employees", `{"handle":"acme","name":"Acme","description":"d","numEmployees":-1}`, "Validation failed", []string{"numEmployees"}},
		{"wrong type", `{"handle":"acme","name":"Acme","description":"d","numEmployees":"many"}`, "Invalid type for numEmployees: expected int", nil},
		{"bad url", `{"handle":"acme","name":"Acme","description":"d","logoUrl":"not a url"}`, "Validation failed", []string{"logoUrl"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newTestAPI(nil)
			rec := api.do(http.MethodPost, "/companies", tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
			}

			body := decodeError(t, rec)
			if body.Message != tt.message {
				t.Errorf("message = %q, want %q", body.Message, tt.message)
			}
			if len(body.Errors) != len(tt.fields) {
				t.Fatalf("errors = %s", spew.Sdump(body.Errors))
			}
			for i, field := range tt.fields {
				if body.Errors[i].Field != field {
					t.Errorf("errors[%d].field = %q, want %q", i, body.Errors[i].Field, field)
				}
			}
			if len(api.companies.created) != 0 {
				t.Error("store was called for an invalid request")
			}
		})
	}
}

func TestListCompaniesQuery(t *testing.T) {
	api := newTestAPI(nil)

	rec := api.do(http.MethodGet, "/companies?name=net&minEmployees=2&maxEmployees=40", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	want := model.CompanyFilter{Name: "net", MinEmployees: 2, MaxEmployees: 40}
	if api.companies.filter != want {
		t.Errorf("filter = %+v, want %+v", api.companies.filter, want)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != `{"companies":[]}` {
		t.Errorf("body = %s", got)
	}

	if rec := api.do(http.MethodGet, "/companies?minEmployees=abc", ""); rec.Code != http.StatusBadRequest {
		t.Errorf("non-numeric filter: status = %d", rec.Code)
	}
}

func TestGetCompanyNotFound(t *testing.T) {
	api := newTestAPI(nil)

	rec := api.do(http.MethodGet, "/companies/nope", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d", rec.Code)
	}
	if body := decodeError(t, rec); body.Message != "No company: nope" {
		t.Errorf("message = %q", body.Message)
	}
}

func TestUpdateCompany(t *testing.T) {
	api := newTestAPI(nil)

	rec := api.do(http.MethodPatch, "/companies/acme", `{"name":"Acme Corp"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if api.companies.handle != "acme" || api.companies.update.Name == nil || *api.companies.update.Name != "Acme Corp" {
		t.Errorf("update = %s", spew.Sdump(api.companies.handle, api.companies.update))
	}
	if api.companies.update.Description != nil {
		t.Error("absent description was set")
	}

	rec = api.do(http.MethodPatch, "/companies/acme", `{"handle":"other"}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("handle in body: status = %d", rec.Code)
	}
}

func TestUpdateClearsNullableFields(t *testing.T) {
	t.Run("company logo", func(t *testing.T) {
		api := newTestAPI(nil)

		rec := api.do(http.MethodPatch, "/companies/acme", `{"logoUrl":null}`)
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
		}
		u := api.companies.update
		if !u.LogoURL.Set || u.LogoURL.Value != nil {
			t.Errorf("logoUrl = %s", spew.Sdump(u.LogoURL))
		}
		if u.NumEmployees.Set || u.Name != nil {
			t.Errorf("absent fields were set: %s", spew.Sdump(u))
		}
		if n := len(u.Assignments()); n != 1 {
			t.Errorf("assignments = %d, want 1", n)
		}
	})

	t.Run("job salary next to a title", func(t *testing.T) {
		api := newTestAPI(nil)

		rec := api.do(http.MethodPatch, "/jobs/4", `{"title":"x","salary":null}`)
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
		}
		u := api.jobs.update
		if u.Title == nil || *u.Title != "x" || !u.Salary.Set || u.Salary.Value != nil || u.Equity.Set {
			t.Errorf("update = %s", spew.Sdump(u))
		}
		if n := len(u.Assignments()); n != 2 {
			t.Errorf("assignments = %d, want 2", n)
		}
	})

	t.Run("job equity", func(t *testing.T) {
		api := newTestAPI(nil)

		rec := api.do(http.MethodPatch, "/jobs/4", `{"equity":null}`)
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
		}
		if u := api.jobs.update; !u.Equity.Set || u.Equity.Value != nil {
			t.Errorf("equity = %s", spew.Sdump(u.Equity))
		}
	})
}

func TestUpdateValidatesOptionalFields(t *testing.T) {
	tests := []struct {
		name   string
		target string
		body   string
		field  string
	}{
		{"negative employees", "/companies/acme", `{"numEmployees":-1}`, "numEmployees"},
		{"bad logo url", "/companies/acme", `{"logoUrl":"not a url"}`, "logoUrl"},
		{"negative salary", "/jobs/4", `{"salary":-5}`, "salary"},
		{"equity above one", "/jobs/4", `{"equity":"2"}`, "equity"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newTestAPI(nil)

			rec := api.do(http.MethodPatch, tt.target, tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
			}
			if body := decodeError(t, rec); len(body.Errors) != 1 || body.Errors[0].Field != tt.field {
				t.Errorf("errors = %s", spew.Sdump(body.Errors))
			}
			if api.companies.handle != "" || len(api.jobs.ids) != 0 {
				t.Error("store was called for an invalid update")
			}
		})
	}
}

// Values past the Postgres INTEGER range are client errors, never
// encoding failures in the driver.
func TestOversizedIntegersRejected(t *testing.T) {
	tests := []struct {
		name   string
		method string
		target string
		body   string
		field  string
	}{
		{"job salary", http.MethodPost, "/jobs", `{"title":"T","salary":3000000000,"companyHandle":"acme"}`, "salary"},
		{"company size", http.MethodPost, "/companies", `{"handle":"acme","name":"Acme","description":"d","numEmployees":3000000000}`, "numEmployees"},
		{"company size update", http.MethodPatch, "/companies/acme", `{"numEmployees":3000000000}`, "numEmployees"},
		{"job salary update", http.MethodPatch, "/jobs/4", `{"salary":3000000000}`, "salary"},
		{"min employees filter", http.MethodGet, "/companies?minEmployees=3000000000", "", "minEmployees"},
		{"max employees filter", http.MethodGet, "/companies?maxEmployees=3000000000", "", "maxEmployees"},
		{"min salary filter", http.MethodGet, "/jobs?minSalary=3000000000", "", "minSalary"},
		{"job lookup", http.MethodGet, "/jobs/3000000000", "", "id"},
		{"job update", http.MethodPatch, "/jobs/3000000000", `{"title":"x"}`, "id"},
		{"job delete", http.MethodDelete, "/jobs/3000000000", "", "id"},
		{"application", http.MethodPost, "/users/u1/jobs/3000000000", "", "id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newTestAPI(&token.Claims{Username: "u1"})

			rec := api.do(tt.method, tt.target, tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
			}
			if body := decodeError(t, rec); len(body.Errors) != 1 || body.Errors[0].Field != tt.field {
				t.Errorf("errors = %s", spew.Sdump(body.Errors))
			}

			if len(api.companies.created) != 0 || api.companies.handle != "" || api.companies.filter != (model.CompanyFilter{}) {
				t.Error("company store was called")
			}
			if len(api.jobs.created) != 0 || len(api.jobs.ids) != 0 || api.jobs.filter != nil {
				t.Error("job store was called")
			}
			if len(api.users.applied) != 0 {
				t.Error("application reached the store")
			}
		})
	}
}

func TestLargestIntegerAccepted(t *testing.T) {
	api := newTestAPI(nil)

	rec := api.do(http.MethodGet, "/jobs/2147483647", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if len(api.jobs.ids) != 1 || api.jobs.ids[0] != 2147483647 {
		t.Errorf("ids = %v", api.jobs.ids)
	}
}

func TestHandleFallsBackToServerLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	companies := NewCompanyHandler(&server.Server{Logger: &logger}, service.NewCompanyService(&fakeCompanies{}))

	e := echo.New()
	e.JSONSerializer = validation.StrictJSONSerializer{}
	e.POST("/companies", Handle(companies.Handler, companies.CreateCompany, http.StatusCreated))

	req := httptest.NewRequest(http.MethodPost, "/companies", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	e.ServeHTTP(httptest.NewRecorder(), req)

	out := buf.String()
	if !strings.Contains(out, "request validation failed") || !strings.Contains(out, `"route":"/companies"`) {
		t.Errorf("log = %s", out)
	}
}

func TestDeleteResponses(t *testing.T) {
	api := newTestAPI(nil)

	if got := strings.TrimSpace(api.do(http.MethodDelete, "/companies/acme", "").Body.String()); got != `{"deleted":"acme"}` {
		t.Errorf("company delete body = %s", got)
	}
	if got := strings.TrimSpace(api.do(http.MethodDelete, "/jobs/3", "").Body.String()); got != `{"deleted":3}` {
		t.Errorf("job delete body = %s", got)
	}
}

func TestCreateJobEquity(t *testing.T) {
	tests := []struct {
		name   string
		equity string
		status int
	}{
		{"string", `"0.05"`, http.StatusCreated},
		{"number", `0.5`, http.StatusCreated},
		{"one", `"1"`, http.StatusCreated},
		{"null", `null`, http.StatusCreated},
		{"above one", `"1.5"`, http.StatusBadRequest},
		{"negative", `"-0.1"`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newTestAPI(nil)
			body := fmt.Sprintf(`{"title":"Engineer","salary":100000,"equity":%s,"companyHandle":"acme"}`, tt.equity)

			rec := api.do(http.MethodPost, "/jobs", body)
			if rec.Code != tt.status {
				t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
			}
			if tt.status == http.StatusBadRequest {
				if errBody := decodeError(t, rec); len(errBody.Errors) != 1 || errBody.Errors[0].Field != "equity" {
					t.Errorf("errors = %s", spew.Sdump(errBody.Errors))
				}
			}
		})
	}
}

func TestCreateJobEquitySerializedAsString(t *testing.T) {
	api := newTestAPI(nil)

	rec := api.do(http.MethodPost, "/jobs", `{"title":"Engineer","equity":"0.05","companyHandle":"acme"}`)
	if !strings.Contains(rec.Body.String(), `"equity":"0.05"`) {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestGetJobBadID(t *testing.T) {
	api := newTestAPI(nil)

	rec := api.do(http.MethodGet, "/jobs/abc", "")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
}

func TestUpdateUserIsAdmin(t *testing.T) {
	tests := []struct {
		name   string
		claims *token.Claims
		status int
	}{
		{"self", &token.Claims{Username: "u1"}, http.StatusForbidden},
		{"admin", &token.Claims{Username: "boss", IsAdmin: true}, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newTestAPI(tt.claims)

			rec := api.do(http.MethodPatch, "/users/u1", `{"isAdmin":true}`)
			if rec.Code != tt.status {
				t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
			}
			if tt.status == http.StatusForbidden && len(api.users.updates) != 0 {
				t.Error("forbidden update reached the store")
			}
		})
	}
}

func TestUpdateUserProfile(t *testing.T) {
	api := newTestAPI(&token.Claims{Username: "u1"})

	rec := api.do(http.MethodPatch, "/users/u1", `{"firstName":"New","email":"new@example.com"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if len(api.users.updates) != 1 || *api.users.updates[0].FirstName != "New" {
		t.Errorf("updates = %s", spew.Sdump(api.users.updates))
	}

	rec = api.do(http.MethodPatch, "/users/u1", `{"email":"nope"}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("bad email: status = %d", rec.Code)
	}
}

func TestApplyToJob(t *testing.T) {
	api := newTestAPI(&token.Claims{Username: "u1"})

	rec := api.do(http.MethodPost, "/users/u1/jobs/7", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if got := strings.TrimSpace(rec.Body.String()); got != `{"applied":7}` {
		t.Errorf("body = %s", got)
	}
	if len(api.users.applied) != 1 || api.users.applied[0] != 7 {
		t.Errorf("applied = %v", api.users.applied)
	}
}

func TestEmailPreview(t *testing.T) {
	api := newTestAPI(nil)

	rec := api.do(http.MethodGet, "/dev/emails/welcome", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if !strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), echo.MIMETextHTML) {
		t.Errorf("content type = %q", rec.Header().Get(echo.HeaderContentType))
	}
	if !strings.Contains(rec.Body.String(), "Aliya") {
		t.Errorf("preview missing sample data: %s", rec.Body.String())
	}

	if rec := api.do(http.MethodGet, "/dev/emails/unknown", ""); rec.Code != http.StatusBadRequest {
		t.Errorf("unknown template: status = %d", rec.Code)
	}
}
