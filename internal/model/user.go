package model

import "github.com/deppfellow/jobly/internal/lib/sqlb"

// User never carries the password hash: read paths do not select it.
type User struct {
	Username  string `json:"username"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	IsAdmin   bool   `json:"isAdmin"`
}

// UserDetail is a user with the ids of the jobs they applied to.
type UserDetail struct {
	User
	Jobs []int `json:"jobs"`
}

// NewUser is the input of User.Register. PasswordHash is already hashed.
type NewUser struct {
	Username     string
	PasswordHash string `json:"-"`
	FirstName    string
	LastName     string
	Email        string
	IsAdmin      bool
}

// Credentials is the stored login record used only by authentication.
type Credentials struct {
	User
	PasswordHash string `json:"-"`
}

// Application records that Username applied to JobID.
type Application struct {
	Username string `json:"username"`
	JobID    int    `json:"jobId"`
}

// UserUpdate carries a partial user update. Password is the plaintext the
// caller supplied; the service replaces it with a hash before the update
// reaches the repository.
type UserUpdate struct {
	FirstName *string
	LastName  *string
	Password  *string
	Email     *string
	IsAdmin   *bool
}

// UserColumns maps API field names to storage columns.
var UserColumns = map[string]string{
	"firstName": "first_name",
	"lastName":  "last_name",
	"isAdmin":   "is_admin",
}

func (u UserUpdate) Assignments() []sqlb.Assignment {
	var out []sqlb.Assignment
	if u.FirstName != nil {
		out = append(out, sqlb.Assignment{Field: "firstName", Value: *u.FirstName})
	}
	if u.LastName != nil {
		out = append(out, sqlb.Assignment{Field: "lastName", Value: *u.LastName})
	}
	if u.Password != nil {
		out = append(out, sqlb.Assignment{Field: "password", Value: *u.Password})
	}
	if u.Email != nil {
		out = append(out, sqlb.Assignment{Field: "email", Value: *u.Email})
	}
	if u.IsAdmin != nil {
		out = append(out, sqlb.Assignment{Field: "isAdmin", Value: *u.IsAdmin})
	}
	return out
}
