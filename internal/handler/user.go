package handler

import (
	"github.com/deppfellow/jobly/internal/errs"
	"github.com/deppfellow/jobly/internal/middleware"
	"github.com/deppfellow/jobly/internal/model"
	"github.com/deppfellow/jobly/internal/server"
	"github.com/deppfellow/jobly/internal/service"
	"github.com/deppfellow/jobly/internal/validation"
	"github.com/labstack/echo/v4"
)

type UserHandler struct {
	Handler
	users *service.UserService
}

func NewUserHandler(s *server.Server, users *service.UserService) *UserHandler {
	return &UserHandler{
		Handler: NewHandler(s),
		users:   users,
	}
}

// CreateUserRequest is the admin-only account creation body; unlike
// RegisterRequest it may set isAdmin.
type CreateUserRequest struct {
	Username  string `json:"username" validate:"required,min=1,max=25"`
	Password  string `json:"password" validate:"required,min=5,max=20"`
	FirstName string `json:"firstName" validate:"required,min=1,max=30"`
	LastName  string `json:"lastName" validate:"required,min=1,max=30"`
	Email     string `json:"email" validate:"required,min=6,max=60,email"`
	IsAdmin   bool   `json:"isAdmin"`
}

func (r *CreateUserRequest) Validate() error { return validation.Struct(r) }

type ListUsersRequest struct{}

func (r *ListUsersRequest) Validate() error { return nil }

type UsernameRequest struct {
	Username string `param:"username" validate:"required"`
}

func (r *UsernameRequest) Validate() error { return validation.Struct(r) }

type UpdateUserRequest struct {
	Username  string  `param:"username" json:"-" validate:"required"`
	FirstName *string `json:"firstName" validate:"omitempty,min=1,max=30"`
	LastName  *string `json:"lastName" validate:"omitempty,min=1,max=30"`
	Password  *string `json:"password" validate:"omitempty,min=5,max=20"`
	Email     *string `json:"email" validate:"omitempty,min=6,max=60,email"`
	IsAdmin   *bool   `json:"isAdmin"`
}

func (r *UpdateUserRequest) Validate() error { return validation.Struct(r) }

type ApplyRequest struct {
	Username string `param:"username" validate:"required"`
	ID       int    `param:"id" validate:"required,max=2147483647"`
}

func (r *ApplyRequest) Validate() error { return validation.Struct(r) }

type UserResponse struct {
	User *model.User `json:"user"`
}

type UserDetailResponse struct {
	User *model.UserDetail `json:"user"`
}

type CreateUserResponse struct {
	User  *model.User `json:"user"`
	Token string      `json:"token"`
}

type UsersResponse struct {
	Users []model.User `json:"users"`
}

type AppliedResponse struct {
	Applied int `json:"applied"`
}

func (h *UserHandler) CreateUser(c echo.Context, req *CreateUserRequest) (*CreateUserResponse, error) {
	user, signed, err := h.users.Create(c.Request().Context(), service.Registration{
		Username:  req.Username,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		IsAdmin:   req.IsAdmin,
	})
	if err != nil {
		return nil, err
	}
	return &CreateUserResponse{User: user, Token: signed}, nil
}

func (h *UserHandler) ListUsers(c echo.Context, _ *ListUsersRequest) (*UsersResponse, error) {
	users, err := h.users.FindAll(c.Request().Context())
	if err != nil {
		return nil, err
	}
	return &UsersResponse{Users: users}, nil
}

func (h *UserHandler) GetUser(c echo.Context, req *UsernameRequest) (*UserDetailResponse, error) {
	user, err := h.users.Get(c.Request().Context(), req.Username)
	if err != nil {
		return nil, err
	}
	return &UserDetailResponse{User: user}, nil
}

// UpdateUser lets users edit their own profile. Only admins may change
// isAdmin.
func (h *UserHandler) UpdateUser(c echo.Context, req *UpdateUserRequest) (*UserResponse, error) {
	if req.IsAdmin != nil {
		if claims := middleware.GetClaims(c); claims == nil || !claims.IsAdmin {
			return nil, errs.NewForbiddenError("Only admins can change isAdmin", true)
		}
	}

	user, err := h.users.Update(c.Request().Context(), req.Username, model.UserUpdate{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Password:  req.Password,
		Email:     req.Email,
		IsAdmin:   req.IsAdmin,
	})
	if err != nil {
		return nil, err
	}
	return &UserResponse{User: user}, nil
}

func (h *UserHandler) DeleteUser(c echo.Context, req *UsernameRequest) (*DeletedResponse[string], error) {
	if err := h.users.Remove(c.Request().Context(), req.Username); err != nil {
		return nil, err
	}
	return &DeletedResponse[string]{Deleted: req.Username}, nil
}

func (h *UserHandler) ApplyToJob(c echo.Context, req *ApplyRequest) (*AppliedResponse, error) {
	if err := h.users.ApplyToJob(c.Request().Context(), req.Username, req.ID); err != nil {
		return nil, err
	}
	return &AppliedResponse{Applied: req.ID}, nil
}
