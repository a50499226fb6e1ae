package handler

import (
	"github.com/deppfellow/jobly/internal/server"
	"github.com/deppfellow/jobly/internal/service"
	"github.com/deppfellow/jobly/internal/validation"
	"github.com/labstack/echo/v4"
)

type AuthHandler struct {
	Handler
	auth *service.AuthService
}

func NewAuthHandler(s *server.Server, auth *service.AuthService) *AuthHandler {
	return &AuthHandler{
		Handler: NewHandler(s),
		auth:    auth,
	}
}

type TokenRequest struct {
	Username string `json:"username" validate:"required,max=25"`
	Password string `json:"password" validate:"required"`
}

func (r *TokenRequest) Validate() error { return validation.Struct(r) }

// RegisterRequest is the self sign-up body. It has no isAdmin field, so the
// strict JSON decoder rejects one.
type RegisterRequest struct {
	Username  string `json:"username" validate:"required,min=1,max=25"`
	Password  string `json:"password" validate:"required,min=5,max=20"`
	FirstName string `json:"firstName" validate:"required,min=1,max=30"`
	LastName  string `json:"lastName" validate:"required,min=1,max=30"`
	Email     string `json:"email" validate:"required,min=6,max=60,email"`
}

func (r *RegisterRequest) Validate() error { return validation.Struct(r) }

type TokenResponse struct {
	Token string `json:"token"`
}

func (h *AuthHandler) Token(c echo.Context, req *TokenRequest) (*TokenResponse, error) {
	signed, err := h.auth.Token(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return nil, err
	}
	return &TokenResponse{Token: signed}, nil
}

func (h *AuthHandler) Register(c echo.Context, req *RegisterRequest) (*TokenResponse, error) {
	signed, err := h.auth.Register(c.Request().Context(), service.Registration{
		Username:  req.Username,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
	})
	if err != nil {
		return nil, err
	}
	return &TokenResponse{Token: signed}, nil
}
