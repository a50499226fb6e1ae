package handler

import (
	"github.com/deppfellow/jobly/internal/lib/email"
	"github.com/deppfellow/jobly/internal/server"
	"github.com/deppfellow/jobly/internal/validation"
	"github.com/labstack/echo/v4"
)

// EmailPreviewHandler renders the transactional email templates with sample
// data. It is only routed outside production.
type EmailPreviewHandler struct {
	Handler
}

func NewEmailPreviewHandler(s *server.Server) *EmailPreviewHandler {
	return &EmailPreviewHandler{
		Handler: NewHandler(s),
	}
}

type EmailPreviewRequest struct {
	Template string `param:"template" validate:"required,oneof=welcome application"`
}

func (r *EmailPreviewRequest) Validate() error { return validation.Struct(r) }

func (h *EmailPreviewHandler) Preview(c echo.Context, req *EmailPreviewRequest) (string, error) {
	name := email.Template(req.Template)
	return email.Render(name, email.PreviewData[name])
}
