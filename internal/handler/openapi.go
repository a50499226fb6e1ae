package handler

import (
	"fmt"
	"io/fs"
	"net/http"

	"github.com/deppfellow/jobly/internal/server"
	"github.com/deppfellow/jobly/static"
	"github.com/labstack/echo/v4"
)

// OpenAPIHandler serves the API reference UI. The page loads openapi.json
// from /static.
type OpenAPIHandler struct {
	Handler
}

func NewOpenAPIHandler(s *server.Server) *OpenAPIHandler {
	return &OpenAPIHandler{
		Handler: NewHandler(s),
	}
}

func (h *OpenAPIHandler) ServeOpenAPIUI(c echo.Context) error {
	page, err := fs.ReadFile(static.FS, "openapi.html")
	if err != nil {
		return fmt.Errorf("failed to read OpenAPI UI template: %w", err)
	}

	c.Response().Header().Set("Cache-Control", "no-cache")

	if err := c.HTMLBlob(http.StatusOK, page); err != nil {
		return fmt.Errorf("failed to write HTML response: %w", err)
	}
	return nil
}
