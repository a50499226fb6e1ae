package router

import (
	"net/http"

	"github.com/deppfellow/jobly/internal/handler"
	"github.com/deppfellow/jobly/internal/server"
	"github.com/deppfellow/jobly/static"
	"github.com/labstack/echo/v4"
)

// registerSystemRoutes registers the endpoints that sit outside /api/v1.
func registerSystemRoutes(r *echo.Echo, s *server.Server, h *handler.Handlers) {
	r.GET("/status", h.Health.CheckHealth)

	r.StaticFS("/static", static.FS)
	r.GET("/docs", h.OpenAPI.ServeOpenAPIUI)

	if !s.Config.Observability.IsProduction() {
		r.GET("/dev/emails/:template", handler.HandleHTML(h.EmailPreview.Handler, h.EmailPreview.Preview, http.StatusOK))
	}
}
