package router

import (
	"net/http"

	"github.com/deppfellow/jobly/internal/handler"
	"github.com/deppfellow/jobly/internal/middleware"
	"github.com/labstack/echo/v4"
)

// registerV1Routes mounts the API under /api/v1. Write routes carry their
// auth gate; reads of companies and jobs are public.
func registerV1Routes(router *echo.Echo, h *handler.Handlers, auth *middleware.AuthMiddleware) {
	v1 := router.Group("/api/v1")
	registerAuthRoutes(v1, h)
	registerCompanyRoutes(v1, h, auth)
	registerJobRoutes(v1, h, auth)
	registerUserRoutes(v1, h, auth)
}

func registerAuthRoutes(g *echo.Group, h *handler.Handlers) {
	auth := g.Group("/auth")
	auth.POST("/token", handler.Handle(h.Auth.Handler, h.Auth.Token, http.StatusOK))
	auth.POST("/register", handler.Handle(h.Auth.Handler, h.Auth.Register, http.StatusCreated))
}

func registerCompanyRoutes(g *echo.Group, h *handler.Handlers, auth *middleware.AuthMiddleware) {
	companies := g.Group("/companies")
	companies.GET("", handler.Handle(h.Company.Handler, h.Company.ListCompanies, http.StatusOK))
	companies.GET("/:handle", handler.Handle(h.Company.Handler, h.Company.GetCompany, http.StatusOK))

	companies.POST("", handler.Handle(h.Company.Handler, h.Company.CreateCompany, http.StatusCreated), auth.RequireAdmin)
	companies.PATCH("/:handle", handler.Handle(h.Company.Handler, h.Company.UpdateCompany, http.StatusOK), auth.RequireAdmin)
	companies.DELETE("/:handle", handler.Handle(h.Company.Handler, h.Company.DeleteCompany, http.StatusOK), auth.RequireAdmin)
}

func registerJobRoutes(g *echo.Group, h *handler.Handlers, auth *middleware.AuthMiddleware) {
	jobs := g.Group("/jobs")
	jobs.GET("", handler.Handle(h.Job.Handler, h.Job.ListJobs, http.StatusOK))
	jobs.GET("/:id", handler.Handle(h.Job.Handler, h.Job.GetJob, http.StatusOK))

	jobs.POST("", handler.Handle(h.Job.Handler, h.Job.CreateJob, http.StatusCreated), auth.RequireAdmin)
	jobs.PATCH("/:id", handler.Handle(h.Job.Handler, h.Job.UpdateJob, http.StatusOK), auth.RequireAdmin)
	jobs.DELETE("/:id", handler.Handle(h.Job.Handler, h.Job.DeleteJob, http.StatusOK), auth.RequireAdmin)
}

func registerUserRoutes(g *echo.Group, h *handler.Handlers, auth *middleware.AuthMiddleware) {
	users := g.Group("/users")
	users.POST("", handler.Handle(h.User.Handler, h.User.CreateUser, http.StatusCreated), auth.RequireAdmin)
	users.GET("", handler.Handle(h.User.Handler, h.User.ListUsers, http.StatusOK), auth.RequireAdmin)

	users.GET("/:username", handler.Handle(h.User.Handler, h.User.GetUser, http.StatusOK), auth.RequireCorrectUserOrAdmin)
	users.PATCH("/:username", handler.Handle(h.User.Handler, h.User.UpdateUser, http.StatusOK), auth.RequireCorrectUserOrAdmin)
	users.DELETE("/:username", handler.Handle(h.User.Handler, h.User.DeleteUser, http.StatusOK), auth.RequireCorrectUserOrAdmin)
	users.POST("/:username/jobs/:id", handler.Handle(h.User.Handler, h.User.ApplyToJob, http.StatusOK), auth.RequireCorrectUserOrAdmin)
}
