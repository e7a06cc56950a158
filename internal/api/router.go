package api

import (
	"net/http"
	"time"

	"github.com/haritejakathi/The-Reciprocal-Solutions/internal/api/handler"
	"github.com/haritejakathi/The-Reciprocal-Solutions/internal/api/middleware"
	"github.com/haritejakathi/The-Reciprocal-Solutions/internal/app/service"
	"github.com/haritejakathi/The-Reciprocal-Solutions/internal/common/security"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	authService *service.AuthService,
	projectService *service.ProjectService,
	taskService *service.TaskService,
	activityService *service.ActivityService,
) http.Handler {
	r := chi.NewRouter()

	// Base Middlewares
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger) // Chi's logger
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Timeout(30 * time.Second))

	// Public health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Auth routes (public)
	authHandler := handler.NewAuthHandler(authService)
	authHandler.RegisterRoutes(r)

	// Protected routes. The verifier accepts the raw token from the
	// Authorization header; the authenticator rejects missing (401) or
	// invalid (403) credentials before any handler runs.
	r.Group(func(protected chi.Router) {
		protected.Use(jwtauth.Verify(security.TokenAuth, middleware.TokenFromHeader))
		protected.Use(middleware.Authenticator)

		projectHandler := handler.NewProjectHandler(projectService)
		protected.Route("/projects", projectHandler.RegisterRoutes)

		taskHandler := handler.NewTaskHandler(taskService)
		protected.Route("/tasks", taskHandler.RegisterRoutes)

		activityHandler := handler.NewActivityHandler(activityService)
		protected.Route("/activities", activityHandler.RegisterRoutes)
	})

	return r
}
