package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/selimyuksel/task-manager-backend/internal/api/handlers"
	"github.com/selimyuksel/task-manager-backend/internal/api/httpx"
	"github.com/selimyuksel/task-manager-backend/internal/config"
	"github.com/selimyuksel/task-manager-backend/internal/metrics"
	"github.com/selimyuksel/task-manager-backend/internal/middleware"
	"github.com/selimyuksel/task-manager-backend/internal/services"
)

func NewRouter(cfg config.Config, users *services.UserService, tasks *services.TaskService, guard *middleware.AuthMiddleware) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recover, middleware.RateLimit(cfg.RateRPS), middleware.HTTPMetrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte("ok")) })
	r.Handle("/metrics", metrics.Handler())

	ah := handlers.NewAuthHandler(users)
	th := handlers.NewTaskHandler(tasks)

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/register", ah.Register)
		r.Post("/auth/login", ah.Login)

		r.Route("/tasks", func(r chi.Router) {
			r.Use(guard.Protect)
			r.Get("/", th.List)
			r.Post("/", th.Create)
			r.Get("/{id}", th.Get)
			r.Put("/{id}", th.Update)
			r.Delete("/{id}", th.Delete)
			r.Put("/{id}/complete", th.ToggleComplete)
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusNotFound, map[string]string{"error": "Route not found"})
	})

	return r
}
