package main

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/crucial707/taskdeck/internal/auth"
	"github.com/crucial707/taskdeck/internal/config"
	"github.com/crucial707/taskdeck/internal/handlers"
	"github.com/crucial707/taskdeck/internal/middleware"
	"github.com/crucial707/taskdeck/internal/repo"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"
)

// newRouter wires repositories, the auth core, and handlers into the full
// HTTP surface. Tests build it against a sqlmock DB.
func newRouter(db *sql.DB, cfg config.Config) http.Handler {
	userRepo := repo.NewUserRepo(db)
	taskRepo := repo.NewTaskRepo(db)

	issuer := auth.NewTokenIssuer(cfg.JWTSecret, time.Duration(cfg.JWTExpireMinutes)*time.Minute)
	gate := auth.NewAPIKeyGate(cfg.APIKey)
	resolver := auth.NewResolver(gate, issuer, userRepo)

	authHandler := &handlers.AuthHandler{UserRepo: userRepo, Issuer: issuer}
	taskHandler := &handlers.TaskHandler{Repo: taskRepo}
	healthHandler := &handlers.HealthHandler{DB: db, Env: cfg.Env}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestLog)
	r.Use(middleware.Prometheus)
	r.Use(middleware.SecurityHeaders(cfg.TLSCertFile != "" && cfg.TLSKeyFile != ""))
	r.Use(middleware.CORS(cfg.CORSAllowedOrigins))
	r.Use(middleware.MaxBytes(middleware.DefaultMaxBodyBytes))
	if cfg.RateLimitPerMinute > 0 {
		general := middleware.NewIPRateLimiter(
			rate.Limit(float64(cfg.RateLimitPerMinute)/60.0), cfg.RateLimitBurst)
		r.Use(general.Middleware)
	}

	// Public
	r.Get("/", healthHandler.Root)
	r.Get("/health", healthHandler.Health)
	r.Get("/ready", healthHandler.Ready)
	r.Handle("/metrics", promhttp.Handler())

	// Credential endpoints get a tighter per-IP budget than the rest.
	r.Group(func(r chi.Router) {
		credential := middleware.CredentialRateLimiter()
		r.Use(credential.Middleware)
		r.Post("/signup", authHandler.Signup)
		r.Post("/token", authHandler.Token)
	})

	// Protected: bearer token and API key both required.
	r.Group(func(r chi.Router) {
		r.Use(middleware.Authenticate(resolver))
		r.Post("/tasks", taskHandler.CreateTask)
		r.Get("/tasks", taskHandler.ListTasks)
		r.Get("/tasks/{id}", taskHandler.GetTask)
		r.Put("/tasks/{id}", taskHandler.UpdateTask)
		r.Delete("/tasks/{id}", taskHandler.DeleteTask)
	})

	return r
}
