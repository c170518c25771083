package handlers

import (
	"database/sql"
	"net/http"
	"time"
)

// Version is the reported API version.
const Version = "1.0.0"

// ==========================
// Health Handler
// ==========================
type HealthHandler struct {
	DB  *sql.DB
	Env string
}

// Root serves a small service banner.
func (h *HealthHandler) Root(w http.ResponseWriter, r *http.Request) {
	JSON(w, http.StatusOK, map[string]string{
		"message": "Task Management API",
		"version": Version,
		"status":  "running",
		"health":  "/health",
	})
}

// Health is the liveness probe. It answers 200 as long as the process serves requests.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	JSON(w, http.StatusOK, map[string]string{
		"status":      "healthy",
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
		"version":     Version,
		"environment": h.Env,
	})
}

// Ready is the readiness probe: pings the database and answers 503 while it is unreachable.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	if err := h.DB.PingContext(r.Context()); err != nil {
		JSON(w, http.StatusServiceUnavailable, map[string]string{
			"status":   "unhealthy",
			"database": "unreachable",
		})
		return
	}
	JSON(w, http.StatusOK, map[string]string{
		"status":   "ready",
		"database": "connected",
	})
}
