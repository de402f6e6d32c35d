package handler

//go:generate go run go.uber.org/mock/mockgen@latest -source=handler.go -destination=mocks_test.go -package=handler

import (
	"context"
	"net/http"
	"time"

	"adventure-server/internal/observability"

	"github.com/gin-gonic/gin"
)

const pingTimeout = 2 * time.Second

// Pinger reports whether the database is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	db         Pinger
	apiVersion string
	startedAt  time.Time
	logger     *observability.Logger
}

func New(db Pinger, apiVersion string, logger *observability.Logger) Handler {
	return Handler{
		db:         db,
		apiVersion: apiVersion,
		startedAt:  time.Now(),
		logger:     logger,
	}
}

type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Database  string    `json:"database"`
	Uptime    float64   `json:"uptime"`
}

// HandleHealth reports service liveness and database connectivity
func (h *Handler) HandleHealth(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), pingTimeout)
	defer cancel()

	resp := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Database:  "connected",
		Uptime:    time.Since(h.startedAt).Seconds(),
	}
	status := http.StatusOK

	if err := h.db.Ping(ctx); err != nil {
		h.logger.Error(ctx, "database health check failed", err)
		resp.Status = "unhealthy"
		resp.Database = "disconnected"
		status = http.StatusServiceUnavailable
	}

	c.JSON(status, resp)
}

type WelcomeResponse struct {
	Message       string `json:"message"`
	Version       string `json:"version"`
	Documentation string `json:"documentation"`
	Health        string `json:"health"`
}

// HandleRoot serves the API welcome document
func (h *Handler) HandleRoot(c *gin.Context) {
	c.JSON(http.StatusOK, WelcomeResponse{
		Message:       "Welcome to Adventure Triangle API",
		Version:       h.apiVersion,
		Documentation: "/api/docs",
		Health:        "/api/" + h.apiVersion + "/health",
	})
}
