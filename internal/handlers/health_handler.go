package handlers

import (
	"context"
	"net/http"
	"time"

	"finance-tracker/internal/errors"

	"github.com/labstack/echo/v4"
)

// HealthChecker is satisfied by *database.DB
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// HealthCheckHandler handles the health check endpoint
type HealthCheckHandler struct {
	db HealthChecker
}

// NewHealthCheckHandler creates a new health check handler
func NewHealthCheckHandler(db HealthChecker) *HealthCheckHandler {
	return &HealthCheckHandler{db: db}
}

// HealthCheck reports whether the database answers a ping
//
// Method: GET /health
//
// Success Response: 200 {status: "healthy", time: RFC3339}
// Error Responses:
//   - 503: SYSTEM_003, database unreachable
func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
	defer cancel()

	if err := h.db.HealthCheck(ctx); err != nil {
		return SendError(c, errors.SystemServiceUnavailable, errors.WithDetails("Database connection failed"))
	}

	return c.JSON(http.StatusOK, map[string]string{
		"status": "healthy",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}
