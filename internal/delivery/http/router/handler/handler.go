// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"

	"rangriti/internal/delivery/http/response"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// actingUserID extracts the authenticated account ID set by the auth
// middleware. The zero UUID with false means the middleware did not run.
func actingUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get("userID").(uuid.UUID)

	return userID, ok
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
