package handlers

import (
	"net/http"

	"autobot_site_go/db"

	"github.com/labstack/echo/v4"
)

// HealthHandler reports whether the lead database is reachable
func HealthHandler(c echo.Context) error {
	if err := db.Ping(); err != nil {
		c.Logger().Errorf("Health check failed: %v", err)
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
