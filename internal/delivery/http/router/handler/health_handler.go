package handler

import (
	"net/http"

	"marvel/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
)

const welcomeMessage = "Bienvenue sur l'API Marvel."

// Welcome handles GET /.
func Welcome(c echo.Context) error {
	return response.Text(c, http.StatusOK, welcomeMessage)
}

// HealthCheck handles GET /health.
func HealthCheck(c echo.Context) error {
	return response.JSON(c, http.StatusOK, map[string]string{"status": "ok"})
}
