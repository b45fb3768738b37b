package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Liveness godoc
// @Summary Liveness probe
// @Produce plain
// @Success 200 {string} string "Backend is running!"
// @Router / [get]
func Liveness(c echo.Context) error {
	return c.String(http.StatusOK, "Backend is running!")
}
