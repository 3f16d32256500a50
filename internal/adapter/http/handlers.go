package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// Handler serves the endpoints that need no marketplace state.
type Handler struct{}

func NewHandler() *Handler { return &Handler{} }

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"service": "peerlend",
		"status":  "ok",
		"time":    time.Now().UTC().Format(time.RFC3339Nano),
	})
}
