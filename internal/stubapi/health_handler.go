package stubapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// HealthHandler handles GET /health (liveness) and GET /health/ready
// (readiness).
type HealthHandler struct {
	store *Store
}

func NewHealthHandler(store *Store) *HealthHandler {
	return &HealthHandler{store: store}
}

type readinessResponse struct {
	Status  string         `json:"status"`
	Records map[string]int `json:"records"`
}

// Liveness returns 200 immediately; confirms the process is alive.
//
// @Summary      Liveness probe
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}

// Readiness reports the in-memory record counts. The stub has no external
// dependencies, so it is ready as soon as it serves.
//
// @Summary      Readiness probe
// @Tags         health
// @Produce      json
// @Success      200  {object}  readinessResponse
// @Router       /health/ready [get]
func (h *HealthHandler) Readiness(c echo.Context) error {
	return c.JSON(http.StatusOK, readinessResponse{
		Status:  "ok",
		Records: h.store.Stats(),
	})
}
