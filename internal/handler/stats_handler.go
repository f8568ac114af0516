package handler

import (
	"github.com/labstack/echo/v4"

	"academix/internal/service"
)

// StatsHandler handles the stats endpoint.
type StatsHandler struct {
	statsService service.StatsService
}

// NewStatsHandler creates a new stats handler.
func NewStatsHandler(statsService service.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// GetStats godoc
// @Summary Entity counts and users-by-role breakdown
// @Tags stats
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} errors.ErrorResponse
// @Router /stats [get]
func (h *StatsHandler) GetStats(c echo.Context) error {
	overview, err := h.statsService.Overview(c.Request().Context())
	if err != nil {
		return serviceError(c, err)
	}
	return dataResponse(c, overview)
}
