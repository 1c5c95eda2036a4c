package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ignaciodev/inventario-api/internal/application/analytics"
)

// DashboardHandler expone los indicadores del panel.
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetStats godoc
// @Summary      Indicadores del panel
// @Description  Totales de productos, stock crítico, perecederos por vencer y movimientos de hoy.
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardStatsDTO
// @Router       /api/dashboard/stats [get]
func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	stats, err := h.uc.GetStats(c.Context(), GetScope(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(stats)
}
