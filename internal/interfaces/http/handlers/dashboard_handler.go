package handlers

import (
	"github.com/efraim-gestao/efraim-360-api/internal/application/usecases"
	"github.com/gofiber/fiber/v2"
)

// DashboardHandler expõe as estatísticas do painel inicial.
type DashboardHandler struct {
	dashboardUseCase *usecases.DashboardUseCase
}

// NewDashboardHandler cria uma nova instância de DashboardHandler.
func NewDashboardHandler(dashboardUseCase *usecases.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{dashboardUseCase: dashboardUseCase}
}

// GetStats retorna os números agregados do dashboard.
func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	stats, err := h.dashboardUseCase.GetStats()
	if err != nil {
		return respondError(c, err, "Erro ao calcular estatísticas")
	}
	return c.JSON(stats)
}
