package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Gestion-api/internal/application/analytics"
)

// DashboardHandler estadísticas financieras agregadas del alcance del usuario.
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetStats godoc
// @Summary      Estadísticas del dashboard
// @Description  Agregados financieros (presupuesto, gasto anualizado, utilidad),
// @Description  conteos por estado y departamento y sobreasignación por empleado,
// @Description  restringidos a las oficinas visibles para el usuario del token.
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.DashboardStatsDTO
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/dashboard/stats [get]
func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	out, err := h.uc.GetStats(c.Context(), GetUserID(c), time.Now())
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}
