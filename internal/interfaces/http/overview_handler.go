package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gp-dashboard-api/internal/application/overview"
)

// OverviewHandler maneja el endpoint de asignaciones del Portfolio Overview.
type OverviewHandler struct {
	uc *overview.AllocationsUseCase
}

// NewOverviewHandler construye el handler.
func NewOverviewHandler(uc *overview.AllocationsUseCase) *OverviewHandler {
	return &OverviewHandler{uc: uc}
}

// GetAllocations devuelve los desgloses por sector y región de las dos
// tortas del overview. Son pesos fijos del dataset: no reciben filtro.
// GET /api/overview/allocations
func (h *OverviewHandler) GetAllocations(c *fiber.Ctx) error {
	return c.JSON(h.uc.Allocations())
}
