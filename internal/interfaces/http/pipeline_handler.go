package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gp-dashboard-api/internal/application/pipeline"
)

// PipelineHandler maneja los endpoints de la pestaña Deal Pipeline.
type PipelineHandler struct {
	uc *pipeline.DealsUseCase
}

// NewPipelineHandler construye el handler.
func NewPipelineHandler(uc *pipeline.DealsUseCase) *PipelineHandler {
	return &PipelineHandler{uc: uc}
}

// GetDeals devuelve la tabla completa del pipeline.
// GET /api/pipeline/deals
func (h *PipelineHandler) GetDeals(c *fiber.Ctx) error {
	return c.JSON(h.uc.Deals())
}

// GetStages devuelve el conteo de deals por (etapa, partner).
// GET /api/pipeline/stages
func (h *PipelineHandler) GetStages(c *fiber.Ctx) error {
	return c.JSON(h.uc.StageBreakdown())
}
