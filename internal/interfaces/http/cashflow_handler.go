package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gp-dashboard-api/internal/application/cashflow"
)

// CashflowHandler maneja los endpoints de la pestaña Cash Flow Analysis.
// La pestaña muestra siempre el libro completo: ninguno de estos endpoints
// recibe parámetros.
type CashflowHandler struct {
	uc *cashflow.AnalysisUseCase
}

// NewCashflowHandler construye el handler.
func NewCashflowHandler(uc *cashflow.AnalysisUseCase) *CashflowHandler {
	return &CashflowHandler{uc: uc}
}

// GetTimeline devuelve la serie cruda de movimientos.
// GET /api/cashflows/timeline
func (h *CashflowHandler) GetTimeline(c *fiber.Ctx) error {
	return c.JSON(h.uc.Timeline())
}

// GetBreakdown devuelve los montos sumados por tipo de movimiento.
// GET /api/cashflows/breakdown
func (h *CashflowHandler) GetBreakdown(c *fiber.Ctx) error {
	return c.JSON(h.uc.Breakdown())
}

// GetCumulative devuelve el acumulado por fondo en orden cronológico.
// GET /api/cashflows/cumulative
func (h *CashflowHandler) GetCumulative(c *fiber.Ctx) error {
	return c.JSON(h.uc.Cumulative())
}
