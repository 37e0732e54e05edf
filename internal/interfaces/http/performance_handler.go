package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gp-dashboard-api/internal/application/performance"
)

// PerformanceHandler maneja los endpoints de la pestaña Fund Performance.
type PerformanceHandler struct {
	uc *performance.FundsUseCase
}

// NewPerformanceHandler construye el handler.
func NewPerformanceHandler(uc *performance.FundsUseCase) *PerformanceHandler {
	return &PerformanceHandler{uc: uc}
}

// GetFunds devuelve la tabla de fondos filtrada por la selección.
// GET /api/performance/funds?fund=Fund+I&fund=Fund+II
//
// Sin parámetros devuelve los tres fondos; nombres desconocidos
// simplemente no hacen match (no es un 4xx).
func (h *PerformanceHandler) GetFunds(c *fiber.Ctx) error {
	filter, err := parseDashboardFilter(c)
	if err != nil {
		return invalidParams(c)
	}
	return c.JSON(h.uc.FilteredFunds(filter.Funds))
}

// GetSummary devuelve las cuatro filas (métrica, valor) del resumen.
// GET /api/performance/summary?fund=…
func (h *PerformanceHandler) GetSummary(c *fiber.Ctx) error {
	filter, err := parseDashboardFilter(c)
	if err != nil {
		return invalidParams(c)
	}
	return c.JSON(h.uc.Summary(filter.Funds))
}

// GetIRR devuelve la serie (fondo, IRR) del gráfico de comparación.
// GET /api/performance/irr?fund=…
func (h *PerformanceHandler) GetIRR(c *fiber.Ctx) error {
	filter, err := parseDashboardFilter(c)
	if err != nil {
		return invalidParams(c)
	}
	return c.JSON(h.uc.IRRComparison(filter.Funds))
}
