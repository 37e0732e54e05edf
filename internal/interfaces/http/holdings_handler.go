package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gp-dashboard-api/internal/application/holdings"
)

// HoldingsHandler maneja los endpoints de la pestaña Portfolio Companies.
// Todos (menos los KPIs) responden a la selección de fondos y al corte de
// año de inversión.
type HoldingsHandler struct {
	uc *holdings.CompaniesUseCase
}

// NewHoldingsHandler construye el handler.
func NewHoldingsHandler(uc *holdings.CompaniesUseCase) *HoldingsHandler {
	return &HoldingsHandler{uc: uc}
}

// GetCompanies devuelve la tabla de compañías filtrada.
// GET /api/holdings/companies?fund=…&year=2019
func (h *HoldingsHandler) GetCompanies(c *fiber.Ctx) error {
	filter, err := parseDashboardFilter(c)
	if err != nil {
		return invalidParams(c)
	}
	return c.JSON(h.uc.FilteredCompanies(filter.Funds, filter.Year))
}

// GetHoldingPeriods devuelve los años de tenencia por compañía.
// GET /api/holdings/holding-periods?fund=…&year=…
func (h *HoldingsHandler) GetHoldingPeriods(c *fiber.Ctx) error {
	filter, err := parseDashboardFilter(c)
	if err != nil {
		return invalidParams(c)
	}
	return c.JSON(h.uc.HoldingPeriods(filter.Funds, filter.Year))
}

// GetValueCreation devuelve la serie (compañía, MOIC) del ranking.
// GET /api/holdings/value-creation?fund=…&year=…
func (h *HoldingsHandler) GetValueCreation(c *fiber.Ctx) error {
	filter, err := parseDashboardFilter(c)
	if err != nil {
		return invalidParams(c)
	}
	return c.JSON(h.uc.ValueCreation(filter.Funds, filter.Year))
}

// GetTimeline devuelve los tramos del timeline de despliegue.
// GET /api/holdings/timeline?fund=…&year=…
func (h *HoldingsHandler) GetTimeline(c *fiber.Ctx) error {
	filter, err := parseDashboardFilter(c)
	if err != nil {
		return invalidParams(c)
	}
	return c.JSON(h.uc.DeploymentTimeline(filter.Funds, filter.Year))
}

// GetKPIs devuelve la tabla de indicadores operativos, sin filtrar.
// GET /api/holdings/kpis
func (h *HoldingsHandler) GetKPIs(c *fiber.Ctx) error {
	return c.JSON(h.uc.OperatingKPIs())
}
