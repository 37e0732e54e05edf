package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gp-dashboard-api/internal/application/investors"
)

// InvestorsHandler maneja los endpoints de la pestaña Investor Relations:
// el directorio de LPs, sus agregados y el reporte trimestral.
type InvestorsHandler struct {
	relations *investors.RelationsUseCase
	update    *investors.UpdateUseCase
}

// NewInvestorsHandler construye el handler.
func NewInvestorsHandler(relations *investors.RelationsUseCase, update *investors.UpdateUseCase) *InvestorsHandler {
	return &InvestorsHandler{relations: relations, update: update}
}

// GetDirectory devuelve la tabla del directorio de LPs.
// GET /api/investors/directory
func (h *InvestorsHandler) GetDirectory(c *fiber.Ctx) error {
	return c.JSON(h.relations.LPDirectory())
}

// GetSummary devuelve compromiso total, promedio, conteo y la etiqueta
// formateada del bloque de Investor Relations.
// GET /api/investors/summary
func (h *InvestorsHandler) GetSummary(c *fiber.Ctx) error {
	return c.JSON(h.relations.LPSummary())
}

// GetCommitments devuelve la serie (LP, compromiso, tipo).
// GET /api/investors/commitments
func (h *InvestorsHandler) GetCommitments(c *fiber.Ctx) error {
	return c.JSON(h.relations.LPCommitments())
}

// SendQuarterlyUpdate genera el reporte trimestral y simula su despacho a
// todos los LPs del directorio. Devuelve el recibo del envío.
// POST /api/investors/quarterly-update
func (h *InvestorsHandler) SendQuarterlyUpdate(c *fiber.Ctx) error {
	receipt, err := h.update.SendQuarterlyUpdate(c.Context())
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(receipt)
}

// DownloadQuarterlyReport descarga el PDF del reporte del trimestre en
// curso.
// GET /api/investors/quarterly-report
func (h *InvestorsHandler) DownloadQuarterlyReport(c *fiber.Ctx) error {
	pdfBytes, filename, err := h.update.QuarterlyReport(c.Context())
	if err != nil {
		return internalError(c, err)
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}
