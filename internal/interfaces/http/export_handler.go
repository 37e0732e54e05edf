package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gp-dashboard-api/internal/application/export"
)

// Content-Type del dialecto SpreadsheetML (Excel 2003 XML). Excel lo asocia
// al .xls aunque el cuerpo sea XML plano.
const spreadsheetContentType = "application/vnd.ms-excel"

// ExportHandler maneja las descargas de tablas del dashboard.
type ExportHandler struct {
	uc *export.DownloadUseCase
}

// NewExportHandler construye el handler.
func NewExportHandler(uc *export.DownloadUseCase) *ExportHandler {
	return &ExportHandler{uc: uc}
}

// DownloadFunds descarga la tabla de fondos como libro de Excel,
// respetando la selección del sidebar.
// GET /api/exports/funds?fund=…
func (h *ExportHandler) DownloadFunds(c *fiber.Ctx) error {
	filter, err := parseDashboardFilter(c)
	if err != nil {
		return invalidParams(c)
	}

	workbook, filename, err := h.uc.FundsWorkbook(filter.Funds)
	if err != nil {
		return internalError(c, err)
	}
	return sendWorkbook(c, workbook, filename)
}

// DownloadPipeline descarga la tabla completa del pipeline como libro de
// Excel.
// GET /api/exports/pipeline
func (h *ExportHandler) DownloadPipeline(c *fiber.Ctx) error {
	workbook, filename, err := h.uc.PipelineWorkbook()
	if err != nil {
		return internalError(c, err)
	}
	return sendWorkbook(c, workbook, filename)
}

func sendWorkbook(c *fiber.Ctx, workbook []byte, filename string) error {
	c.Set(fiber.HeaderContentType, spreadsheetContentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(workbook)
}
