package investors

import (
	"context"

	"github.com/jhoicas/gp-dashboard-api/internal/application/dto"
)

// ReportData contenido ya derivado del reporte trimestral: el generador
// solo lo vuelca al PDF, no calcula nada.
type ReportData struct {
	Quarter string // etiqueta del trimestre, ej. "Q3 2025"
	GPName  string // nombre del GP emisor
	Summary dto.LPSummaryDTO
	Funds   []dto.FundDTO
	LPs     []dto.LPDTO
}

// ReportPDFGenerator puerto del generador del PDF del reporte trimestral.
// La implementación vive en infrastructure.
type ReportPDFGenerator interface {
	GenerateQuarterlyReport(ctx context.Context, data ReportData) ([]byte, error)
}
