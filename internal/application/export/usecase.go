// Package export arma los documentos tabulares descargables del dashboard
// (tabla de fondos y pipeline) y delega su serialización al puerto
// TableEncoder. Los contenidos salen de las mismas vistas derivadas que
// alimentan las tablas en pantalla.
package export

import (
	"fmt"

	"github.com/jhoicas/gp-dashboard-api/internal/application/performance"
	"github.com/jhoicas/gp-dashboard-api/internal/application/pipeline"
)

// DownloadUseCase construye los libros exportables del dashboard.
type DownloadUseCase struct {
	funds   *performance.FundsUseCase
	deals   *pipeline.DealsUseCase
	encoder TableEncoder
}

// NewDownloadUseCase construye el caso de uso inyectando sus dependencias.
func NewDownloadUseCase(
	funds *performance.FundsUseCase,
	deals *pipeline.DealsUseCase,
	encoder TableEncoder,
) *DownloadUseCase {
	return &DownloadUseCase{funds: funds, deals: deals, encoder: encoder}
}

// FundsWorkbook serializa la tabla de fondos como libro descargable,
// respetando la selección del sidebar (selección vacía = todos).
//
// Retorna (bytes, filename, nil) si todo sale bien, o el error del
// codificador envuelto.
func (uc *DownloadUseCase) FundsWorkbook(selection []string) ([]byte, string, error) {
	// ── 1. Armar la tabla a partir de la vista filtrada ───────────────────────
	funds := uc.funds.FilteredFunds(selection)

	doc := TableDocument{
		Title:   "Fund Performance",
		Sheet:   "Funds",
		Columns: []string{"Fund", "Commitment", "Called", "Distributions", "NAV", "IRR", "MOIC", "DPI", "RVPI", "TVPI"},
		Rows:    make([][]Cell, 0, len(funds)),
	}
	for _, f := range funds {
		doc.Rows = append(doc.Rows, []Cell{
			StringCell(f.Fund),
			NumberCell(f.Commitment),
			NumberCell(f.Called),
			NumberCell(f.Distributions),
			NumberCell(f.NAV),
			NumberCell(f.IRR),
			NumberCell(f.MOIC),
			NumberCell(f.DPI),
			NumberCell(f.RVPI),
			NumberCell(f.TVPI),
		})
	}

	// ── 2. Serializar con el adaptador ────────────────────────────────────────
	out, err := uc.encoder.Encode(doc)
	if err != nil {
		return nil, "", fmt.Errorf("export: libro de fondos: %w", err)
	}
	return out, "company_profile.xls", nil
}

// PipelineWorkbook serializa la tabla completa del pipeline como libro
// descargable. El pipeline no responde al filtro de fondos.
func (uc *DownloadUseCase) PipelineWorkbook() ([]byte, string, error) {
	deals := uc.deals.Deals()

	doc := TableDocument{
		Title:   "Deal Pipeline",
		Sheet:   "Pipeline",
		Columns: []string{"Deal", "Stage", "Lead Partner"},
		Rows:    make([][]Cell, 0, len(deals)),
	}
	for _, d := range deals {
		doc.Rows = append(doc.Rows, []Cell{
			StringCell(d.Deal),
			StringCell(d.Stage),
			StringCell(d.LeadPartner),
		})
	}

	out, err := uc.encoder.Encode(doc)
	if err != nil {
		return nil, "", fmt.Errorf("export: libro del pipeline: %w", err)
	}
	return out, "deal_pipeline.xls", nil
}
