// Package pdf implementa la generación del reporte trimestral para LPs.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del GP  │  "Quarterly Update" + trimestre    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN LP: compromiso total / promedio / número de LPs     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA FONDOS: Fund | Comm | Called | Dist | NAV | IRR | …   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA LPs: LP | Tipo | Compromiso | Email                   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: leyenda de confidencialidad                         │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/gp-dashboard-api/internal/application/dto"
	"github.com/jhoicas/gp-dashboard-api/internal/application/investors"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 51, Blue: 102}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa investors.ReportPDFGenerator usando
// Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateQuarterlyReport genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateQuarterlyReport(
	_ context.Context,
	data investors.ReportData,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Quarterly Update "+data.Quarter, true).
		WithAuthor(data.GPName, true).
		Build()

	m := maroto.New(cfg)

	// Header principal
	m.AddRows(headerRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	// Bloque de resumen de LPs
	m.AddRows(summaryRow(data.Summary))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	// Tabla de fondos
	m.AddRows(sectionTitleRow("FUND PERFORMANCE"))
	m.AddRows(fundTableHeaderRow())
	for _, r := range fundTableRows(data.Funds) {
		m.AddRows(r)
	}

	// Tabla de compromisos por LP
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(sectionTitleRow("LIMITED PARTNERS"))
	m.AddRows(lpTableHeaderRow())
	for _, r := range lpTableRows(data.LPs) {
		m.AddRows(r)
	}

	// Footer
	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(data))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar reporte trimestral: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre del GP (izq) y etiqueta del trimestre (der).
func headerRow(data investors.ReportData) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(data.GPName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Private Equity GP Dashboard", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("QUARTERLY UPDATE", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(data.Quarter, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
		),
	)
}

// summaryRow: los tres agregados del directorio en un renglón.
func summaryRow(summary dto.LPSummaryDTO) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("INVESTOR RELATIONS", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(summary.Label, props.Text{Size: 9, Top: 7}),
		),
	)
}

func sectionTitleRow(title string) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(title, props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2,
		}),
	))
}

// fundTableHeaderRow: cabecera de la tabla de fondos.
func fundTableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Fund", 2, align.Left),
		h("Commitment", 2, align.Right),
		h("Called", 2, align.Right),
		h("Distributions", 2, align.Right),
		h("NAV", 1, align.Right),
		h("IRR", 1, align.Right),
		h("MOIC", 1, align.Right),
		h("TVPI", 1, align.Right),
	)
}

// fundTableRows: una fila por fondo, montos en millones de USD.
func fundTableRows(funds []dto.FundDTO) []core.Row {
	result := make([]core.Row, 0, len(funds))
	for _, f := range funds {
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(
				f.Fund,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				"$"+f.Commitment.String()+"M",
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				"$"+f.Called.String()+"M",
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				"$"+f.Distributions.String()+"M",
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(1).Add(text.New(
				"$"+f.NAV.String()+"M",
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(1).Add(text.New(
				f.IRR.StringFixed(1)+"%",
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(1).Add(text.New(
				f.MOIC.StringFixed(2)+"x",
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(1).Add(text.New(
				f.TVPI.StringFixed(2)+"x",
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// lpTableHeaderRow: cabecera del directorio de LPs.
func lpTableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Limited Partner", 4, align.Left),
		h("Type", 3, align.Left),
		h("Commitment", 2, align.Right),
		h("Email", 3, align.Left),
	)
}

// lpTableRows: una fila por LP del directorio.
func lpTableRows(lps []dto.LPDTO) []core.Row {
	result := make([]core.Row, 0, len(lps))
	for _, lp := range lps {
		result = append(result, row.New(7).Add(
			col.New(4).Add(text.New(
				lp.Name,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(3).Add(text.New(
				lp.Type,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				"$"+lp.Commitment.String()+"M",
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(3).Add(text.New(
				lp.Email,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
		))
	}
	return result
}

// footerRow: leyenda de confidencialidad.
func footerRow(data investors.ReportData) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(
			fmt.Sprintf("Confidencial — preparado por %s exclusivamente para sus limited partners. "+
				"No distribuir sin autorización escrita del GP.", data.GPName),
			props.Text{Size: 6.5, Color: colorGray, Top: 2},
		),
	))
}

var _ investors.ReportPDFGenerator = (*MarotoReportGenerator)(nil)
