package investors

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/gp-dashboard-api/internal/application/dto"
	"github.com/jhoicas/gp-dashboard-api/internal/application/performance"
)

// UpdateUseCase arma el reporte trimestral (PDF) y simula su despacho a los
// LPs del directorio.
//
// El despacho es simulado: no hay integración de correo. Por cada LP se
// emite un log estructurado y la operación devuelve un recibo con el uuid
// del envío. El PDF sí se genera de verdad, vía el puerto
// ReportPDFGenerator.
type UpdateUseCase struct {
	relations *RelationsUseCase
	funds     *performance.FundsUseCase
	generator ReportPDFGenerator
	gpName    string
}

// NewUpdateUseCase construye el caso de uso. gpName es el nombre del GP que
// firma el reporte (viene de la configuración de la aplicación).
func NewUpdateUseCase(
	relations *RelationsUseCase,
	funds *performance.FundsUseCase,
	generator ReportPDFGenerator,
	gpName string,
) *UpdateUseCase {
	return &UpdateUseCase{
		relations: relations,
		funds:     funds,
		generator: generator,
		gpName:    gpName,
	}
}

// SendQuarterlyUpdate genera el PDF del trimestre en curso y simula el
// envío a cada LP del directorio (un log por LP, sin correo real).
func (uc *UpdateUseCase) SendQuarterlyUpdate(ctx context.Context) (*dto.QuarterlyUpdateReceiptDTO, error) {
	pdfBytes, filename, err := uc.QuarterlyReport(ctx)
	if err != nil {
		return nil, err
	}

	dispatchID := uuid.NewString()
	sentAt := time.Now().UTC()

	lps := uc.relations.LPDirectory()
	recipients := make([]string, 0, len(lps))
	for _, lp := range lps {
		recipients = append(recipients, lp.Name)
		log.Info().
			Str("dispatch_id", dispatchID).
			Str("lp", lp.Name).
			Str("email", lp.Email).
			Str("report", filename).
			Msg("simulando envío del reporte trimestral al LP")
	}

	return &dto.QuarterlyUpdateReceiptDTO{
		DispatchID: dispatchID,
		SentAt:     sentAt.Format(time.RFC3339),
		Recipients: recipients,
		ReportName: filename,
		ReportSize: len(pdfBytes),
	}, nil
}

// QuarterlyReport genera el PDF del trimestre en curso para descarga
// directa. Devuelve los bytes y el nombre de archivo sugerido.
func (uc *UpdateUseCase) QuarterlyReport(ctx context.Context) (pdfBytes []byte, filename string, err error) {
	quarter := quarterLabel(time.Now())

	data := ReportData{
		Quarter: quarter,
		GPName:  uc.gpName,
		Summary: uc.relations.LPSummary(),
		Funds:   uc.funds.FilteredFunds(nil), // el reporte siempre cubre todos los fondos
		LPs:     uc.relations.LPDirectory(),
	}

	pdfBytes, err = uc.generator.GenerateQuarterlyReport(ctx, data)
	if err != nil {
		return nil, "", fmt.Errorf("reporte trimestral: %w", err)
	}

	filename = fmt.Sprintf("quarterly_update_%s.pdf",
		strings.ToLower(strings.ReplaceAll(quarter, " ", "_")))
	return pdfBytes, filename, nil
}

// quarterLabel devuelve la etiqueta del trimestre, ej: "Q3 2025".
func quarterLabel(t time.Time) string {
	q := (int(t.Month())-1)/3 + 1
	return fmt.Sprintf("Q%d %d", q, t.Year())
}
