// Package investors contiene los casos de uso de la pestaña Investor
// Relations: el directorio de LPs, el resumen de compromisos, la serie de
// compromisos por tipo y el despacho (simulado) del reporte trimestral.
package investors

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/gp-dashboard-api/internal/application/dto"
	"github.com/jhoicas/gp-dashboard-api/internal/domain/repository"
)

// RelationsUseCase vistas derivadas sobre el directorio de limited
// partners. El directorio no responde al filtro del sidebar.
type RelationsUseCase struct {
	investorRepo repository.InvestorRepository
}

// NewRelationsUseCase construye el caso de uso.
func NewRelationsUseCase(investorRepo repository.InvestorRepository) *RelationsUseCase {
	return &RelationsUseCase{investorRepo: investorRepo}
}

// LPDirectory tabla del directorio (nombre, compromiso, tipo, contacto).
func (uc *RelationsUseCase) LPDirectory() []dto.LPDTO {
	lps := uc.investorRepo.List()

	out := make([]dto.LPDTO, 0, len(lps))
	for _, lp := range lps {
		out = append(out, dto.LPDTO{
			Name:       lp.Name,
			Commitment: lp.Commitment,
			Type:       string(lp.Type),
			Email:      lp.Email,
			Phone:      lp.Phone,
		})
	}
	return out
}

// LPSummary totales del bloque de Investor Relations: compromiso total,
// promedio y número de LPs, más la etiqueta formateada que muestra el
// dashboard (el promedio con un decimal, igual que el texto original).
func (uc *RelationsUseCase) LPSummary() dto.LPSummaryDTO {
	lps := uc.investorRepo.List()

	var total decimal.Decimal
	for _, lp := range lps {
		total = total.Add(lp.Commitment)
	}

	count := len(lps)
	avg := decimal.Zero
	if count > 0 {
		avg = total.Div(decimal.NewFromInt(int64(count)))
	}

	return dto.LPSummaryDTO{
		TotalCommitment: total,
		AvgCommitment:   avg.Round(2),
		Count:           count,
		Label: fmt.Sprintf("Total Commitment: $%sM | Avg Commitment: $%sM | LPs: %d",
			total.String(), avg.StringFixed(1), count),
	}
}

// LPCommitments serie (LP, compromiso, tipo) del gráfico de barras.
func (uc *RelationsUseCase) LPCommitments() []dto.LPCommitmentPointDTO {
	lps := uc.investorRepo.List()

	out := make([]dto.LPCommitmentPointDTO, 0, len(lps))
	for _, lp := range lps {
		out = append(out, dto.LPCommitmentPointDTO{
			Name:       lp.Name,
			Commitment: lp.Commitment,
			Type:       string(lp.Type),
		})
	}
	return out
}
