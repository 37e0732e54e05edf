// Package cashflow contiene los casos de uso de la pestaña Cash Flow
// Analysis: la serie cruda de movimientos, el desglose por tipo y el
// acumulado por fondo.
package cashflow

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/gp-dashboard-api/internal/application/dto"
	"github.com/jhoicas/gp-dashboard-api/internal/domain/entity"
	"github.com/jhoicas/gp-dashboard-api/internal/domain/repository"
)

const dateLayout = "2006-01-02"

// AnalysisUseCase vistas derivadas sobre los movimientos de caja. Los
// movimientos no se filtran por el sidebar (la pestaña muestra siempre el
// libro completo); aun así cada llamada recalcula desde el repositorio.
type AnalysisUseCase struct {
	cashflowRepo repository.CashflowRepository
}

// NewAnalysisUseCase construye el caso de uso.
func NewAnalysisUseCase(cashflowRepo repository.CashflowRepository) *AnalysisUseCase {
	return &AnalysisUseCase{cashflowRepo: cashflowRepo}
}

// Timeline serie cruda (fecha, tipo, monto, fondo) en el orden del dataset.
func (uc *AnalysisUseCase) Timeline() []dto.CashflowEventDTO {
	events := uc.cashflowRepo.List()

	out := make([]dto.CashflowEventDTO, 0, len(events))
	for _, e := range events {
		out = append(out, dto.CashflowEventDTO{
			Date:   e.Date.Format(dateLayout),
			Type:   string(e.Type),
			Amount: e.Amount,
			Fund:   e.FundName,
		})
	}
	return out
}

// Breakdown montos sumados por tipo de movimiento. Las filas salen en el
// orden de primera aparición de cada tipo en el dataset (determinista).
func (uc *AnalysisUseCase) Breakdown() []dto.CashflowBreakdownRowDTO {
	events := uc.cashflowRepo.List()

	totals := make(map[entity.CashflowType]decimal.Decimal, 4)
	order := make([]entity.CashflowType, 0, 4)
	for _, e := range events {
		if _, seen := totals[e.Type]; !seen {
			order = append(order, e.Type)
		}
		totals[e.Type] = totals[e.Type].Add(e.Amount)
	}

	out := make([]dto.CashflowBreakdownRowDTO, 0, len(order))
	for _, typ := range order {
		out = append(out, dto.CashflowBreakdownRowDTO{Type: string(typ), Total: totals[typ]})
	}
	return out
}

// Cumulative acumulado independiente por fondo: ordena los movimientos por
// fecha ascendente y lleva la suma prefija de cada fondo en ese orden.
//
// El sort es estable a propósito: dos movimientos del mismo fondo en la
// misma fecha conservan su orden de carga, así el acumulado es
// determinista entre llamadas.
func (uc *AnalysisUseCase) Cumulative() []dto.CumulativeCashflowPointDTO {
	events := uc.cashflowRepo.List()
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Date.Before(events[j].Date)
	})

	running := make(map[string]decimal.Decimal, 3)
	out := make([]dto.CumulativeCashflowPointDTO, 0, len(events))
	for _, e := range events {
		running[e.FundName] = running[e.FundName].Add(e.Amount)
		out = append(out, dto.CumulativeCashflowPointDTO{
			Date:       e.Date.Format(dateLayout),
			Fund:       e.FundName,
			Amount:     e.Amount,
			Cumulative: running[e.FundName],
		})
	}
	return out
}
