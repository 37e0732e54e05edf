// Package performance contiene los casos de uso de la pestaña Fund
// Performance y del resumen del overview: la tabla de fondos filtrada por
// la selección del sidebar, los cuatro totales y la serie de IRR.
package performance

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/gp-dashboard-api/internal/application/dto"
	"github.com/jhoicas/gp-dashboard-api/internal/domain/entity"
	"github.com/jhoicas/gp-dashboard-api/internal/domain/repository"
	"github.com/jhoicas/gp-dashboard-api/internal/domain/views"
)

// FundsUseCase vistas derivadas sobre la colección de fondos.
//
// Todas las operaciones son puras: se recalculan en cada llamada a partir
// del repositorio y del filtro que llega con el request, sin caché ni
// estado compartido entre sesiones.
type FundsUseCase struct {
	fundRepo repository.FundRepository
}

// NewFundsUseCase construye el caso de uso.
func NewFundsUseCase(fundRepo repository.FundRepository) *FundsUseCase {
	return &FundsUseCase{fundRepo: fundRepo}
}

// FilteredFunds aplica la selección del sidebar sobre la tabla de fondos.
// Selección vacía = todos los fondos en el orden del dataset; nombres
// desconocidos no hacen match y no son error.
func (uc *FundsUseCase) FilteredFunds(selection []string) []dto.FundDTO {
	funds := views.SelectFunds(uc.fundRepo.List(), selection)

	out := make([]dto.FundDTO, 0, len(funds))
	for _, f := range funds {
		out = append(out, toFundDTO(f))
	}
	return out
}

// Summary tabla (métrica, valor) con los totales de los fondos filtrados:
// compromiso, llamado, distribuciones y NAV, redondeados a 2 decimales.
func (uc *FundsUseCase) Summary(selection []string) []dto.SummaryRowDTO {
	funds := views.SelectFunds(uc.fundRepo.List(), selection)

	var commitment, called, distributions, nav decimal.Decimal
	for _, f := range funds {
		commitment = commitment.Add(f.Commitment)
		called = called.Add(f.Called)
		distributions = distributions.Add(f.Distributions)
		nav = nav.Add(f.NAV)
	}

	return []dto.SummaryRowDTO{
		{Metric: "Total Commitment", Value: commitment.Round(2)},
		{Metric: "Total Called", Value: called.Round(2)},
		{Metric: "Total Distributions", Value: distributions.Round(2)},
		{Metric: "NAV", Value: nav.Round(2)},
	}
}

// IRRComparison serie (fondo, IRR) para el gráfico de barras, sobre los
// fondos filtrados.
func (uc *FundsUseCase) IRRComparison(selection []string) []dto.IRRPointDTO {
	funds := views.SelectFunds(uc.fundRepo.List(), selection)

	out := make([]dto.IRRPointDTO, 0, len(funds))
	for _, f := range funds {
		out = append(out, dto.IRRPointDTO{Fund: f.Name, IRR: f.IRR})
	}
	return out
}

func toFundDTO(f entity.Fund) dto.FundDTO {
	return dto.FundDTO{
		Fund:          f.Name,
		Commitment:    f.Commitment,
		Called:        f.Called,
		Distributions: f.Distributions,
		NAV:           f.NAV,
		IRR:           f.IRR,
		MOIC:          f.MOIC,
		DPI:           f.DPI,
		RVPI:          f.RVPI,
		TVPI:          f.TVPI,
	}
}
