// Package holdings contiene los casos de uso de la pestaña Portfolio
// Companies: la tabla de compañías filtrada, el período de tenencia, el
// ranking de creación de valor, el timeline de despliegue y los KPIs
// operativos reportados.
package holdings

import (
	"github.com/jhoicas/gp-dashboard-api/internal/application/dto"
	"github.com/jhoicas/gp-dashboard-api/internal/domain/entity"
	"github.com/jhoicas/gp-dashboard-api/internal/domain/repository"
	"github.com/jhoicas/gp-dashboard-api/internal/domain/views"
)

// CompaniesUseCase vistas derivadas sobre las compañías del portafolio.
// Puras y sin estado: el filtro (selección de fondos + año de corte) llega
// como argumento en cada llamada.
type CompaniesUseCase struct {
	companyRepo repository.CompanyRepository
}

// NewCompaniesUseCase construye el caso de uso.
func NewCompaniesUseCase(companyRepo repository.CompanyRepository) *CompaniesUseCase {
	return &CompaniesUseCase{companyRepo: companyRepo}
}

// FilteredCompanies compañías con año de inversión <= cutoffYear y, si la
// selección no está vacía, con fondo dentro de la selección.
func (uc *CompaniesUseCase) FilteredCompanies(selection []string, cutoffYear int) []dto.CompanyDTO {
	companies := uc.filtered(selection, cutoffYear)

	out := make([]dto.CompanyDTO, 0, len(companies))
	for _, c := range companies {
		out = append(out, dto.CompanyDTO{
			Company:        c.Name,
			Fund:           c.FundName,
			InvestmentYear: c.InvestmentYear,
			ExitYear:       c.ExitYear,
			Cost:           c.Cost,
			Value:          c.Value,
			MOIC:           c.MOIC,
		})
	}
	return out
}

// HoldingPeriods años de tenencia por compañía filtrada: salida (o el año
// as-of para posiciones vivas) menos entrada.
func (uc *CompaniesUseCase) HoldingPeriods(selection []string, cutoffYear int) []dto.HoldingPeriodDTO {
	companies := uc.filtered(selection, cutoffYear)

	out := make([]dto.HoldingPeriodDTO, 0, len(companies))
	for _, c := range companies {
		out = append(out, dto.HoldingPeriodDTO{
			Company:      c.Name,
			HoldingYears: views.HoldingYears(c),
			Exited:       c.Exited(),
		})
	}
	return out
}

// ValueCreation serie (compañía, MOIC) del ranking de creación de valor,
// en el orden del dataset.
func (uc *CompaniesUseCase) ValueCreation(selection []string, cutoffYear int) []dto.ValueCreationPointDTO {
	companies := uc.filtered(selection, cutoffYear)

	out := make([]dto.ValueCreationPointDTO, 0, len(companies))
	for _, c := range companies {
		out = append(out, dto.ValueCreationPointDTO{Company: c.Name, MOIC: c.MOIC})
	}
	return out
}

// DeploymentTimeline tramo por compañía desde el año de entrada hasta la
// salida; las posiciones vivas se proyectan al año as-of del dashboard.
func (uc *CompaniesUseCase) DeploymentTimeline(selection []string, cutoffYear int) []dto.TimelineSpanDTO {
	companies := uc.filtered(selection, cutoffYear)

	out := make([]dto.TimelineSpanDTO, 0, len(companies))
	for _, c := range companies {
		out = append(out, dto.TimelineSpanDTO{
			Company:  c.Name,
			FromYear: c.InvestmentYear,
			ToYear:   views.ExitOrAsOf(c),
			Exited:   c.Exited(),
		})
	}
	return out
}

// OperatingKPIs tabla de indicadores operativos del último ciclo, sin
// filtrar (las compañías que reportan no coinciden 1:1 con el portafolio).
func (uc *CompaniesUseCase) OperatingKPIs() []dto.CompanyKPIDTO {
	kpis := uc.companyRepo.ListKPIs()

	out := make([]dto.CompanyKPIDTO, 0, len(kpis))
	for _, k := range kpis {
		out = append(out, dto.CompanyKPIDTO{
			Company:        k.CompanyName,
			MonthlyRevenue: k.MonthlyRevenue,
			UserGrowth:     k.UserGrowth,
			EBITDAMargin:   k.EBITDAMargin,
		})
	}
	return out
}

func (uc *CompaniesUseCase) filtered(selection []string, cutoffYear int) []entity.PortfolioCompany {
	return views.SelectCompanies(uc.companyRepo.List(), selection, cutoffYear)
}
