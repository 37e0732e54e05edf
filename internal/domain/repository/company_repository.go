package repository

import "github.com/jhoicas/gp-dashboard-api/internal/domain/entity"

// CompanyRepository define el puerto de lectura de las compañías del
// portafolio y de sus KPIs operativos. Lecturas sin error: ver nota en
// FundRepository.
type CompanyRepository interface {
	// List devuelve las compañías en el orden original del dataset (copia).
	List() []entity.PortfolioCompany

	// ListKPIs devuelve los indicadores operativos reportados (copia).
	ListKPIs() []entity.CompanyKPI
}
