package repository

import "github.com/jhoicas/gp-dashboard-api/internal/domain/entity"

// InvestorRepository define el puerto de lectura del directorio de
// limited partners. Lecturas sin error: ver nota en FundRepository.
type InvestorRepository interface {
	// List devuelve los LPs en el orden original del dataset (copia).
	List() []entity.LimitedPartner
}
