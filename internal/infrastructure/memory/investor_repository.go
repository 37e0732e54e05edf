package memory

import (
	"github.com/jhoicas/gp-dashboard-api/internal/domain/entity"
	"github.com/jhoicas/gp-dashboard-api/internal/domain/repository"
)

var _ repository.InvestorRepository = (*InvestorRepo)(nil)

// InvestorRepo adaptador de lectura del directorio de LPs sobre el Dataset.
type InvestorRepo struct {
	ds *Dataset
}

// NewInvestorRepository construye el adaptador.
func NewInvestorRepository(ds *Dataset) *InvestorRepo {
	return &InvestorRepo{ds: ds}
}

// List devuelve una copia de los limited partners en el orden de carga.
func (r *InvestorRepo) List() []entity.LimitedPartner {
	out := make([]entity.LimitedPartner, len(r.ds.investors))
	copy(out, r.ds.investors)
	return out
}
