package memory

import (
	"github.com/jhoicas/gp-dashboard-api/internal/domain/entity"
	"github.com/jhoicas/gp-dashboard-api/internal/domain/repository"
)

var _ repository.CashflowRepository = (*CashflowRepo)(nil)

// CashflowRepo adaptador de lectura de movimientos de caja sobre el Dataset.
type CashflowRepo struct {
	ds *Dataset
}

// NewCashflowRepository construye el adaptador.
func NewCashflowRepository(ds *Dataset) *CashflowRepo {
	return &CashflowRepo{ds: ds}
}

// List devuelve una copia de los movimientos en el orden de carga.
func (r *CashflowRepo) List() []entity.CashflowEvent {
	out := make([]entity.CashflowEvent, len(r.ds.cashflows))
	copy(out, r.ds.cashflows)
	return out
}
