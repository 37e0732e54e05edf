package memory

import (
	"github.com/jhoicas/gp-dashboard-api/internal/domain/entity"
	"github.com/jhoicas/gp-dashboard-api/internal/domain/repository"
)

var _ repository.FundRepository = (*FundRepo)(nil)

// FundRepo adaptador de lectura de fondos sobre el Dataset en memoria.
type FundRepo struct {
	ds *Dataset
}

// NewFundRepository construye el adaptador.
func NewFundRepository(ds *Dataset) *FundRepo {
	return &FundRepo{ds: ds}
}

// List devuelve una copia de los fondos en el orden de carga. Mutar el
// resultado no afecta al almacén.
func (r *FundRepo) List() []entity.Fund {
	out := make([]entity.Fund, len(r.ds.funds))
	copy(out, r.ds.funds)
	return out
}
