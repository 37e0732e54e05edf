package memory

import (
	"github.com/jhoicas/gp-dashboard-api/internal/domain/entity"
	"github.com/jhoicas/gp-dashboard-api/internal/domain/repository"
)

var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo adaptador de lectura de compañías y KPIs sobre el Dataset.
type CompanyRepo struct {
	ds *Dataset
}

// NewCompanyRepository construye el adaptador.
func NewCompanyRepository(ds *Dataset) *CompanyRepo {
	return &CompanyRepo{ds: ds}
}

// List devuelve una copia de las compañías en el orden de carga. El puntero
// ExitYear también se copia: escribir a través de él no toca el almacén.
func (r *CompanyRepo) List() []entity.PortfolioCompany {
	out := make([]entity.PortfolioCompany, len(r.ds.companies))
	copy(out, r.ds.companies)
	for i := range out {
		if out[i].ExitYear != nil {
			y := *out[i].ExitYear
			out[i].ExitYear = &y
		}
	}
	return out
}

// ListKPIs devuelve una copia de los indicadores operativos reportados.
func (r *CompanyRepo) ListKPIs() []entity.CompanyKPI {
	out := make([]entity.CompanyKPI, len(r.ds.kpis))
	copy(out, r.ds.kpis)
	return out
}
