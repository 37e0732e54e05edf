package memory

import (
	"github.com/jhoicas/gp-dashboard-api/internal/domain/entity"
	"github.com/jhoicas/gp-dashboard-api/internal/domain/repository"
)

var _ repository.AllocationRepository = (*AllocationRepo)(nil)

// AllocationRepo adaptador de lectura de las asignaciones del overview.
type AllocationRepo struct {
	ds *Dataset
}

// NewAllocationRepository construye el adaptador.
func NewAllocationRepository(ds *Dataset) *AllocationRepo {
	return &AllocationRepo{ds: ds}
}

// List devuelve una copia de las porciones del desglose indicado, en el
// orden de carga. Un kind desconocido devuelve una lista vacía.
func (r *AllocationRepo) List(kind entity.AllocationKind) []entity.AllocationSlice {
	var src []entity.AllocationSlice
	switch kind {
	case entity.AllocationSector:
		src = r.ds.sectors
	case entity.AllocationRegion:
		src = r.ds.regions
	default:
		return []entity.AllocationSlice{}
	}
	out := make([]entity.AllocationSlice, len(src))
	copy(out, src)
	return out
}
