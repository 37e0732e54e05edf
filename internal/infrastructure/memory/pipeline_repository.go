package memory

import (
	"github.com/jhoicas/gp-dashboard-api/internal/domain/entity"
	"github.com/jhoicas/gp-dashboard-api/internal/domain/repository"
)

var _ repository.PipelineRepository = (*PipelineRepo)(nil)

// PipelineRepo adaptador de lectura del pipeline de deals sobre el Dataset.
type PipelineRepo struct {
	ds *Dataset
}

// NewPipelineRepository construye el adaptador.
func NewPipelineRepository(ds *Dataset) *PipelineRepo {
	return &PipelineRepo{ds: ds}
}

// List devuelve una copia de los deals en el orden de carga.
func (r *PipelineRepo) List() []entity.PipelineDeal {
	out := make([]entity.PipelineDeal, len(r.ds.deals))
	copy(out, r.ds.deals)
	return out
}
