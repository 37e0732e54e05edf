package repository

import "github.com/jhoicas/gp-dashboard-api/internal/domain/entity"

// PipelineRepository define el puerto de lectura del pipeline de deals.
// Lecturas sin error: ver nota en FundRepository.
type PipelineRepository interface {
	// List devuelve los deals en el orden original del dataset (copia).
	List() []entity.PipelineDeal
}
