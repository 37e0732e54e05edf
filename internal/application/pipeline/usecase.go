// Package pipeline contiene los casos de uso de la pestaña Deal Pipeline:
// la tabla de deals y el conteo por etapa y partner responsable.
package pipeline

import (
	"github.com/jhoicas/gp-dashboard-api/internal/application/dto"
	"github.com/jhoicas/gp-dashboard-api/internal/domain/repository"
)

// DealsUseCase vistas derivadas sobre el pipeline. El pipeline no responde
// al filtro del sidebar: siempre se muestra completo.
type DealsUseCase struct {
	pipelineRepo repository.PipelineRepository
}

// NewDealsUseCase construye el caso de uso.
func NewDealsUseCase(pipelineRepo repository.PipelineRepository) *DealsUseCase {
	return &DealsUseCase{pipelineRepo: pipelineRepo}
}

// Deals tabla completa del pipeline en el orden del dataset.
func (uc *DealsUseCase) Deals() []dto.DealDTO {
	deals := uc.pipelineRepo.List()

	out := make([]dto.DealDTO, 0, len(deals))
	for _, d := range deals {
		out = append(out, dto.DealDTO{
			Deal:        d.Name,
			Stage:       string(d.Stage),
			LeadPartner: d.LeadPartner,
		})
	}
	return out
}

// StageBreakdown conteo de deals por (etapa, partner), la serie del
// histograma agrupado. Las filas salen en el orden de primera aparición de
// cada pareja en el dataset.
func (uc *DealsUseCase) StageBreakdown() []dto.StageCountDTO {
	deals := uc.pipelineRepo.List()

	type key struct {
		stage   string
		partner string
	}
	counts := make(map[key]int, len(deals))
	order := make([]key, 0, len(deals))
	for _, d := range deals {
		k := key{stage: string(d.Stage), partner: d.LeadPartner}
		if _, seen := counts[k]; !seen {
			order = append(order, k)
		}
		counts[k]++
	}

	out := make([]dto.StageCountDTO, 0, len(order))
	for _, k := range order {
		out = append(out, dto.StageCountDTO{
			Stage:       k.stage,
			LeadPartner: k.partner,
			Deals:       counts[k],
		})
	}
	return out
}
