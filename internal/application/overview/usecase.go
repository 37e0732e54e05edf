// Package overview contiene el caso de uso de las tortas de asignación del
// Portfolio Overview (sector y región).
package overview

import (
	"github.com/jhoicas/gp-dashboard-api/internal/application/dto"
	"github.com/jhoicas/gp-dashboard-api/internal/domain/entity"
	"github.com/jhoicas/gp-dashboard-api/internal/domain/repository"
)

// AllocationsUseCase sirve los dos desgloses estáticos del portafolio.
// No responden al filtro del sidebar: son pesos fijos del dataset.
type AllocationsUseCase struct {
	allocationRepo repository.AllocationRepository
}

// NewAllocationsUseCase construye el caso de uso.
func NewAllocationsUseCase(allocationRepo repository.AllocationRepository) *AllocationsUseCase {
	return &AllocationsUseCase{allocationRepo: allocationRepo}
}

// Allocations ambos desgloses (sector y región) en el orden del dataset.
func (uc *AllocationsUseCase) Allocations() dto.AllocationsDTO {
	return dto.AllocationsDTO{
		Sector: toSlices(uc.allocationRepo.List(entity.AllocationSector)),
		Region: toSlices(uc.allocationRepo.List(entity.AllocationRegion)),
	}
}

func toSlices(slices []entity.AllocationSlice) []dto.AllocationSliceDTO {
	out := make([]dto.AllocationSliceDTO, 0, len(slices))
	for _, s := range slices {
		out = append(out, dto.AllocationSliceDTO{Label: s.Label, Weight: s.Weight})
	}
	return out
}
