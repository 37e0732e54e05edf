package repository

import "github.com/jhoicas/gp-dashboard-api/internal/domain/entity"

// AllocationRepository define el puerto de lectura de los desgloses de
// asignación del portafolio (sector y región) que alimentan las tortas
// del overview. Lecturas sin error: ver nota en FundRepository.
type AllocationRepository interface {
	// List devuelve las porciones del desglose indicado, en el orden
	// original del dataset (copia).
	List(kind entity.AllocationKind) []entity.AllocationSlice
}
