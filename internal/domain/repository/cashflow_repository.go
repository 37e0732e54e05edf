package repository

import "github.com/jhoicas/gp-dashboard-api/internal/domain/entity"

// CashflowRepository define el puerto de lectura de los movimientos de
// caja. Lecturas sin error: ver nota en FundRepository.
type CashflowRepository interface {
	// List devuelve los movimientos en el orden original del dataset
	// (copia). El orden de carga ya es cronológico, pero las vistas que
	// dependen del orden re-ordenan por fecha con sort estable en lugar
	// de confiar en esta propiedad.
	List() []entity.CashflowEvent
}
