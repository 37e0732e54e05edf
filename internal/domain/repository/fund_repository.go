package repository

import "github.com/jhoicas/gp-dashboard-api/internal/domain/entity"

// FundRepository define el puerto de lectura de los fondos (DIP).
// La implementación vive en infrastructure. El dataset se compila dentro
// del binario y se valida al arrancar, por eso las lecturas no devuelven
// error: después de la carga no existe "no encontrado" ni "malformado".
type FundRepository interface {
	// List devuelve todos los fondos en el orden original del dataset.
	// La implementación entrega una copia: mutar el resultado no afecta
	// al almacén.
	List() []entity.Fund
}
