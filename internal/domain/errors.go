package domain

import "errors"

// Errores de dominio (sin dependencias externas).
//
// ErrFormatoDatos es el error fatal de la carga del dataset: un campo de
// año que no parsea como entero. No hay recuperación ni valor por defecto
// (el centinela de exit-year es una regla de las vistas derivadas, no un
// reemplazo de datos ilegibles). La selección vacía y los nombres de fondo
// desconocidos NO son errores: son el estado "sin filtro" y el "sin match"
// definidos por el contrato de filtrado.
var (
	ErrFormatoDatos  = errors.New("formato de datos inválido en el dataset")
	ErrNotFound      = errors.New("recurso no encontrado")
	ErrInvalidInput  = errors.New("entrada inválida")
	ErrGeneracionDoc = errors.New("fallo al generar el documento")
)
