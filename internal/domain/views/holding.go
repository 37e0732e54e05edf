package views

import "github.com/jhoicas/gp-dashboard-api/internal/domain/entity"

// AsOfYear es el año "as of" fijo del dashboard. Las posiciones vivas se
// proyectan hasta este año en el período de tenencia y en el timeline de
// despliegue, y es el corte por defecto cuando el cliente no envía `year`.
//
// Es un supuesto codificado del dataset de muestra, NO la fecha actual:
// cambiarlo altera los valores derivados de todas las posiciones sin salida.
const AsOfYear = 2025

// ExitOrAsOf devuelve el año de salida de la compañía, o AsOfYear si la
// posición sigue viva. El centinela se aplica solo aquí, nunca en la
// ingesta: un ExitYear nil en la entidad siempre significa "sin salida".
func ExitOrAsOf(c entity.PortfolioCompany) int {
	if c.ExitYear != nil {
		return *c.ExitYear
	}
	return AsOfYear
}

// HoldingYears calcula los años de tenencia de una posición:
// (año de salida, o AsOfYear si sigue viva) - año de inversión.
func HoldingYears(c entity.PortfolioCompany) int {
	return ExitOrAsOf(c) - c.InvestmentYear
}
