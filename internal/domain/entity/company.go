package entity

import "github.com/shopspring/decimal"

// PortfolioCompany representa una participación del portafolio.
// FundName referencia a Fund.Name (clave foránea natural, sin enforcement:
// el dataset es fijo y se valida al cargarlo, no en cada lectura).
//
// Los años de inversión y salida llegan como strings en el dataset crudo y
// se parsean una sola vez durante la carga; aquí ya son enteros. ExitYear
// nil significa que la compañía sigue en el portafolio; el año centinela
// para el holding period lo aplica la capa de vistas derivadas, nunca la
// entidad.
type PortfolioCompany struct {
	Name           string          // nombre de la compañía ("Alpha", "Beta", ...)
	FundName       string          // fondo dueño de la posición
	InvestmentYear int             // año de entrada
	ExitYear       *int            // año de salida; nil = posición viva
	Cost           decimal.Decimal // costo de la inversión
	Value          decimal.Decimal // valor actual (o de salida)
	MOIC           decimal.Decimal // Value / Cost, precalculado
}

// Exited indica si la posición ya fue realizada.
func (c PortfolioCompany) Exited() bool { return c.ExitYear != nil }
