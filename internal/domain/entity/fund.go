package entity

import "github.com/shopspring/decimal"

// Fund representa un fondo de private equity administrado por el GP.
// Todas las cifras monetarias están en millones de USD; los múltiplos
// (MOIC, DPI, RVPI, TVPI) y la IRR llegan ya calculados desde el sistema
// de administración del fondo y aquí se tratan como valores opacos.
type Fund struct {
	Name          string          // clave natural, única ("Fund I", "Fund II", ...)
	Commitment    decimal.Decimal // capital comprometido por los LPs
	Called        decimal.Decimal // capital efectivamente llamado
	Distributions decimal.Decimal // distribuciones acumuladas a los LPs
	NAV           decimal.Decimal // valor neto de los activos no realizados
	IRR           decimal.Decimal // tasa interna de retorno anualizada (%)
	MOIC          decimal.Decimal // múltiplo sobre capital invertido
	DPI           decimal.Decimal // distributed to paid-in
	RVPI          decimal.Decimal // residual value to paid-in
	TVPI          decimal.Decimal // total value to paid-in
}
