package dto

import "github.com/shopspring/decimal"

// FundDTO fila de la tabla de fondos (pestaña Fund Performance). Las cifras
// monetarias están en millones de USD; los múltiplos y la IRR son valores
// opacos del sistema de administración del fondo.
type FundDTO struct {
	Fund          string          `json:"fund"`
	Commitment    decimal.Decimal `json:"commitment"`
	Called        decimal.Decimal `json:"called"`
	Distributions decimal.Decimal `json:"distributions"`
	NAV           decimal.Decimal `json:"nav"`
	IRR           decimal.Decimal `json:"irr"`
	MOIC          decimal.Decimal `json:"moic"`
	DPI           decimal.Decimal `json:"dpi"`
	RVPI          decimal.Decimal `json:"rvpi"`
	TVPI          decimal.Decimal `json:"tvpi"`
}

// SummaryRowDTO fila (métrica, valor) de la tabla de resumen del overview.
type SummaryRowDTO struct {
	Metric string          `json:"metric"`
	Value  decimal.Decimal `json:"value"` // redondeado a 2 decimales
}

// IRRPointDTO punto de la serie de comparación de IRR por fondo.
type IRRPointDTO struct {
	Fund string          `json:"fund"`
	IRR  decimal.Decimal `json:"irr"` // porcentaje anualizado
}
