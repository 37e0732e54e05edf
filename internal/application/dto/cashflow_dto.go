package dto

import "github.com/shopspring/decimal"

// CashflowEventDTO movimiento de caja fechado de la serie del timeline.
// El signo del monto lleva la semántica: negativo = capital call,
// positivo = retorno.
type CashflowEventDTO struct {
	Date   string          `json:"date"` // YYYY-MM-DD
	Type   string          `json:"type"`
	Amount decimal.Decimal `json:"amount"`
	Fund   string          `json:"fund"`
}

// CashflowBreakdownRowDTO total de movimientos agrupados por tipo.
type CashflowBreakdownRowDTO struct {
	Type  string          `json:"type"`
	Total decimal.Decimal `json:"total"`
}

// CumulativeCashflowPointDTO punto de la serie acumulada: el prefijo del
// fondo hasta esta fecha, en orden cronológico.
type CumulativeCashflowPointDTO struct {
	Date       string          `json:"date"`
	Fund       string          `json:"fund"`
	Amount     decimal.Decimal `json:"amount"`
	Cumulative decimal.Decimal `json:"cumulative"`
}
