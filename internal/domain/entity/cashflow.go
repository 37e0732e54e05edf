package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// CashflowType clasifica un movimiento de caja del fondo.
type CashflowType string

// Tipos de movimiento (deben coincidir con el dataset literal).
const (
	CashflowInvestment CashflowType = "Investment" // inversión inicial (capital call, monto negativo)
	CashflowFollowOn   CashflowType = "Follow-on"  // inversión de seguimiento (negativo)
	CashflowExit       CashflowType = "Exit"       // venta de la posición (positivo)
	CashflowDividend   CashflowType = "Dividend"   // dividendo recibido (positivo)
)

// CashflowEvent es un movimiento de caja fechado de un fondo.
// El signo del monto lleva la semántica: negativo = capital call hacia la
// inversión, positivo = retorno hacia el fondo. No se valida que el signo
// sea coherente con el tipo; el dataset de muestra ya lo es.
type CashflowEvent struct {
	Date     time.Time       // fecha del movimiento (cierre de trimestre en el dataset)
	Type     CashflowType    // ver constantes Cashflow*
	Amount   decimal.Decimal // monto con signo
	FundName string          // fondo al que pertenece el movimiento
}
