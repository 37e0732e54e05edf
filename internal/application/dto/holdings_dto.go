package dto

import "github.com/shopspring/decimal"

// CompanyDTO fila de la tabla de compañías del portafolio, ya filtrada por
// selección de fondos y año de corte.
type CompanyDTO struct {
	Company        string          `json:"company"`
	Fund           string          `json:"fund"`
	InvestmentYear int             `json:"investment_year"`
	ExitYear       *int            `json:"exit_year,omitempty"` // ausente = posición viva
	Cost           decimal.Decimal `json:"cost"`
	Value          decimal.Decimal `json:"value"`
	MOIC           decimal.Decimal `json:"moic"`
}

// HoldingPeriodDTO años de tenencia de una posición. Para posiciones vivas
// el período se proyecta hasta el año as-of fijo del dashboard.
type HoldingPeriodDTO struct {
	Company      string `json:"company"`
	HoldingYears int    `json:"holding_years"`
	Exited       bool   `json:"exited"`
}

// ValueCreationPointDTO punto (compañía, MOIC) del ranking de creación de valor.
type ValueCreationPointDTO struct {
	Company string          `json:"company"`
	MOIC    decimal.Decimal `json:"moic"`
}

// TimelineSpanDTO tramo del timeline de despliegue: desde el año de entrada
// hasta la salida (o el año as-of si la posición sigue viva).
type TimelineSpanDTO struct {
	Company  string `json:"company"`
	FromYear int    `json:"from_year"`
	ToYear   int    `json:"to_year"`
	Exited   bool   `json:"exited"`
}

// CompanyKPIDTO indicadores operativos reportados por una compañía en el
// último ciclo.
type CompanyKPIDTO struct {
	Company        string          `json:"company"`
	MonthlyRevenue decimal.Decimal `json:"monthly_revenue_k"` // miles de USD
	UserGrowth     decimal.Decimal `json:"user_growth_pct"`
	EBITDAMargin   decimal.Decimal `json:"ebitda_margin_pct"` // negativo si quema caja
}
