package entity

import "github.com/shopspring/decimal"

// CompanyKPI son los indicadores operativos reportados por una compañía
// del portafolio en el último ciclo. Los márgenes pueden ser negativos
// (compañías en etapa de crecimiento que aún queman caja).
type CompanyKPI struct {
	CompanyName    string          // compañía que reporta
	MonthlyRevenue decimal.Decimal // ingreso mensual en miles de USD
	UserGrowth     decimal.Decimal // crecimiento de usuarios (%)
	EBITDAMargin   decimal.Decimal // margen EBITDA (%), negativo si quema caja
}
