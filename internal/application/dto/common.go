package dto

// DashboardFilter estado del sidebar que acompaña cada request. No hay
// sesiones: el filtro viaja completo en el query string, así que dos
// usuarios concurrentes nunca comparten selección ni año de corte.
type DashboardFilter struct {
	Funds []string `query:"fund"` // repetible (?fund=Fund+I&fund=Fund+II); vacío = sin filtro
	Year  int      `query:"year"` // corte inclusivo del año de inversión; 0 = usar el año as-of
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
