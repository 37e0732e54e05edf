package dto

import "github.com/shopspring/decimal"

// LPDTO fila del directorio de limited partners.
type LPDTO struct {
	Name       string          `json:"lp_name"`
	Commitment decimal.Decimal `json:"commitment_m"` // millones de USD
	Type       string          `json:"type"`
	Email      string          `json:"email"`
	Phone      string          `json:"phone"`
}

// LPSummaryDTO totales del bloque de Investor Relations. Label reproduce el
// texto exacto que muestra el dashboard:
// "Total Commitment: $90M | Avg Commitment: $30.0M | LPs: 3".
type LPSummaryDTO struct {
	TotalCommitment decimal.Decimal `json:"total_commitment"`
	AvgCommitment   decimal.Decimal `json:"avg_commitment"`
	Count           int             `json:"lp_count"`
	Label           string          `json:"label"`
}

// LPCommitmentPointDTO punto de la serie de compromisos por LP, coloreada
// por tipo de inversionista.
type LPCommitmentPointDTO struct {
	Name       string          `json:"lp_name"`
	Commitment decimal.Decimal `json:"commitment_m"`
	Type       string          `json:"type"`
}

// QuarterlyUpdateReceiptDTO recibo del despacho simulado del reporte
// trimestral a los LPs.
type QuarterlyUpdateReceiptDTO struct {
	DispatchID string   `json:"dispatch_id"` // uuid del envío
	SentAt     string   `json:"sent_at"`     // RFC 3339 UTC
	Recipients []string `json:"recipients"`  // LPs notificados, en orden del directorio
	ReportName string   `json:"report_name"`
	ReportSize int      `json:"report_size_bytes"`
}
