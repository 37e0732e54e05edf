package dto

// DealDTO fila de la tabla del pipeline de inversión.
type DealDTO struct {
	Deal        string `json:"deal"`
	Stage       string `json:"stage"`
	LeadPartner string `json:"lead_partner"`
}

// StageCountDTO conteo de deals por (etapa, partner responsable): la serie
// del histograma agrupado de la pestaña Deal Pipeline.
type StageCountDTO struct {
	Stage       string `json:"stage"`
	LeadPartner string `json:"lead_partner"`
	Deals       int    `json:"deals"`
}
