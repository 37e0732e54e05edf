package dto

import "github.com/shopspring/decimal"

// AllocationSliceDTO porción de una torta de asignación del overview.
type AllocationSliceDTO struct {
	Label  string          `json:"label"`
	Weight decimal.Decimal `json:"weight_pct"`
}

// AllocationsDTO los dos desgloses estáticos del portafolio.
type AllocationsDTO struct {
	Sector []AllocationSliceDTO `json:"sector"`
	Region []AllocationSliceDTO `json:"region"`
}
