package entity

import "github.com/shopspring/decimal"

// AllocationKind distingue los dos desgloses de asignación del overview.
type AllocationKind string

const (
	AllocationSector AllocationKind = "sector"
	AllocationRegion AllocationKind = "region"
)

// AllocationSlice es una porción de la torta de asignación del portafolio
// (por sector o por región). Los pesos del dataset suman 100 por desglose.
type AllocationSlice struct {
	Kind   AllocationKind  // sector o region
	Label  string          // "Tech", "Europe", ...
	Weight decimal.Decimal // participación (%)
}
