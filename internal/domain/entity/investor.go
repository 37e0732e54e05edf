package entity

import "github.com/shopspring/decimal"

// InvestorType clasifica a un limited partner por su naturaleza.
type InvestorType string

// Tipos de inversionista presentes en el directorio.
const (
	InvestorSovereign    InvestorType = "Sovereign"
	InvestorFamilyOffice InvestorType = "Family Office"
	InvestorInstitution  InvestorType = "Institution"
)

// LimitedPartner es un inversionista del fondo con sus datos de contacto.
type LimitedPartner struct {
	Name       string          // nombre del LP
	Commitment decimal.Decimal // compromiso en millones de USD
	Type       InvestorType    // ver constantes Investor*
	Email      string
	Phone      string
}
