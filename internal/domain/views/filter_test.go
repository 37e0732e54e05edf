package views_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gp-dashboard-api/internal/domain/entity"
	"github.com/jhoicas/gp-dashboard-api/internal/domain/views"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fixtures: réplica mínima del dataset de muestra (3 fondos, 4 compañías).
// ──────────────────────────────────────────────────────────────────────────────

func sampleFunds() []entity.Fund {
	return []entity.Fund{
		{Name: "Fund I", Commitment: decimal.NewFromInt(100)},
		{Name: "Fund II", Commitment: decimal.NewFromInt(200)},
		{Name: "Fund III", Commitment: decimal.NewFromInt(300)},
	}
}

func sampleCompanies() []entity.PortfolioCompany {
	exit2022 := 2022
	return []entity.PortfolioCompany{
		{Name: "Alpha", FundName: "Fund I", InvestmentYear: 2018, ExitYear: &exit2022},
		{Name: "Beta", FundName: "Fund II", InvestmentYear: 2019},
		{Name: "Gamma", FundName: "Fund II", InvestmentYear: 2020},
		{Name: "Delta", FundName: "Fund III", InvestmentYear: 2021},
	}
}

func companyNames(companies []entity.PortfolioCompany) []string {
	names := make([]string, 0, len(companies))
	for _, c := range companies {
		names = append(names, c.Name)
	}
	return names
}

// ──────────────────────────────────────────────────────────────────────────────
// SelectFunds
// ──────────────────────────────────────────────────────────────────────────────

// Selección vacía = estado "sin filtro": debe devolver la colección completa
// en el mismo orden.
func TestSelectFunds_SeleccionVaciaDevuelveTodo(t *testing.T) {
	funds := sampleFunds()

	got := views.SelectFunds(funds, nil)

	require.Len(t, got, 3)
	assert.Equal(t, funds, got, "sin selección el filtro debe ser identidad")
}

// Toda fila devuelta pertenece a la selección y es subconjunto del original.
func TestSelectFunds_SubconjuntoDeLaSeleccion(t *testing.T) {
	funds := sampleFunds()

	got := views.SelectFunds(funds, []string{"Fund III", "Fund I"})

	require.Len(t, got, 2)
	// El orden del dataset se preserva aunque la selección venga desordenada.
	assert.Equal(t, "Fund I", got[0].Name)
	assert.Equal(t, "Fund III", got[1].Name)
}

// Un nombre desconocido no hace match y no es un error.
func TestSelectFunds_NombreDesconocidoNoHaceMatch(t *testing.T) {
	got := views.SelectFunds(sampleFunds(), []string{"Fund II", "Fund XIV"})

	require.Len(t, got, 1)
	assert.Equal(t, "Fund II", got[0].Name)
}

// Selección compuesta solo por desconocidos: resultado vacío, sin error.
func TestSelectFunds_SoloDesconocidosDevuelveVacio(t *testing.T) {
	got := views.SelectFunds(sampleFunds(), []string{"Fund X"})
	assert.Empty(t, got)
}

// Idempotencia: dos llamadas con el mismo input producen el mismo output
// (función pura, sin estado oculto).
func TestSelectFunds_Idempotente(t *testing.T) {
	funds := sampleFunds()
	sel := []string{"Fund I", "Fund II"}

	first := views.SelectFunds(funds, sel)
	second := views.SelectFunds(funds, sel)

	assert.Equal(t, first, second)
}

// ──────────────────────────────────────────────────────────────────────────────
// SelectCompanies
// ──────────────────────────────────────────────────────────────────────────────

// Corte 2019: entran exactamente Alpha (2018) y Beta (2019); quedan fuera
// Gamma (2020) y Delta (2021). El corte es inclusivo.
func TestSelectCompanies_Corte2019(t *testing.T) {
	got := views.SelectCompanies(sampleCompanies(), nil, 2019)

	assert.Equal(t, []string{"Alpha", "Beta"}, companyNames(got))
}

// Los dos predicados (corte, selección) se intersectan.
func TestSelectCompanies_CorteMasSeleccion(t *testing.T) {
	got := views.SelectCompanies(sampleCompanies(), []string{"Fund II"}, 2020)

	assert.Equal(t, []string{"Beta", "Gamma"}, companyNames(got))
}

// Con el corte en el año as-of entra todo el dataset de muestra.
func TestSelectCompanies_CorteAsOfIncluyeTodo(t *testing.T) {
	got := views.SelectCompanies(sampleCompanies(), nil, views.AsOfYear)
	assert.Len(t, got, 4)
}

// Un corte anterior a toda inversión deja la vista vacía (no es error).
func TestSelectCompanies_CorteAnteriorATodoDevuelveVacio(t *testing.T) {
	got := views.SelectCompanies(sampleCompanies(), nil, 2015)
	assert.Empty(t, got)
}

// Selección de un fondo sin compañías bajo el corte: vacío, sin error.
func TestSelectCompanies_FondoSinCompaniasBajoElCorte(t *testing.T) {
	got := views.SelectCompanies(sampleCompanies(), []string{"Fund III"}, 2019)
	assert.Empty(t, got)
}
