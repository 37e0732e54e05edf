package performance_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gp-dashboard-api/internal/application/performance"
	"github.com/jhoicas/gp-dashboard-api/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Los tests corren contra el dataset real compilado en el binario: es
// determinista y pequeño, así que hace de fixture natural. Los totales
// esperados salen de sumar a mano los tres fondos:
//
//	Commitment 100+200+300 = 600   Called 90+180+250 = 520
//	Distributions 60+150+200 = 410 NAV 40+60+100 = 200
// ──────────────────────────────────────────────────────────────────────────────

func buildFundsUseCase(t *testing.T) *performance.FundsUseCase {
	t.Helper()
	ds, err := memory.LoadDataset()
	require.NoError(t, err, "el dataset de muestra debe cargar sin errores")
	return performance.NewFundsUseCase(memory.NewFundRepository(ds))
}

func TestFilteredFunds_SeleccionVaciaDevuelveTodos(t *testing.T) {
	uc := buildFundsUseCase(t)

	funds := uc.FilteredFunds(nil)

	require.Len(t, funds, 3, "sin selección la tabla muestra los tres fondos")
	assert.Equal(t, "Fund I", funds[0].Fund)
	assert.Equal(t, "Fund II", funds[1].Fund)
	assert.Equal(t, "Fund III", funds[2].Fund)
}

func TestFilteredFunds_SubconjuntoConservaOrden(t *testing.T) {
	uc := buildFundsUseCase(t)

	funds := uc.FilteredFunds([]string{"Fund III", "Fund I"})

	require.Len(t, funds, 2)
	assert.Equal(t, "Fund I", funds[0].Fund, "el orden es el del dataset, no el de la selección")
	assert.Equal(t, "Fund III", funds[1].Fund)
}

func TestFilteredFunds_NombreDesconocidoNoEsError(t *testing.T) {
	uc := buildFundsUseCase(t)

	funds := uc.FilteredFunds([]string{"Fund IX"})

	assert.Empty(t, funds, "un nombre que no existe simplemente no hace match")
}

// TestFilteredFunds_Idempotente verifica que repetir la misma llamada no
// cambia el resultado: las vistas se recalculan desde el repositorio y no
// acumulan estado entre requests.
func TestFilteredFunds_Idempotente(t *testing.T) {
	uc := buildFundsUseCase(t)
	selection := []string{"Fund II"}

	first := uc.FilteredFunds(selection)
	second := uc.FilteredFunds(selection)

	assert.Equal(t, first, second)
}

func TestSummary_TotalesSinFiltro(t *testing.T) {
	uc := buildFundsUseCase(t)

	rows := uc.Summary(nil)

	require.Len(t, rows, 4)
	assert.Equal(t, "Total Commitment", rows[0].Metric)
	assert.Equal(t, "Total Called", rows[1].Metric)
	assert.Equal(t, "Total Distributions", rows[2].Metric)
	assert.Equal(t, "NAV", rows[3].Metric)

	assert.True(t, rows[0].Value.Equal(decimal.NewFromInt(600)), "Total Commitment = 600, obtuvo %s", rows[0].Value)
	assert.True(t, rows[1].Value.Equal(decimal.NewFromInt(520)), "Total Called = 520, obtuvo %s", rows[1].Value)
	assert.True(t, rows[2].Value.Equal(decimal.NewFromInt(410)), "Total Distributions = 410, obtuvo %s", rows[2].Value)
	assert.True(t, rows[3].Value.Equal(decimal.NewFromInt(200)), "NAV = 200, obtuvo %s", rows[3].Value)
}

func TestSummary_FiltradoPorUnFondo(t *testing.T) {
	uc := buildFundsUseCase(t)

	rows := uc.Summary([]string{"Fund I"})

	require.Len(t, rows, 4)
	assert.True(t, rows[0].Value.Equal(decimal.NewFromInt(100)))
	assert.True(t, rows[1].Value.Equal(decimal.NewFromInt(90)))
	assert.True(t, rows[2].Value.Equal(decimal.NewFromInt(60)))
	assert.True(t, rows[3].Value.Equal(decimal.NewFromInt(40)))
}

// TestSummary_FiltroYAgregacionConmutan verifica la propiedad de ida y
// vuelta: sumar los resúmenes por fondo individual reconstruye el resumen
// sin filtro (el filtro restringe filas, nunca reescala valores).
func TestSummary_FiltroYAgregacionConmutan(t *testing.T) {
	uc := buildFundsUseCase(t)

	total := uc.Summary(nil)

	perFund := [][]string{{"Fund I"}, {"Fund II"}, {"Fund III"}}
	for i := range total {
		var sum decimal.Decimal
		for _, sel := range perFund {
			sum = sum.Add(uc.Summary(sel)[i].Value)
		}
		assert.True(t, sum.Equal(total[i].Value),
			"la métrica %s debe conmutar con el filtro: %s != %s", total[i].Metric, sum, total[i].Value)
	}
}

func TestIRRComparison_SerieCompleta(t *testing.T) {
	uc := buildFundsUseCase(t)

	points := uc.IRRComparison(nil)

	require.Len(t, points, 3)
	assert.Equal(t, "Fund I", points[0].Fund)
	assert.True(t, points[0].IRR.Equal(decimal.NewFromFloat(12.5)))
	assert.True(t, points[1].IRR.Equal(decimal.NewFromFloat(14.8)))
	assert.True(t, points[2].IRR.Equal(decimal.NewFromFloat(17.3)))
}

func TestIRRComparison_RespetaSeleccion(t *testing.T) {
	uc := buildFundsUseCase(t)

	points := uc.IRRComparison([]string{"Fund II"})

	require.Len(t, points, 1)
	assert.Equal(t, "Fund II", points[0].Fund)
	assert.True(t, points[0].IRR.Equal(decimal.NewFromFloat(14.8)))
}
