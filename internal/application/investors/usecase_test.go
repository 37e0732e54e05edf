package investors_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gp-dashboard-api/internal/application/investors"
	"github.com/jhoicas/gp-dashboard-api/internal/infrastructure/memory"
)

func buildRelationsUseCase(t *testing.T) *investors.RelationsUseCase {
	t.Helper()
	ds, err := memory.LoadDataset()
	require.NoError(t, err, "el dataset de muestra debe cargar sin errores")
	return investors.NewRelationsUseCase(memory.NewInvestorRepository(ds))
}

func TestLPDirectory_TablaCompleta(t *testing.T) {
	uc := buildRelationsUseCase(t)

	lps := uc.LPDirectory()

	require.Len(t, lps, 3)
	assert.Equal(t, "Sovereign Fund A", lps[0].Name)
	assert.True(t, lps[0].Commitment.Equal(decimal.NewFromInt(50)))
	assert.Equal(t, "Sovereign", lps[0].Type)
	assert.Equal(t, "lpA@example.com", lps[0].Email)
	assert.Equal(t, "+62 812-3456", lps[0].Phone)

	assert.Equal(t, "Family Office B", lps[1].Name)
	assert.Equal(t, "Institutional C", lps[2].Name)
}

// TestLPSummary_TotalesYEtiqueta verifica los tres agregados del bloque de
// Investor Relations (90 total, 30 promedio, 3 LPs) y la etiqueta
// formateada tal cual la muestra el dashboard: el promedio siempre con un
// decimal.
func TestLPSummary_TotalesYEtiqueta(t *testing.T) {
	uc := buildRelationsUseCase(t)

	summary := uc.LPSummary()

	assert.True(t, summary.TotalCommitment.Equal(decimal.NewFromInt(90)),
		"compromiso total = 90, obtuvo %s", summary.TotalCommitment)
	assert.True(t, summary.AvgCommitment.Equal(decimal.NewFromInt(30)),
		"compromiso promedio = 30, obtuvo %s", summary.AvgCommitment)
	assert.Equal(t, 3, summary.Count)
	assert.Equal(t, "Total Commitment: $90M | Avg Commitment: $30.0M | LPs: 3", summary.Label)
}

func TestLPCommitments_SeriePorTipo(t *testing.T) {
	uc := buildRelationsUseCase(t)

	points := uc.LPCommitments()

	require.Len(t, points, 3)
	assert.Equal(t, "Sovereign", points[0].Type)
	assert.Equal(t, "Family Office", points[1].Type)
	assert.Equal(t, "Institution", points[2].Type)
	assert.True(t, points[1].Commitment.Equal(decimal.NewFromInt(10)))
}
