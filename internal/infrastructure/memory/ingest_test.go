package memory

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gp-dashboard-api/internal/domain"
)

// Tests de caja blanca de la ingesta: el error de formato de datos es fatal
// (la carga devuelve error y el proceso no arranca), sin sustitución de
// valores ni filas descartadas.

func TestLoad_AnioDeInversionIlegibleEsFatal(t *testing.T) {
	s := sampleSeed()
	s.companies[1].invested = "dos mil diecinueve"

	ds, err := load(s)

	assert.Nil(t, ds)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrFormatoDatos)
	assert.Contains(t, err.Error(), "Beta", "el error debe identificar la fila problemática")
}

func TestLoad_AnioDeSalidaIlegibleEsFatal(t *testing.T) {
	s := sampleSeed()
	s.companies[0].exited = "22-x"

	_, err := load(s)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrFormatoDatos)
}

func TestLoad_FechaDeMovimientoIlegibleEsFatal(t *testing.T) {
	s := sampleSeed()
	s.cashflows[3].date = "31/12/2018" // formato equivocado

	_, err := load(s)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrFormatoDatos)
}

// La salida vacía no es un error de formato: es la representación de una
// posición viva y queda como nil.
func TestLoad_SalidaVaciaNoEsError(t *testing.T) {
	s := sampleSeed()

	ds, err := load(s)

	require.NoError(t, err)
	assert.Nil(t, ds.companies[1].ExitYear)
	assert.Nil(t, ds.companies[2].ExitYear)
	assert.Nil(t, ds.companies[3].ExitYear)
}

// Las inconsistencias entre campos no bloquean la carga (decisión
// permisiva): solo se registran como warning y el dato queda tal cual.
func TestLoad_InconsistenciasNoBloqueanLaCarga(t *testing.T) {
	s := sampleSeed()
	s.companies[0].exited = "2016" // anterior a la inversión (2018)
	s.funds[0].Called = decimal.NewFromInt(150)

	ds, err := load(s)

	require.NoError(t, err)
	require.NotNil(t, ds.companies[0].ExitYear)
	assert.Equal(t, 2016, *ds.companies[0].ExitYear, "el dato inconsistente se conserva sin corregir")
	assert.True(t, ds.funds[0].Called.Equal(decimal.NewFromInt(150)))
}
