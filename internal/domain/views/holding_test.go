package views_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/gp-dashboard-api/internal/domain/entity"
	"github.com/jhoicas/gp-dashboard-api/internal/domain/views"
)

// Alpha invirtió en 2018 y salió en 2022: tenencia de 4 años.
func TestHoldingYears_PosicionRealizada(t *testing.T) {
	exit := 2022
	alpha := entity.PortfolioCompany{Name: "Alpha", InvestmentYear: 2018, ExitYear: &exit}

	assert.Equal(t, 4, views.HoldingYears(alpha))
}

// Beta invirtió en 2019 y sigue viva: se proyecta al año as-of fijo
// (2025 - 2019 = 6). El centinela NO es la fecha actual.
func TestHoldingYears_PosicionVivaUsaAnioAsOf(t *testing.T) {
	beta := entity.PortfolioCompany{Name: "Beta", InvestmentYear: 2019}

	assert.Equal(t, 6, views.HoldingYears(beta))
	assert.Equal(t, 2025, views.ExitOrAsOf(beta), "sin salida debe proyectarse al año as-of")
}

// El centinela solo aplica cuando ExitYear es nil; una salida registrada en
// el mismo año de la inversión da tenencia cero.
func TestHoldingYears_SalidaMismoAnio(t *testing.T) {
	exit := 2021
	c := entity.PortfolioCompany{Name: "Delta", InvestmentYear: 2021, ExitYear: &exit}

	assert.Equal(t, 0, views.HoldingYears(c))
	assert.Equal(t, 2021, views.ExitOrAsOf(c))
}
