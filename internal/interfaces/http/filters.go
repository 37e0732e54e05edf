package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gp-dashboard-api/internal/application/dto"
	"github.com/jhoicas/gp-dashboard-api/internal/domain/views"
)

// parseDashboardFilter lee el estado del sidebar desde el query string:
// `fund` repetible para la selección y `year` para el corte de año de
// inversión. Sin `year` (o con 0) aplica el año as-of del dashboard.
//
// Un `year` que no parsea como entero es error del cliente; la selección
// vacía y los nombres desconocidos no lo son.
func parseDashboardFilter(c *fiber.Ctx) (dto.DashboardFilter, error) {
	var filter dto.DashboardFilter
	if err := c.QueryParser(&filter); err != nil {
		return dto.DashboardFilter{}, err
	}
	if filter.Year <= 0 {
		filter.Year = views.AsOfYear
	}
	return filter, nil
}

// invalidParams respuesta 400 con el envelope estándar de error.
func invalidParams(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Code: "INVALID_PARAMS", Message: "parámetros de consulta inválidos",
	})
}

// internalError respuesta 500 con el envelope estándar de error.
func internalError(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Code: "INTERNAL", Message: err.Error(),
	})
}
