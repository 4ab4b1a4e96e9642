package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventory-command/internal/application/dto"
	"github.com/jhoicas/inventory-command/internal/domain"
)

// respondError traduce los errores de dominio a status HTTP y ErrorResponse.
// notFound es el mensaje para ErrNotFound, que depende del recurso.
func respondError(c *fiber.Ctx, err error, notFound string) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "no autorizado"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: notFound})
	case errors.Is(err, domain.ErrNoData):
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "WAITING_FOR_DATA", Message: "esperando conexión de datos"})
	case errors.Is(err, domain.ErrDataSource):
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "DATA_SOURCE", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

// parseQuery lee start_date y days. Un days no numérico es un 400.
func parseQuery(c *fiber.Ctx) (dto.ProjectionQuery, error) {
	var q dto.ProjectionQuery
	if err := c.QueryParser(&q); err != nil {
		return q, domain.ErrInvalidInput
	}
	return q, nil
}
