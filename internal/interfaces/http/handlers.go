// Package http expone las páginas de la consola como endpoints JSON locales.
// Cada página es el mismo patrón instanciado: vista tipada con su función de
// carga, flujo de mutaciones que la resincroniza, y mapeo de la taxonomía de
// errores de dominio a respuestas HTTP.
package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stocksync-console/internal/application/dto"
	"github.com/jhoicas/stocksync-console/internal/domain"
)

// errorJSON mapea la taxonomía de dominio al cuerpo de error estándar.
func errorJSON(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrNoSelection):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "NO_SELECTION", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidCredentials):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: err.Error()})
	case errors.Is(err, domain.ErrNoCredential):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "NO_CREDENTIAL", Message: err.Error()})
	case errors.Is(err, domain.ErrAuthExpired):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "AUTH_EXPIRED", Message: err.Error()})
	case errors.Is(err, domain.ErrNetwork):
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "NETWORK_ERROR", Message: err.Error()})
	}
	if se, ok := domain.IsServerError(err); ok {
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "BACKEND_ERROR", Message: se.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}

// invalidBody respuesta estándar para cuerpos que no parsean.
func invalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}

// validation respuesta estándar para validaciones de formulario. El rechazo se
// resuelve aquí: nunca llega a la red ni se notifica como toast.
func validation(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: message})
}
