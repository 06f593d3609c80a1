package handlers

import (
	"errors"

	"github.com/efraim-gestao/efraim-360-api/internal/domain/repositories"
	"github.com/efraim-gestao/efraim-360-api/internal/domain/scoring"
	"github.com/gofiber/fiber/v2"
)

// respondError converte o erro da camada de aplicação no status HTTP
// adequado: violação de contrato vira 400, registro ausente 404 e falha de
// persistência 500 (o chamador pode tentar de novo).
func respondError(c *fiber.Ctx, err error, fallbackMsg string) error {
	switch {
	case errors.Is(err, scoring.ErrUnknownQuestion), errors.Is(err, scoring.ErrInvalidOption):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, repositories.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Diagnóstico não encontrado"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fallbackMsg + ": " + err.Error()})
	}
}
