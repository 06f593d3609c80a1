package middleware

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/time/rate"
)

// NewReportLimiter cria o limitador das rotas de relatório. A geração passa
// por um serviço de IA pago e lento: requisições acima da taxa recebem 429
// em vez de enfileirar chamadas ao modelo.
func NewReportLimiter(rps float64, burst int) fiber.Handler {
	limiter := rate.NewLimiter(rate.Limit(rps), burst)

	return func(c *fiber.Ctx) error {
		if !limiter.Allow() {
			log.Printf("⚠️ Limite de geração de relatórios atingido: %s %s", c.Method(), c.Path())
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Muitas solicitações de relatório. Aguarde alguns segundos e tente novamente.",
			})
		}
		return c.Next()
	}
}
