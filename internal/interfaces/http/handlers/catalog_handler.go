package handlers

import (
	"github.com/efraim-gestao/efraim-360-api/internal/domain/catalog"
	"github.com/gofiber/fiber/v2"
)

// CatalogHandler expõe o catálogo fixo de áreas e questões do diagnóstico.
type CatalogHandler struct{}

// NewCatalogHandler cria uma nova instância de CatalogHandler.
func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

// GetAreas retorna as 12 áreas na ordem canônica do diagnóstico.
func (h *CatalogHandler) GetAreas(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"data":  catalog.Areas,
		"total": len(catalog.Areas),
	})
}

// GetQuestions retorna o catálogo de questões, opcionalmente filtrado por
// área via query param `area`.
func (h *CatalogHandler) GetQuestions(c *fiber.Ctx) error {
	areaID := c.Query("area")
	if areaID == "" {
		return c.JSON(fiber.Map{
			"data":  catalog.Questions,
			"total": len(catalog.Questions),
		})
	}

	if _, ok := catalog.AreaByID(areaID); !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Área desconhecida: " + areaID,
		})
	}

	questions := catalog.QuestionsByArea(areaID)
	return c.JSON(fiber.Map{
		"data":  questions,
		"total": len(questions),
	})
}
