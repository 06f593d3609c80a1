package handlers

import (
	"github.com/efraim-gestao/efraim-360-api/internal/application/usecases"
	"github.com/gofiber/fiber/v2"
)

// CrmHandler expõe as consultas de clientes e leads.
type CrmHandler struct {
	crmUseCase *usecases.CrmUseCase
}

// NewCrmHandler cria uma nova instância de CrmHandler.
func NewCrmHandler(crmUseCase *usecases.CrmUseCase) *CrmHandler {
	return &CrmHandler{crmUseCase: crmUseCase}
}

// GetClients lista os clientes cadastrados.
func (h *CrmHandler) GetClients(c *fiber.Ctx) error {
	clients, err := h.crmUseCase.GetClients()
	if err != nil {
		return respondError(c, err, "Erro ao listar clientes")
	}
	return c.JSON(fiber.Map{
		"data":  clients,
		"total": len(clients),
	})
}

// GetLeads lista os leads do funil comercial.
func (h *CrmHandler) GetLeads(c *fiber.Ctx) error {
	leads, err := h.crmUseCase.GetLeads()
	if err != nil {
		return respondError(c, err, "Erro ao listar leads")
	}
	return c.JSON(fiber.Map{
		"data":  leads,
		"total": len(leads),
	})
}
