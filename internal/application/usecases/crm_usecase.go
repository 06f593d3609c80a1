package usecases

import (
	"github.com/efraim-gestao/efraim-360-api/internal/domain/entities"
	"github.com/efraim-gestao/efraim-360-api/internal/domain/repositories"
)

// CrmUseCase implementa as consultas de clientes e leads do painel.
type CrmUseCase struct {
	clientRepo *repositories.ClientRepository
	leadRepo   *repositories.LeadRepository
}

// NewCrmUseCase cria uma nova instância de CrmUseCase.
func NewCrmUseCase(clientRepo *repositories.ClientRepository, leadRepo *repositories.LeadRepository) *CrmUseCase {
	return &CrmUseCase{
		clientRepo: clientRepo,
		leadRepo:   leadRepo,
	}
}

// GetClients retorna os clientes ordenados pelo nome fantasia.
func (u *CrmUseCase) GetClients() ([]entities.Client, error) {
	return u.clientRepo.FindAll()
}

// GetLeads retorna os leads mais recentes primeiro.
func (u *CrmUseCase) GetLeads() ([]entities.Lead, error) {
	return u.leadRepo.FindAll()
}
