package usecases

import (
	"github.com/efraim-gestao/efraim-360-api/internal/domain/entities"
	"github.com/efraim-gestao/efraim-360-api/internal/domain/repositories"
)

// DashboardUseCase agrega os números do painel inicial da consultoria.
type DashboardUseCase struct {
	diagRepo   *repositories.DiagnosticRepository
	clientRepo *repositories.ClientRepository
	leadRepo   *repositories.LeadRepository
}

// NewDashboardUseCase cria uma nova instância de DashboardUseCase.
func NewDashboardUseCase(diagRepo *repositories.DiagnosticRepository, clientRepo *repositories.ClientRepository, leadRepo *repositories.LeadRepository) *DashboardUseCase {
	return &DashboardUseCase{
		diagRepo:   diagRepo,
		clientRepo: clientRepo,
		leadRepo:   leadRepo,
	}
}

// GetStats monta as estatísticas do dashboard: clientes ativos, valor de
// contratos ativos, diagnósticos finalizados e conversão de leads.
func (u *DashboardUseCase) GetStats() (*entities.DashboardStats, error) {
	activeClients, err := u.clientRepo.Count()
	if err != nil {
		return nil, err
	}

	totalContracts, err := u.leadRepo.SumActiveContracts()
	if err != nil {
		return nil, err
	}

	diagCount, err := u.diagRepo.CountByStatus(entities.StatusFinalizado)
	if err != nil {
		return nil, err
	}

	proposals, err := u.leadRepo.Count()
	if err != nil {
		return nil, err
	}

	wins, err := u.leadRepo.CountByStatus(entities.LeadStatusGanho)
	if err != nil {
		return nil, err
	}

	conversionRate := 0.0
	if proposals > 0 {
		conversionRate = float64(wins) / float64(proposals) * 100
	}

	return &entities.DashboardStats{
		ActiveClients:        activeClients,
		TotalContractsValue:  totalContracts,
		DiagnosticsPerformed: diagCount,
		ProposalsSent:        proposals,
		ConversionRate:       conversionRate,
	}, nil
}
