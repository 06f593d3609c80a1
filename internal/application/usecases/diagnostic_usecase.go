package usecases

import (
	"log"
	"time"

	"github.com/efraim-gestao/efraim-360-api/internal/domain/catalog"
	"github.com/efraim-gestao/efraim-360-api/internal/domain/entities"
	"github.com/efraim-gestao/efraim-360-api/internal/domain/repositories"
	"github.com/efraim-gestao/efraim-360-api/internal/domain/scoring"
	"github.com/google/uuid"
)

// DiagnosticUseCase implementa os casos de uso do ciclo de vida do
// diagnóstico: início, respostas, notas e finalização.
type DiagnosticUseCase struct {
	diagRepo   *repositories.DiagnosticRepository
	clientRepo *repositories.ClientRepository
}

// NewDiagnosticUseCase cria uma nova instância de DiagnosticUseCase.
func NewDiagnosticUseCase(diagRepo *repositories.DiagnosticRepository, clientRepo *repositories.ClientRepository) *DiagnosticUseCase {
	return &DiagnosticUseCase{
		diagRepo:   diagRepo,
		clientRepo: clientRepo,
	}
}

// Start cria um novo diagnóstico com status Iniciado e sem respostas.
func (u *DiagnosticUseCase) Start(info entities.ClientInfo) (*entities.Diagnostic, error) {
	if info.Data == "" {
		info.Data = time.Now().Format("02/01/2006")
	}

	d := &entities.Diagnostic{
		ID:         uuid.NewString(),
		ClientInfo: info,
		Responses:  entities.ResponseMap{},
		Status:     entities.StatusIniciado,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}

	if err := u.diagRepo.Upsert(d); err != nil {
		return nil, err
	}
	return d, nil
}

// Get retorna um diagnóstico pelo id.
func (u *DiagnosticUseCase) Get(id string) (*entities.Diagnostic, error) {
	return u.diagRepo.FindByID(id)
}

// List retorna os diagnósticos paginados, mais recentes primeiro.
func (u *DiagnosticUseCase) List(page, limit int) ([]entities.Diagnostic, int64, error) {
	return u.diagRepo.FindAll(page, limit)
}

// RecordAnswer registra a alternativa de uma questão e persiste a sessão
// (autosave). Questão fora do catálogo retorna scoring.ErrUnknownQuestion.
func (u *DiagnosticUseCase) RecordAnswer(id, questionID string, opt catalog.Option, suggestion string) (*entities.Diagnostic, error) {
	d, err := u.diagRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if err := scoring.RecordAnswer(d, questionID, opt, suggestion); err != nil {
		return nil, err
	}

	d.UpdatedAt = time.Now()
	if err := u.diagRepo.Upsert(d); err != nil {
		return nil, err
	}
	return d, nil
}

// RecordNote registra observação ou plano de ação e persiste a sessão.
func (u *DiagnosticUseCase) RecordNote(id, questionID string, field scoring.NoteField, text string) (*entities.Diagnostic, error) {
	d, err := u.diagRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if err := scoring.RecordNote(d, questionID, field, text); err != nil {
		return nil, err
	}

	d.UpdatedAt = time.Now()
	if err := u.diagRepo.Upsert(d); err != nil {
		return nil, err
	}
	return d, nil
}

// UpdateClientInfo substitui o bloco de identificação do diagnóstico.
func (u *DiagnosticUseCase) UpdateClientInfo(id string, info entities.ClientInfo) (*entities.Diagnostic, error) {
	d, err := u.diagRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	d.ClientInfo = info
	d.UpdatedAt = time.Now()
	if err := u.diagRepo.Upsert(d); err != nil {
		return nil, err
	}
	return d, nil
}

// Finish marca o diagnóstico como Finalizado, fazendo antes o upsert do
// cliente pelo CNPJ para vincular o client_id. As duas gravações são
// sequenciais e sem transação: a falha no cadastro do cliente não impede a
// finalização do diagnóstico.
func (u *DiagnosticUseCase) Finish(id string) (*entities.Diagnostic, error) {
	d, err := u.diagRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if d.ClientInfo.CNPJ != "" {
		client, err := u.clientRepo.UpsertByCNPJ(&entities.Client{
			CNPJ:         d.ClientInfo.CNPJ,
			NomeFantasia: d.ClientInfo.NomeFantasia,
			RazaoSocial:  d.ClientInfo.RazaoSocial,
			Email:        d.ClientInfo.Email,
			Whatsapp:     d.ClientInfo.Whatsapp,
			Responsavel:  d.ClientInfo.Responsavel,
		})
		if err != nil {
			log.Printf("⚠️ Erro ao salvar cliente do diagnóstico %s: %v", id, err)
		} else {
			d.ClientID = &client.ID
		}
	}

	d.Status = entities.StatusFinalizado
	d.UpdatedAt = time.Now()
	if err := u.diagRepo.Upsert(d); err != nil {
		return nil, err
	}
	return d, nil
}
