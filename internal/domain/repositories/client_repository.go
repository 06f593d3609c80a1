package repositories

import (
	"fmt"
	"time"

	"github.com/efraim-gestao/efraim-360-api/internal/domain/entities"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ClientRepository implementa o acesso a dados de clientes.
type ClientRepository struct {
	db *gorm.DB
}

// NewClientRepository cria uma nova instância de ClientRepository.
func NewClientRepository(db *gorm.DB) *ClientRepository {
	return &ClientRepository{db: db}
}

// UpsertByCNPJ grava o cliente usando o CNPJ como chave de conflito e
// retorna o registro com o id definitivo.
func (r *ClientRepository) UpsertByCNPJ(client *entities.Client) (*entities.Client, error) {
	client.UpdatedAt = time.Now()

	err := r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "cnpj"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"nome_fantasia", "razao_social", "email", "whatsapp", "responsavel", "updated_at",
		}),
	}).Create(client).Error
	if err != nil {
		return nil, fmt.Errorf("erro ao salvar cliente: %w", err)
	}

	// O Create com OnConflict não retorna o id do registro pré-existente
	var saved entities.Client
	if err := r.db.First(&saved, "cnpj = ?", client.CNPJ).Error; err != nil {
		return nil, fmt.Errorf("erro ao recarregar cliente: %w", err)
	}
	return &saved, nil
}

// FindAll retorna os clientes ordenados pelo nome fantasia.
func (r *ClientRepository) FindAll() ([]entities.Client, error) {
	var clients []entities.Client
	err := r.db.Order("nome_fantasia").Find(&clients).Error
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar clientes: %w", err)
	}
	return clients, nil
}

// Count retorna o total de clientes ativos na base.
func (r *ClientRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&entities.Client{}).Count(&count).Error
	return count, err
}
