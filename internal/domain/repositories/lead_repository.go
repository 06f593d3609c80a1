package repositories

import (
	"fmt"

	"github.com/efraim-gestao/efraim-360-api/internal/domain/entities"
	"gorm.io/gorm"
)

// LeadRepository implementa o acesso a dados de leads e contratos.
type LeadRepository struct {
	db *gorm.DB
}

// NewLeadRepository cria uma nova instância de LeadRepository.
func NewLeadRepository(db *gorm.DB) *LeadRepository {
	return &LeadRepository{db: db}
}

// FindAll retorna os leads mais recentes primeiro.
func (r *LeadRepository) FindAll() ([]entities.Lead, error) {
	var leads []entities.Lead
	err := r.db.Order("created_at desc").Find(&leads).Error
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar leads: %w", err)
	}
	return leads, nil
}

// Count retorna o total de leads (propostas enviadas).
func (r *LeadRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&entities.Lead{}).Count(&count).Error
	return count, err
}

// CountByStatus conta leads por status (ex: Ganhos).
func (r *LeadRepository) CountByStatus(status string) (int64, error) {
	var count int64
	err := r.db.Model(&entities.Lead{}).
		Where("status = ?", status).
		Count(&count).Error
	return count, err
}

// SumActiveContracts soma o valor dos contratos com status Ativo.
func (r *LeadRepository) SumActiveContracts() (float64, error) {
	var total float64
	err := r.db.Model(&entities.Contract{}).
		Where("status = ?", "Ativo").
		Select("COALESCE(SUM(valor), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, fmt.Errorf("erro ao somar contratos: %w", err)
	}
	return total, nil
}
