package repositories

import (
	"errors"
	"fmt"

	"github.com/efraim-gestao/efraim-360-api/internal/domain/entities"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrNotFound indica que o registro não existe.
var ErrNotFound = errors.New("registro não encontrado")

// DiagnosticRepository implementa o acesso a dados de diagnósticos.
type DiagnosticRepository struct {
	db *gorm.DB
}

// NewDiagnosticRepository cria uma nova instância de DiagnosticRepository.
func NewDiagnosticRepository(db *gorm.DB) *DiagnosticRepository {
	return &DiagnosticRepository{db: db}
}

// Upsert grava o diagnóstico, atualizando o registro existente pelo id.
func (r *DiagnosticRepository) Upsert(d *entities.Diagnostic) error {
	err := r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"client_id", "client_info", "responses", "status", "updated_at",
		}),
	}).Create(d).Error
	if err != nil {
		return fmt.Errorf("erro ao salvar diagnóstico: %w", err)
	}
	return nil
}

// FindByID retorna o diagnóstico com o cliente associado, quando houver.
func (r *DiagnosticRepository) FindByID(id string) (*entities.Diagnostic, error) {
	var d entities.Diagnostic
	err := r.db.Preload("Client").First(&d, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar diagnóstico: %w", err)
	}
	return &d, nil
}

// FindAll retorna os diagnósticos mais recentes primeiro.
func (r *DiagnosticRepository) FindAll(page, limit int) ([]entities.Diagnostic, int64, error) {
	var diagnostics []entities.Diagnostic
	var total int64

	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}

	query := r.db.Model(&entities.Diagnostic{})
	query.Count(&total)

	err := query.
		Preload("Client").
		Order("updated_at desc").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&diagnostics).Error
	if err != nil {
		return nil, 0, fmt.Errorf("erro ao buscar diagnósticos: %w", err)
	}

	return diagnostics, total, nil
}

// CountByStatus conta diagnósticos por status (ex: Finalizado).
func (r *DiagnosticRepository) CountByStatus(status string) (int64, error) {
	var count int64
	err := r.db.Model(&entities.Diagnostic{}).
		Where("status = ?", status).
		Count(&count).Error
	return count, err
}
