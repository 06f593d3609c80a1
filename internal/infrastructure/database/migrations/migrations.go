package migrations

import (
	"github.com/efraim-gestao/efraim-360-api/internal/domain/entities"
	"gorm.io/gorm"
)

// Migrate cria/atualiza as tabelas do diagnóstico.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entities.Client{},
		&entities.Diagnostic{},
		&entities.Lead{},
		&entities.Contract{},
	)
}

// AddIndexes adds indexes to the database to improve query performance
func AddIndexes(db *gorm.DB) error {
	// Listagem do dashboard ordena por updated_at e filtra por status
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_diagnostics_updated_at ON diagnostics (updated_at DESC)").Error; err != nil {
		return err
	}
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_diagnostics_status ON diagnostics (status)").Error; err != nil {
		return err
	}
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_diagnostics_client_id ON diagnostics (client_id)").Error; err != nil {
		return err
	}

	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_clients_nome_fantasia ON clients (nome_fantasia)").Error; err != nil {
		return err
	}

	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_leads_created_at ON leads (created_at DESC)").Error; err != nil {
		return err
	}
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_leads_status ON leads (status)").Error; err != nil {
		return err
	}

	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_contracts_status ON contracts (status)").Error; err != nil {
		return err
	}

	return nil
}
