package entities

import (
	"time"
)

// Status de lead usados no funil comercial.
const (
	LeadStatusGanho = "Ganhos"
)

// Lead representa uma oportunidade comercial (tabela leads).
type Lead struct {
	ID            string    `json:"id" gorm:"primaryKey;column:id;type:uuid;default:gen_random_uuid()"`
	NomeCliente   string    `json:"nome_cliente" gorm:"column:nome_cliente"`
	Status        string    `json:"status" gorm:"column:status"`
	ValorEstimado float64   `json:"valor_estimado" gorm:"column:valor_estimado"`
	CreatedAt     time.Time `json:"created_at" gorm:"column:created_at"`
}

func (Lead) TableName() string {
	return "leads"
}

// Contract representa um contrato de consultoria (tabela contracts),
// usado apenas para o somatório de valores ativos do dashboard.
type Contract struct {
	ID        string    `json:"id" gorm:"primaryKey;column:id;type:uuid;default:gen_random_uuid()"`
	Valor     float64   `json:"valor" gorm:"column:valor"`
	Status    string    `json:"status" gorm:"column:status"`
	CreatedAt time.Time `json:"created_at" gorm:"column:created_at"`
}

func (Contract) TableName() string {
	return "contracts"
}
