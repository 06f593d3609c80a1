package entities

import (
	"time"
)

// Client representa um cliente cadastrado (tabela clients).
// O CNPJ é a chave natural usada nos upserts.
type Client struct {
	ID           string    `json:"id" gorm:"primaryKey;column:id;type:uuid;default:gen_random_uuid()"`
	CNPJ         string    `json:"cnpj" gorm:"column:cnpj;uniqueIndex"`
	NomeFantasia string    `json:"nome_fantasia" gorm:"column:nome_fantasia"`
	RazaoSocial  string    `json:"razao_social" gorm:"column:razao_social"`
	Email        string    `json:"email" gorm:"column:email"`
	Whatsapp     string    `json:"whatsapp" gorm:"column:whatsapp"`
	Responsavel  string    `json:"responsavel" gorm:"column:responsavel"`
	CreatedAt    time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt    time.Time `json:"updated_at" gorm:"column:updated_at"`

	// Dados complementares de cadastro (opcionais)
	Logradouro        string `json:"logradouro,omitempty" gorm:"column:logradouro"`
	Numero            string `json:"numero,omitempty" gorm:"column:numero"`
	Bairro            string `json:"bairro,omitempty" gorm:"column:bairro"`
	Cidade            string `json:"cidade,omitempty" gorm:"column:cidade"`
	UF                string `json:"uf,omitempty" gorm:"column:uf"`
	CEP               string `json:"cep,omitempty" gorm:"column:cep"`
	TelefoneFixo      string `json:"telefone_fixo,omitempty" gorm:"column:telefone_fixo"`
	Site              string `json:"site,omitempty" gorm:"column:site"`
	Instagram         string `json:"instagram,omitempty" gorm:"column:instagram"`
	Linkedin          string `json:"linkedin,omitempty" gorm:"column:linkedin"`
	DataFundacao      string `json:"data_fundacao,omitempty" gorm:"column:data_fundacao"`
	InscricaoEstadual string `json:"inscricao_estadual,omitempty" gorm:"column:inscricao_estadual"`

	FaturamentoMensal       string `json:"faturamento_mensal,omitempty" gorm:"column:faturamento_mensal"`
	FaturamentoAnual        string `json:"faturamento_anual,omitempty" gorm:"column:faturamento_anual"`
	QuantidadeFuncionarios  string `json:"quantidade_funcionarios,omitempty" gorm:"column:quantidade_funcionarios"`
	Segmento                string `json:"segmento,omitempty" gorm:"column:segmento"`
	Nicho                   string `json:"nicho,omitempty" gorm:"column:nicho"`
	EstruturaOrganizacional string `json:"estrutura_organizacional,omitempty" gorm:"column:estrutura_organizacional"`
}

func (Client) TableName() string {
	return "clients"
}
