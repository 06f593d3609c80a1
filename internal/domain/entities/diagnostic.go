package entities

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/efraim-gestao/efraim-360-api/internal/domain/catalog"
)

// Status possíveis de um diagnóstico. Finalizado é terminal: edições
// posteriores não revertem o status automaticamente.
const (
	StatusIniciado   = "Iniciado"
	StatusFinalizado = "Finalizado"
)

// Response é a resposta de uma questão dentro de um diagnóstico: alternativa
// escolhida, nota derivada e textos livres do consultor.
type Response struct {
	SelectedOption catalog.Option `json:"selectedOption"`
	Score          int            `json:"score"`
	Observation    string         `json:"observation"`
	ActionPlan     string         `json:"actionPlan"`
}

// Answered indica se a questão já recebeu uma alternativa.
func (r Response) Answered() bool {
	return r.SelectedOption != ""
}

// ResponseMap mapeia id de questão para resposta. Persistido como JSONB.
type ResponseMap map[string]Response

func (m ResponseMap) Value() (driver.Value, error) {
	if m == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(m)
}

func (m *ResponseMap) Scan(value interface{}) error {
	if value == nil {
		*m = ResponseMap{}
		return nil
	}
	b, ok := value.([]byte)
	if !ok {
		if s, ok := value.(string); ok {
			b = []byte(s)
		} else {
			return fmt.Errorf("tipo inesperado para responses: %T", value)
		}
	}
	return json.Unmarshal(b, m)
}

// Clone retorna uma cópia profunda do mapa de respostas. A montagem do
// relatório opera sobre o snapshot, nunca sobre o mapa vivo da sessão.
func (m ResponseMap) Clone() ResponseMap {
	out := make(ResponseMap, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// ClientInfo é o bloco de identificação preenchido na entrevista,
// persistido junto ao diagnóstico como JSONB (tabela diagnostics).
type ClientInfo struct {
	RazaoSocial             string `json:"razaoSocial"`
	NomeFantasia            string `json:"nomeFantasia"`
	CNPJ                    string `json:"cnpj"`
	Responsavel             string `json:"responsavel"`
	Entrevistado            string `json:"entrevistado"`
	Email                   string `json:"email"`
	Whatsapp                string `json:"whatsapp"`
	Data                    string `json:"data"`
	FaturamentoMensal       string `json:"faturamentoMensal"`
	FaturamentoAnual        string `json:"faturamentoAnual"`
	Mercado                 string `json:"mercado"`
	Nicho                   string `json:"nicho"`
	Segmento                string `json:"segmento"`
	QuantidadeFuncionarios  string `json:"quantidadeFuncionarios"`
	EstruturaOrganizacional string `json:"estruturaOrganizacional"`
}

func (c ClientInfo) Value() (driver.Value, error) {
	return json.Marshal(c)
}

func (c *ClientInfo) Scan(value interface{}) error {
	if value == nil {
		*c = ClientInfo{}
		return nil
	}
	b, ok := value.([]byte)
	if !ok {
		if s, ok := value.(string); ok {
			b = []byte(s)
		} else {
			return fmt.Errorf("tipo inesperado para client_info: %T", value)
		}
	}
	return json.Unmarshal(b, c)
}

// Diagnostic representa uma sessão de diagnóstico 360º (tabela diagnostics).
type Diagnostic struct {
	ID         string      `json:"id" gorm:"primaryKey;column:id;type:uuid"`
	ClientID   *string     `json:"client_id" gorm:"column:client_id;type:uuid"`
	ClientInfo ClientInfo  `json:"client_info" gorm:"column:client_info;type:jsonb"`
	Responses  ResponseMap `json:"responses" gorm:"column:responses;type:jsonb"`
	Status     string      `json:"status" gorm:"column:status;default:Iniciado"`
	CreatedAt  time.Time   `json:"created_at" gorm:"column:created_at"`
	UpdatedAt  time.Time   `json:"updated_at" gorm:"column:updated_at"`

	// Relações
	Client *Client `json:"client,omitempty" gorm:"foreignKey:ClientID"`
}

func (Diagnostic) TableName() string {
	return "diagnostics"
}
