package entities

// Origem do payload estratégico do relatório.
const (
	InsightOrigemIA           = "ia"
	InsightOrigemContingencia = "contingencia"
)

// SwotAnalysis agrupa os quatro quadrantes da análise SWOT.
type SwotAnalysis struct {
	Forcas        []string `json:"forcas"`
	Fraquezas     []string `json:"fraquezas"`
	Oportunidades []string `json:"oportunidades"`
	Ameacas       []string `json:"ameacas"`
}

// IshikawaCause é um par categoria/causa do diagrama de causa e efeito.
type IshikawaCause struct {
	Categoria string `json:"categoria"`
	Causa     string `json:"causa"`
}

// Acao5W2H é uma ação do plano 5W2H.
type Acao5W2H struct {
	OQue   string `json:"oQue"`
	PorQue string `json:"porQue"`
	Quem   string `json:"quem"`
	Onde   string `json:"onde"`
	Quando string `json:"quando"`
	Como   string `json:"como"`
	Quanto string `json:"quanto"`
}

// PDCAFase é uma fase do ciclo PDCA com sua descrição.
type PDCAFase struct {
	Fase      string `json:"fase"`
	Descricao string `json:"descricao"`
}

// StrategicReport é o payload narrativo do relatório: gerado pela IA ou,
// na indisponibilidade dela, montado pela contingência determinística.
type StrategicReport struct {
	SumarioExecutivo string          `json:"sumarioExecutivo"`
	Swot             SwotAnalysis    `json:"swot"`
	Ishikawa         []IshikawaCause `json:"ishikawa"`
	Plano5W2H        []Acao5W2H      `json:"plano5W2H"`
	PDCA             []PDCAFase      `json:"pdca"`
}

// DashboardStats agrega os números exibidos no painel inicial.
type DashboardStats struct {
	ActiveClients        int64   `json:"activeClients"`
	TotalContractsValue  float64 `json:"totalContractsValue"`
	DiagnosticsPerformed int64   `json:"diagnosticsPerformed"`
	ProposalsSent        int64   `json:"proposalsSent"`
	ConversionRate       float64 `json:"conversionRate"`
}
