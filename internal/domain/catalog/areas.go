package catalog

// Area representa uma das doze perspectivas fixas do diagnóstico 360º.
type Area struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// Areas é o catálogo fechado e ordenado de áreas. A ordem define a ordem de
// exibição nos relatórios e o desempate da análise de prioridade.
var Areas = []Area{
	{ID: "societario", Name: "Societário & Governança", Icon: "Shield"},
	{ID: "tecnologia", Name: "Tecnologia & Inovação", Icon: "Cpu"},
	{ID: "comercial", Name: "Comercial", Icon: "TrendingUp"},
	{ID: "marketing", Name: "Marketing", Icon: "Megaphone"},
	{ID: "financeiro", Name: "Financeiro", Icon: "DollarSign"},
	{ID: "controladoria", Name: "Controladoria", Icon: "BarChart"},
	{ID: "fiscal", Name: "Fiscal", Icon: "FileText"},
	{ID: "contabil", Name: "Contábil", Icon: "BookOpen"},
	{ID: "cultura", Name: "Cultura & Clima", Icon: "Smile"},
	{ID: "pessoas", Name: "Pessoas (RH)", Icon: "Users"},
	{ID: "planejamento", Name: "Planejamento", Icon: "Map"},
	{ID: "processos", Name: "Processos", Icon: "Workflow"},
}

// riskAreas define o subconjunto de áreas críticas de segurança do negócio.
// Apenas essas áreas podem disparar a classificação de RISCO.
var riskAreas = map[string]bool{
	"societario":    true,
	"financeiro":    true,
	"fiscal":        true,
	"controladoria": true,
}

// AreaByID retorna a área do catálogo ou false se o id não existir.
func AreaByID(id string) (Area, bool) {
	for _, a := range Areas {
		if a.ID == id {
			return a, true
		}
	}
	return Area{}, false
}

// IsRiskArea indica se a área pertence ao subconjunto crítico de risco.
func IsRiskArea(id string) bool {
	return riskAreas[id]
}
