package scoring

import (
	"math"

	"github.com/efraim-gestao/efraim-360-api/internal/domain/catalog"
	"github.com/efraim-gestao/efraim-360-api/internal/domain/entities"
)

// Tipos de classificação da análise de prioridade.
const (
	PriorityRisco      = "RISCO"
	PriorityTracao     = "TRACAO"
	PriorityEficiencia = "EFICIENCIA"
)

// Mensagens e fallback da classificação de prioridade.
const (
	msgRisco      = "Prioridade Crítica detectada!"
	msgTracao     = "Aceleração de Tração"
	msgEficiencia = "Otimização para Escala"

	defaultPriorityAreaID   = "estrategia"
	defaultPriorityAreaName = "Estratégia & Processos"

	// tractionThreshold é a média geral a partir da qual a empresa é
	// classificada como pronta para tração em vez de eficiência.
	tractionThreshold = 70
)

// RadarPoint é um eixo do gráfico de teia de uma área.
type RadarPoint struct {
	Subject string `json:"subject"`
	Value   int    `json:"value"`
}

// Gap é uma questão abaixo do limiar de maturidade, com a ação recomendada.
type Gap struct {
	QuestionID   string `json:"question_id"`
	Enunciado    string `json:"enunciado"`
	Score        int    `json:"score"`
	Recomendacao string `json:"recomendacao"`
}

// AreaResult é o resultado derivado de uma área: média arredondada, eixos do
// radar e lista de gaps. Nunca é persistido, sempre recalculado da sessão.
type AreaResult struct {
	AreaID        string       `json:"id"`
	Name          string       `json:"name"`
	Icon          string       `json:"icon"`
	Score         int          `json:"score"`
	AnsweredCount int          `json:"answered_count"`
	Detailed      []RadarPoint `json:"detailed_data"`
	Gaps          []Gap        `json:"gaps"`
}

// PriorityAnalysis identifica a área mais urgente do diagnóstico.
type PriorityAnalysis struct {
	AreaID   string `json:"areaId"`
	AreaName string `json:"areaName"`
	Message  string `json:"message"`
	Type     string `json:"type"`
}

// ComputeAreaResults calcula o resultado de cada área na ordem do catálogo.
// Questões sem resposta contam como nota 0 e, portanto, entram na lista de
// gaps. A recomendação do gap usa o plano de ação da sessão e cai para a
// sugestão padrão da questão quando ele estiver vazio.
func ComputeAreaResults(d *entities.Diagnostic) []AreaResult {
	results := make([]AreaResult, 0, len(catalog.Areas))

	for _, area := range catalog.Areas {
		questions := catalog.QuestionsByArea(area.ID)

		result := AreaResult{
			AreaID:   area.ID,
			Name:     area.Name,
			Icon:     area.Icon,
			Detailed: make([]RadarPoint, 0, len(questions)),
			Gaps:     []Gap{},
		}

		sum := 0
		for _, q := range questions {
			resp := d.Responses[q.ID]
			score := 0
			if resp.Answered() {
				score = resp.Score
				result.AnsweredCount++
			}
			sum += score

			result.Detailed = append(result.Detailed, RadarPoint{
				Subject: q.Label,
				Value:   score,
			})

			if score < catalog.GapThreshold {
				recomendacao := resp.ActionPlan
				if recomendacao == "" {
					recomendacao = q.SugestaoPadrao
				}
				result.Gaps = append(result.Gaps, Gap{
					QuestionID:   q.ID,
					Enunciado:    q.Enunciado,
					Score:        score,
					Recomendacao: recomendacao,
				})
			}
		}

		if len(questions) > 0 {
			result.Score = int(math.Round(float64(sum) / float64(len(questions))))
		}

		results = append(results, result)
	}

	return results
}

// ComputePriority classifica a área mais urgente. RISCO só é disparado por
// áreas do subconjunto crítico com média abaixo do limiar E ao menos uma
// questão respondida: uma área ainda não avaliada não é tratada como risco.
// Empates resolvem pela menor média e, persistindo, pela ordem do catálogo.
func ComputePriority(results []AreaResult) PriorityAnalysis {
	var worst *AreaResult
	for i := range results {
		r := &results[i]
		if !catalog.IsRiskArea(r.AreaID) || r.AnsweredCount == 0 {
			continue
		}
		if r.Score >= catalog.RiskThreshold {
			continue
		}
		if worst == nil || r.Score < worst.Score {
			worst = r
		}
	}

	if worst != nil {
		return PriorityAnalysis{
			AreaID:   worst.AreaID,
			AreaName: worst.Name,
			Message:  msgRisco,
			Type:     PriorityRisco,
		}
	}

	// Sem risco: média geral das áreas avaliadas decide entre tração e
	// eficiência. Sessão vazia cai na classificação padrão de eficiência.
	sum, count := 0, 0
	for _, r := range results {
		if r.AnsweredCount > 0 {
			sum += r.Score
			count++
		}
	}
	if count > 0 && float64(sum)/float64(count) >= tractionThreshold {
		return PriorityAnalysis{
			AreaID:   defaultPriorityAreaID,
			AreaName: defaultPriorityAreaName,
			Message:  msgTracao,
			Type:     PriorityTracao,
		}
	}

	return PriorityAnalysis{
		AreaID:   defaultPriorityAreaID,
		AreaName: defaultPriorityAreaName,
		Message:  msgEficiencia,
		Type:     PriorityEficiencia,
	}
}
