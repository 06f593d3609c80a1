package usecases

import (
	"fmt"
	"sort"

	"github.com/efraim-gestao/efraim-360-api/internal/domain/catalog"
	"github.com/efraim-gestao/efraim-360-api/internal/domain/entities"
	"github.com/efraim-gestao/efraim-360-api/internal/domain/scoring"
)

// buildFallbackInsight monta o payload de contingência quando a IA está
// indisponível: um relatório mecânico derivado dos resultados do motor de
// pontuação, claramente marcado como gerado sem análise de IA.
func buildFallbackInsight(areaResults []scoring.AreaResult, priority scoring.PriorityAnalysis) entities.StrategicReport {
	report := entities.StrategicReport{
		SumarioExecutivo: fmt.Sprintf(
			"[Relatório de contingência - gerado sem análise de IA] %s: %s. "+
				"O diagnóstico aponta a área %s como foco prioritário de atuação. "+
				"As recomendações abaixo foram derivadas diretamente dos pontos de atenção identificados na entrevista.",
			priority.AreaName, priority.Message, priority.AreaName),
		Swot: entities.SwotAnalysis{
			Forcas:        []string{},
			Fraquezas:     []string{},
			Oportunidades: []string{},
			Ameacas:       []string{},
		},
		PDCA: []entities.PDCAFase{
			{Fase: "PLAN", Descricao: "Priorizar os pontos de atenção do diagnóstico e definir responsáveis e prazos."},
			{Fase: "DO", Descricao: "Executar as ações recomendadas começando pela área prioritária."},
			{Fase: "CHECK", Descricao: "Reaplicar o diagnóstico em 90 dias e comparar a evolução das notas por área."},
			{Fase: "ACT", Descricao: "Padronizar o que funcionou e corrigir o rumo das ações sem resultado."},
		},
	}

	// SWOT mecânico: forças e fraquezas pelas médias, ameaças pelas áreas
	// críticas de risco, oportunidades pelas recomendações dos gaps.
	for _, r := range areaResults {
		switch {
		case r.AnsweredCount > 0 && r.Score >= 70:
			report.Swot.Forcas = append(report.Swot.Forcas,
				fmt.Sprintf("%s com maturidade de %d%%", r.Name, r.Score))
		case r.AnsweredCount > 0 && r.Score < catalog.GapThreshold:
			report.Swot.Fraquezas = append(report.Swot.Fraquezas,
				fmt.Sprintf("%s com maturidade de apenas %d%%", r.Name, r.Score))
		}
		if catalog.IsRiskArea(r.AreaID) && r.AnsweredCount > 0 && r.Score < catalog.RiskThreshold {
			report.Swot.Ameacas = append(report.Swot.Ameacas,
				fmt.Sprintf("Exposição crítica em %s pode comprometer a viabilidade do negócio", r.Name))
		}
	}

	gaps := worstGaps(areaResults, 4)
	for _, g := range gaps {
		report.Swot.Oportunidades = append(report.Swot.Oportunidades, g.gap.Recomendacao)
	}
	if len(report.Swot.Forcas) == 0 {
		report.Swot.Forcas = append(report.Swot.Forcas,
			"Liderança engajada na realização do diagnóstico completo")
	}

	// Ishikawa e 5W2H a partir dos piores gaps
	for _, g := range gaps {
		report.Ishikawa = append(report.Ishikawa, entities.IshikawaCause{
			Categoria: g.areaName,
			Causa:     g.gap.Enunciado,
		})
		report.Plano5W2H = append(report.Plano5W2H, entities.Acao5W2H{
			OQue:   g.gap.Recomendacao,
			PorQue: fmt.Sprintf("Ponto avaliado com maturidade de %d%% na entrevista", g.gap.Score),
			Quem:   "A definir com a liderança",
			Onde:   g.areaName,
			Quando: "Próximos 90 dias",
			Como:   "Detalhar na reunião de alinhamento do plano de ação",
			Quanto: "A orçar",
		})
	}

	return report
}

type rankedGap struct {
	areaName string
	gap      scoring.Gap
}

// worstGaps retorna os n gaps de menor nota, estável pela ordem do catálogo.
func worstGaps(areaResults []scoring.AreaResult, n int) []rankedGap {
	var all []rankedGap
	for _, r := range areaResults {
		for _, g := range r.Gaps {
			all = append(all, rankedGap{areaName: r.Name, gap: g})
		}
	}
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].gap.Score < all[j].gap.Score
	})
	if len(all) > n {
		all = all[:n]
	}
	return all
}
