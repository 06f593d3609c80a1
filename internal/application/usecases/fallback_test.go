package usecases

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/efraim-gestao/efraim-360-api/internal/domain/catalog"
	"github.com/efraim-gestao/efraim-360-api/internal/domain/entities"
	"github.com/efraim-gestao/efraim-360-api/internal/domain/scoring"
)

func TestFallbackInsightFromRiskSession(t *testing.T) {
	d := &entities.Diagnostic{ID: "diag", Responses: entities.ResponseMap{}}
	// Financeiro crítico, comercial saudável.
	for _, id := range []string{"5.1", "5.2", "5.3", "5.4", "5.5"} {
		require.NoError(t, scoring.RecordAnswer(d, id, catalog.OptionA, ""))
	}
	for _, id := range []string{"3.1", "3.2", "3.3", "3.4", "3.5"} {
		require.NoError(t, scoring.RecordAnswer(d, id, catalog.OptionD, ""))
	}

	results := scoring.ComputeAreaResults(d)
	priority := scoring.ComputePriority(results)
	report := buildFallbackInsight(results, priority)

	assert.Contains(t, report.SumarioExecutivo, "[Relatório de contingência")
	assert.Contains(t, report.SumarioExecutivo, "Financeiro")

	assert.Contains(t, report.Swot.Forcas, "Comercial com maturidade de 100%")
	assert.Contains(t, report.Swot.Fraquezas, "Financeiro com maturidade de apenas 0%")
	require.NotEmpty(t, report.Swot.Ameacas)
	assert.Contains(t, report.Swot.Ameacas[0], "Financeiro")
	assert.NotEmpty(t, report.Swot.Oportunidades)

	// Ishikawa e 5W2H limitados aos quatro piores pontos de atenção.
	assert.Len(t, report.Ishikawa, 4)
	require.Len(t, report.Plano5W2H, 4)
	for _, acao := range report.Plano5W2H {
		assert.NotEmpty(t, acao.OQue)
		assert.NotEmpty(t, acao.Onde)
	}

	require.Len(t, report.PDCA, 4)
	assert.Equal(t, "PLAN", report.PDCA[0].Fase)
}

func TestFallbackInsightDefaultStrength(t *testing.T) {
	// Nenhuma área acima de 70: a lista de forças recebe o texto padrão.
	d := &entities.Diagnostic{ID: "diag", Responses: entities.ResponseMap{}}
	require.NoError(t, scoring.RecordAnswer(d, "1.1", catalog.OptionB, ""))

	results := scoring.ComputeAreaResults(d)
	report := buildFallbackInsight(results, scoring.ComputePriority(results))

	require.Len(t, report.Swot.Forcas, 1)
	assert.Contains(t, report.Swot.Forcas[0], "Liderança engajada")
}
