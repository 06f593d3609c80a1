package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/efraim-gestao/efraim-360-api/internal/domain/catalog"
)

func areaResultByID(t *testing.T, results []AreaResult, id string) AreaResult {
	t.Helper()
	for _, r := range results {
		if r.AreaID == id {
			return r
		}
	}
	t.Fatalf("área %s não encontrada nos resultados", id)
	return AreaResult{}
}

func TestComputeAreaResultsOrderAndShape(t *testing.T) {
	d := newSession()
	results := ComputeAreaResults(d)

	require.Len(t, results, len(catalog.Areas))
	for i, r := range results {
		assert.Equal(t, catalog.Areas[i].ID, r.AreaID)
		assert.Len(t, r.Detailed, 5)
		assert.Equal(t, 0, r.Score)
		assert.Equal(t, 0, r.AnsweredCount)
		// Sem respostas, todas as questões são pontos de atenção.
		assert.Len(t, r.Gaps, 5)
	}
}

func TestComputeAreaResultsScoresAndGaps(t *testing.T) {
	d := newSession()
	require.NoError(t, RecordAnswer(d, "5.1", catalog.OptionD, ""))
	require.NoError(t, RecordAnswer(d, "5.2", catalog.OptionB, "plano do consultor"))
	require.NoError(t, RecordAnswer(d, "5.3", catalog.OptionC, ""))

	financeiro := areaResultByID(t, ComputeAreaResults(d), "financeiro")

	// (100 + 33 + 66 + 0 + 0) / 5 = 39.8, arredondado para 40
	assert.Equal(t, 40, financeiro.Score)
	assert.Equal(t, 3, financeiro.AnsweredCount)

	// 5.1 (100) e 5.3 (66) ficam acima do limiar; 5.2, 5.4 e 5.5 são gaps.
	require.Len(t, financeiro.Gaps, 3)
	gapIDs := make([]string, 0, len(financeiro.Gaps))
	for _, g := range financeiro.Gaps {
		gapIDs = append(gapIDs, g.QuestionID)
	}
	assert.Equal(t, []string{"5.2", "5.4", "5.5"}, gapIDs)

	// Recomendação usa o plano da sessão e cai para a sugestão padrão.
	assert.Equal(t, "plano do consultor", financeiro.Gaps[0].Recomendacao)
	q54, _ := catalog.QuestionByID("5.4")
	assert.Equal(t, q54.SugestaoPadrao, financeiro.Gaps[1].Recomendacao)
}

func TestComputeAreaResultsIsIdempotent(t *testing.T) {
	d := newSession()
	require.NoError(t, RecordAnswer(d, "1.1", catalog.OptionB, ""))

	first := ComputeAreaResults(d)
	second := ComputeAreaResults(d)
	assert.Equal(t, first, second)
}

func TestComputePriorityRisk(t *testing.T) {
	d := newSession()
	// Financeiro: 1×D + 4×A = média 20, abaixo do limiar de risco.
	require.NoError(t, RecordAnswer(d, "5.1", catalog.OptionD, ""))
	for _, id := range []string{"5.2", "5.3", "5.4", "5.5"} {
		require.NoError(t, RecordAnswer(d, id, catalog.OptionA, ""))
	}

	priority := ComputePriority(ComputeAreaResults(d))
	assert.Equal(t, PriorityRisco, priority.Type)
	assert.Equal(t, "financeiro", priority.AreaID)
	assert.Equal(t, "Financeiro", priority.AreaName)
	assert.Equal(t, "Prioridade Crítica detectada!", priority.Message)
}

func TestComputePriorityIgnoresNonRiskAreas(t *testing.T) {
	d := newSession()
	// Comercial zerado não dispara RISCO: não pertence ao subconjunto crítico.
	for _, id := range []string{"3.1", "3.2", "3.3", "3.4", "3.5"} {
		require.NoError(t, RecordAnswer(d, id, catalog.OptionA, ""))
	}

	priority := ComputePriority(ComputeAreaResults(d))
	assert.Equal(t, PriorityEficiencia, priority.Type)
	assert.Equal(t, "estrategia", priority.AreaID)
}

func TestComputePriorityIgnoresUnansweredRiskAreas(t *testing.T) {
	// Sessão vazia: as áreas críticas têm média 0, mas nenhuma questão
	// respondida, então não são tratadas como risco.
	priority := ComputePriority(ComputeAreaResults(newSession()))
	assert.Equal(t, PriorityEficiencia, priority.Type)
	assert.Equal(t, "estrategia", priority.AreaID)
	assert.Equal(t, "Estratégia & Processos", priority.AreaName)
	assert.Equal(t, "Otimização para Escala", priority.Message)
}

func TestComputePriorityTieBreakFollowsCatalogOrder(t *testing.T) {
	results := []AreaResult{
		{AreaID: "societario", Name: "Societário & Governança", Score: 33, AnsweredCount: 5},
		{AreaID: "financeiro", Name: "Financeiro", Score: 33, AnsweredCount: 5},
	}

	priority := ComputePriority(results)
	assert.Equal(t, PriorityRisco, priority.Type)
	assert.Equal(t, "societario", priority.AreaID)

	// Nota menor vence mesmo vindo depois na ordem do catálogo.
	results[1].Score = 20
	priority = ComputePriority(results)
	assert.Equal(t, "financeiro", priority.AreaID)
}

func TestComputePriorityTraction(t *testing.T) {
	d := newSession()
	for _, q := range catalog.Questions {
		require.NoError(t, RecordAnswer(d, q.ID, catalog.OptionD, ""))
	}

	priority := ComputePriority(ComputeAreaResults(d))
	assert.Equal(t, PriorityTracao, priority.Type)
	assert.Equal(t, "Aceleração de Tração", priority.Message)
	assert.Equal(t, "estrategia", priority.AreaID)
}

func TestComputePriorityEfficiencyBelowTractionThreshold(t *testing.T) {
	d := newSession()
	for _, q := range catalog.Questions {
		require.NoError(t, RecordAnswer(d, q.ID, catalog.OptionC, ""))
	}

	// Média geral de 66 fica abaixo do limiar de tração.
	priority := ComputePriority(ComputeAreaResults(d))
	assert.Equal(t, PriorityEficiencia, priority.Type)
}
