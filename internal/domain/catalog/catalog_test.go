package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAreasCatalog(t *testing.T) {
	require.Len(t, Areas, 12)

	seen := make(map[string]bool)
	for _, area := range Areas {
		assert.NotEmpty(t, area.ID)
		assert.NotEmpty(t, area.Name)
		assert.NotEmpty(t, area.Icon)
		assert.False(t, seen[area.ID], "id de área duplicado: %s", area.ID)
		seen[area.ID] = true

		got, ok := AreaByID(area.ID)
		require.True(t, ok)
		assert.Equal(t, area, got)
	}

	_, ok := AreaByID("inexistente")
	assert.False(t, ok)
}

func TestRiskAreas(t *testing.T) {
	for _, id := range []string{"societario", "financeiro", "fiscal", "controladoria"} {
		assert.True(t, IsRiskArea(id), "área %s deveria ser de risco", id)
	}
	for _, id := range []string{"comercial", "marketing", "tecnologia", "inexistente"} {
		assert.False(t, IsRiskArea(id), "área %s não deveria ser de risco", id)
	}
}

func TestQuestionsCatalog(t *testing.T) {
	require.Len(t, Questions, 60)

	perArea := make(map[string]int)
	seen := make(map[string]bool)
	for _, q := range Questions {
		assert.False(t, seen[q.ID], "id de questão duplicado: %s", q.ID)
		seen[q.ID] = true

		_, ok := AreaByID(q.AreaID)
		assert.True(t, ok, "questão %s referencia área inexistente %s", q.ID, q.AreaID)
		perArea[q.AreaID]++

		assert.NotEmpty(t, q.Enunciado, "questão %s sem enunciado", q.ID)
		assert.NotEmpty(t, q.Label, "questão %s sem label", q.ID)
		require.Len(t, q.Opcoes, 4, "questão %s deve ter 4 alternativas", q.ID)
		for _, opt := range Options {
			assert.NotEmpty(t, q.Opcoes[opt], "questão %s sem texto da alternativa %s", q.ID, opt)
		}

		got, ok := QuestionByID(q.ID)
		require.True(t, ok)
		assert.Equal(t, q.ID, got.ID)
	}

	for _, area := range Areas {
		assert.Equal(t, 5, perArea[area.ID], "área %s deve ter 5 questões", area.ID)
		assert.Len(t, QuestionsByArea(area.ID), 5)
	}

	_, ok := QuestionByID("99.9")
	assert.False(t, ok)
}

func TestScoreFor(t *testing.T) {
	cases := map[Option]int{
		OptionA: 0,
		OptionB: 33,
		OptionC: 66,
		OptionD: 100,
	}
	for opt, want := range cases {
		score, ok := ScoreFor(opt)
		require.True(t, ok)
		assert.Equal(t, want, score)
	}

	_, ok := ScoreFor(Option("E"))
	assert.False(t, ok)
	_, ok = ScoreFor(Option(""))
	assert.False(t, ok)
}
