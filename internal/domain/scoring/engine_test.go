package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/efraim-gestao/efraim-360-api/internal/domain/catalog"
	"github.com/efraim-gestao/efraim-360-api/internal/domain/entities"
)

func newSession() *entities.Diagnostic {
	return &entities.Diagnostic{
		ID:        "sessao-teste",
		Responses: entities.ResponseMap{},
		Status:    entities.StatusIniciado,
	}
}

func TestRecordAnswerDerivesScore(t *testing.T) {
	d := newSession()

	require.NoError(t, RecordAnswer(d, "1.1", catalog.OptionD, ""))
	resp := d.Responses["1.1"]
	assert.Equal(t, catalog.OptionD, resp.SelectedOption)
	assert.Equal(t, 100, resp.Score)
	assert.True(t, resp.Answered())

	require.NoError(t, RecordAnswer(d, "1.1", catalog.OptionA, ""))
	assert.Equal(t, 0, d.Responses["1.1"].Score)
}

func TestRecordAnswerFillsActionPlanOnce(t *testing.T) {
	d := newSession()

	require.NoError(t, RecordAnswer(d, "5.1", catalog.OptionB, "contratar BPO financeiro"))
	assert.Equal(t, "contratar BPO financeiro", d.Responses["5.1"].ActionPlan)

	// Reclicar outra alternativa não sobrescreve o plano já preenchido.
	require.NoError(t, RecordAnswer(d, "5.1", catalog.OptionC, "outra sugestão"))
	assert.Equal(t, "contratar BPO financeiro", d.Responses["5.1"].ActionPlan)
	assert.Equal(t, 66, d.Responses["5.1"].Score)
}

func TestRecordAnswerDefaultSuggestion(t *testing.T) {
	d := newSession()
	q, ok := catalog.QuestionByID("5.2")
	require.True(t, ok)

	require.NoError(t, RecordAnswer(d, "5.2", catalog.OptionA, ""))
	assert.Equal(t, q.SugestaoPadrao, d.Responses["5.2"].ActionPlan)
}

func TestRecordAnswerErrors(t *testing.T) {
	d := newSession()

	err := RecordAnswer(d, "99.9", catalog.OptionA, "")
	assert.ErrorIs(t, err, ErrUnknownQuestion)

	err = RecordAnswer(d, "1.1", catalog.Option("E"), "")
	assert.ErrorIs(t, err, ErrInvalidOption)
	assert.Empty(t, d.Responses, "erro não deve registrar resposta")
}

func TestRecordNote(t *testing.T) {
	d := newSession()

	require.NoError(t, RecordNote(d, "3.1", NoteObservation, "empresa sem CRM"))
	assert.Equal(t, "empresa sem CRM", d.Responses["3.1"].Observation)
	assert.False(t, d.Responses["3.1"].Answered(), "nota não conta como resposta")

	require.NoError(t, RecordNote(d, "3.1", NoteActionPlan, "implantar CRM"))
	assert.Equal(t, "implantar CRM", d.Responses["3.1"].ActionPlan)

	assert.ErrorIs(t, RecordNote(d, "99.9", NoteObservation, "x"), ErrUnknownQuestion)
	assert.Error(t, RecordNote(d, "3.1", NoteField("outro"), "x"))
}

func TestProgress(t *testing.T) {
	d := newSession()
	assert.Equal(t, 0.0, AreaProgress(d, "financeiro"))
	assert.Equal(t, 0, TotalProgress(d))

	for _, id := range []string{"5.1", "5.2", "5.3", "5.4", "5.5"} {
		require.NoError(t, RecordAnswer(d, id, catalog.OptionC, ""))
	}
	assert.Equal(t, 100.0, AreaProgress(d, "financeiro"))
	assert.Equal(t, 0.0, AreaProgress(d, "comercial"))
	// 5 de 60 questões respondidas
	assert.Equal(t, 8, TotalProgress(d))

	for _, q := range catalog.Questions {
		require.NoError(t, RecordAnswer(d, q.ID, catalog.OptionB, ""))
	}
	assert.Equal(t, 100, TotalProgress(d))
}

func TestAreaProgressUnknownArea(t *testing.T) {
	d := newSession()
	assert.Equal(t, 0.0, AreaProgress(d, "inexistente"))
}
