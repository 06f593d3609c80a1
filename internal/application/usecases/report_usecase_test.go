package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/efraim-gestao/efraim-360-api/internal/domain/catalog"
	"github.com/efraim-gestao/efraim-360-api/internal/domain/entities"
	"github.com/efraim-gestao/efraim-360-api/internal/domain/scoring"
	"github.com/efraim-gestao/efraim-360-api/internal/infrastructure/cache"
)

// stubGenerator registra as chamadas e devolve o payload ou erro configurado.
type stubGenerator struct {
	report *entities.StrategicReport
	err    error
	calls  int
}

func (s *stubGenerator) Generate(_ context.Context, _ *entities.Diagnostic, _ scoring.PriorityAnalysis) (*entities.StrategicReport, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.report, nil
}

func answeredDiagnostic(t *testing.T) *entities.Diagnostic {
	t.Helper()
	d := &entities.Diagnostic{
		ID:        "diag-teste",
		Responses: entities.ResponseMap{},
		Status:    entities.StatusIniciado,
		ClientInfo: entities.ClientInfo{
			NomeFantasia: "Empresa Exemplo",
			CNPJ:         "00.000.000/0001-00",
		},
	}
	for _, q := range catalog.Questions {
		require.NoError(t, scoring.RecordAnswer(d, q.ID, catalog.OptionC, ""))
	}
	return d
}

func TestAssembleWithInsightFromIA(t *testing.T) {
	gen := &stubGenerator{report: &entities.StrategicReport{SumarioExecutivo: "análise do modelo"}}
	uc := NewReportUseCase(gen, cache.New())
	d := answeredDiagnostic(t)

	report := uc.Assemble(context.Background(), d)

	assert.Equal(t, "diag-teste", report.DiagnosticID)
	assert.Equal(t, entities.InsightOrigemIA, report.InsightOrigem)
	assert.Equal(t, "análise do modelo", report.Insight.SumarioExecutivo)
	assert.Equal(t, 100, report.TotalProgress)
	assert.Len(t, report.AreaResults, len(catalog.Areas))
	assert.Len(t, report.MasterRadar, len(catalog.Areas))
	assert.Equal(t, 1, gen.calls)
}

func TestAssembleReusesCachedInsight(t *testing.T) {
	gen := &stubGenerator{report: &entities.StrategicReport{SumarioExecutivo: "análise do modelo"}}
	uc := NewReportUseCase(gen, cache.New())
	d := answeredDiagnostic(t)

	uc.Assemble(context.Background(), d)
	report := uc.Assemble(context.Background(), d)

	assert.Equal(t, entities.InsightOrigemIA, report.InsightOrigem)
	assert.Equal(t, 1, gen.calls, "respostas inalteradas não devem chamar a IA de novo")

	// Mudar qualquer resposta invalida o cache.
	require.NoError(t, scoring.RecordAnswer(d, "1.1", catalog.OptionD, ""))
	uc.Assemble(context.Background(), d)
	assert.Equal(t, 2, gen.calls)
}

func TestAssembleFallsBackOnGeneratorError(t *testing.T) {
	gen := &stubGenerator{err: errors.New("quota excedida")}
	uc := NewReportUseCase(gen, cache.New())
	d := answeredDiagnostic(t)

	report := uc.Assemble(context.Background(), d)

	assert.Equal(t, entities.InsightOrigemContingencia, report.InsightOrigem)
	assert.Contains(t, report.Insight.SumarioExecutivo, "[Relatório de contingência")
	assert.NotEmpty(t, report.Insight.PDCA)

	// Falha não entra no cache: a próxima montagem tenta a IA de novo.
	uc.Assemble(context.Background(), d)
	assert.Equal(t, 2, gen.calls)
}

func TestAssembleWithoutGenerator(t *testing.T) {
	uc := NewReportUseCase(nil, cache.New())
	d := answeredDiagnostic(t)

	report := uc.Assemble(context.Background(), d)

	assert.Equal(t, entities.InsightOrigemContingencia, report.InsightOrigem)
	assert.NotEmpty(t, report.Insight.SumarioExecutivo)
}

func TestAssembleDoesNotMutateSession(t *testing.T) {
	uc := NewReportUseCase(nil, cache.New())
	d := answeredDiagnostic(t)
	before := d.Responses.Clone()

	uc.Assemble(context.Background(), d)

	assert.Equal(t, before, d.Responses)
}

func TestAssembleMasterRadarUsesFirstWord(t *testing.T) {
	uc := NewReportUseCase(nil, cache.New())
	report := uc.Assemble(context.Background(), answeredDiagnostic(t))

	require.NotEmpty(t, report.MasterRadar)
	assert.Equal(t, "Societário", report.MasterRadar[0].Subject)
	assert.Equal(t, 66, report.MasterRadar[0].Value)
}
