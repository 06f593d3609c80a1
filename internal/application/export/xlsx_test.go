package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/efraim-gestao/efraim-360-api/internal/application/usecases"
	"github.com/efraim-gestao/efraim-360-api/internal/domain/entities"
	"github.com/efraim-gestao/efraim-360-api/internal/domain/scoring"
)

func sampleReport() *usecases.Report {
	return &usecases.Report{
		DiagnosticID:  "diag-teste",
		ClientInfo:    entities.ClientInfo{NomeFantasia: "Empresa Exemplo", Data: "01/08/2026"},
		TotalProgress: 75,
		AreaResults: []scoring.AreaResult{
			{
				AreaID: "financeiro",
				Name:   "Financeiro",
				Score:  20,
				Gaps: []scoring.Gap{
					{QuestionID: "5.1", Enunciado: "Fluxo de caixa projetado?", Score: 0, Recomendacao: "Implantar fluxo de caixa semanal"},
					{QuestionID: "5.2", Enunciado: "Contas PF e PJ separadas?", Score: 33, Recomendacao: "Separar as contas"},
				},
			},
			{AreaID: "comercial", Name: "Comercial", Score: 80, Gaps: []scoring.Gap{}},
		},
		Priority: scoring.PriorityAnalysis{
			AreaID:   "financeiro",
			AreaName: "Financeiro",
			Message:  "Prioridade Crítica detectada!",
			Type:     "RISCO",
		},
		Insight: entities.StrategicReport{
			SumarioExecutivo: "Sumário de teste",
			Plano5W2H: []entities.Acao5W2H{
				{OQue: "Implantar fluxo de caixa", PorQue: "Nota crítica", Quem: "Financeiro", Onde: "Financeiro", Quando: "90 dias", Como: "Planilha semanal", Quanto: "A orçar"},
			},
		},
		InsightOrigem: entities.InsightOrigemContingencia,
	}
}

func TestReportWorkbook(t *testing.T) {
	f, err := ReportWorkbook(sampleReport())
	require.NoError(t, err)
	defer f.Close()

	sheets := f.GetSheetList()
	assert.ElementsMatch(t, []string{sheetMaturidade, sheetGaps, sheetPlano}, sheets)

	title, err := f.GetCellValue(sheetMaturidade, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Diagnóstico Empresarial 360º", title)

	nome, _ := f.GetCellValue(sheetMaturidade, "A2")
	assert.Equal(t, "Empresa Exemplo", nome)

	areaName, _ := f.GetCellValue(sheetMaturidade, "B6")
	assert.Equal(t, "Financeiro", areaName)
	areaScore, _ := f.GetCellValue(sheetMaturidade, "C6")
	assert.Equal(t, "20", areaScore)

	// Gap de nota 0 marcado como Crítico, de 33 também (abaixo de 40).
	impacto, _ := f.GetCellValue(sheetGaps, "D2")
	assert.Equal(t, "Crítico", impacto)
	plano, _ := f.GetCellValue(sheetGaps, "E2")
	assert.Equal(t, "Implantar fluxo de caixa semanal", plano)

	sumario, _ := f.GetCellValue(sheetPlano, "B1")
	assert.Equal(t, "Sumário de teste", sumario)
	oQue, _ := f.GetCellValue(sheetPlano, "A4")
	assert.Equal(t, "Implantar fluxo de caixa", oQue)
}

func TestReportWorkbookWritable(t *testing.T) {
	f, err := ReportWorkbook(sampleReport())
	require.NoError(t, err)
	defer f.Close()

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	assert.NotZero(t, buf.Len())
}
