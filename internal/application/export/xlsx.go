// Package export gera a pasta de trabalho XLSX do relatório estratégico,
// com uma aba de maturidade por área e uma aba de pontos de atenção.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/efraim-gestao/efraim-360-api/internal/application/usecases"
	"github.com/efraim-gestao/efraim-360-api/internal/domain/catalog"
)

const (
	sheetMaturidade = "Maturidade"
	sheetGaps       = "Pontos de Atenção"
	sheetPlano      = "Plano 5W2H"
)

// ReportWorkbook monta o arquivo XLSX a partir do relatório já montado.
func ReportWorkbook(report *usecases.Report) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := buildMaturidadeSheet(f, report); err != nil {
		return nil, err
	}
	if err := buildGapsSheet(f, report); err != nil {
		return nil, err
	}
	if err := buildPlanoSheet(f, report); err != nil {
		return nil, err
	}

	f.DeleteSheet("Sheet1")
	idx, err := f.GetSheetIndex(sheetMaturidade)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(idx)

	return f, nil
}

func buildMaturidadeSheet(f *excelize.File, report *usecases.Report) error {
	if _, err := f.NewSheet(sheetMaturidade); err != nil {
		return err
	}

	f.SetCellValue(sheetMaturidade, "A1", "Diagnóstico Empresarial 360º")
	f.SetCellValue(sheetMaturidade, "A2", report.ClientInfo.NomeFantasia)
	f.SetCellValue(sheetMaturidade, "B2", report.ClientInfo.Data)
	f.SetCellValue(sheetMaturidade, "A3", fmt.Sprintf("Progresso total: %d%%", report.TotalProgress))

	f.SetCellValue(sheetMaturidade, "A5", "Ref")
	f.SetCellValue(sheetMaturidade, "B5", "Área / Perspectiva")
	f.SetCellValue(sheetMaturidade, "C5", "Maturidade (%)")

	row := 6
	for i, area := range report.AreaResults {
		f.SetCellValue(sheetMaturidade, fmt.Sprintf("A%d", row), fmt.Sprintf("%02d", i+1))
		f.SetCellValue(sheetMaturidade, fmt.Sprintf("B%d", row), area.Name)
		f.SetCellValue(sheetMaturidade, fmt.Sprintf("C%d", row), area.Score)
		row++
	}

	row++
	f.SetCellValue(sheetMaturidade, fmt.Sprintf("A%d", row), "Prioridade")
	f.SetCellValue(sheetMaturidade, fmt.Sprintf("B%d", row), report.Priority.AreaName)
	f.SetCellValue(sheetMaturidade, fmt.Sprintf("C%d", row), report.Priority.Type)

	return f.SetColWidth(sheetMaturidade, "B", "B", 40)
}

func buildGapsSheet(f *excelize.File, report *usecases.Report) error {
	if _, err := f.NewSheet(sheetGaps); err != nil {
		return err
	}

	f.SetCellValue(sheetGaps, "A1", "Área")
	f.SetCellValue(sheetGaps, "B1", "Problema Detectado")
	f.SetCellValue(sheetGaps, "C1", "Nota")
	f.SetCellValue(sheetGaps, "D1", "Impacto")
	f.SetCellValue(sheetGaps, "E1", "Plano de Ação Recomendado")

	row := 2
	for _, area := range report.AreaResults {
		for _, gap := range area.Gaps {
			impacto := "Alto"
			if gap.Score < catalog.RiskThreshold {
				impacto = "Crítico"
			}
			f.SetCellValue(sheetGaps, fmt.Sprintf("A%d", row), area.Name)
			f.SetCellValue(sheetGaps, fmt.Sprintf("B%d", row), gap.Enunciado)
			f.SetCellValue(sheetGaps, fmt.Sprintf("C%d", row), gap.Score)
			f.SetCellValue(sheetGaps, fmt.Sprintf("D%d", row), impacto)
			f.SetCellValue(sheetGaps, fmt.Sprintf("E%d", row), gap.Recomendacao)
			row++
		}
	}

	if err := f.SetColWidth(sheetGaps, "B", "B", 60); err != nil {
		return err
	}
	return f.SetColWidth(sheetGaps, "E", "E", 60)
}

func buildPlanoSheet(f *excelize.File, report *usecases.Report) error {
	if _, err := f.NewSheet(sheetPlano); err != nil {
		return err
	}

	f.SetCellValue(sheetPlano, "A1", "Sumário Executivo")
	f.SetCellValue(sheetPlano, "B1", report.Insight.SumarioExecutivo)

	headers := []string{"O Quê", "Por Quê", "Quem", "Onde", "Quando", "Como", "Quanto"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 3)
		if err != nil {
			return err
		}
		f.SetCellValue(sheetPlano, cell, h)
	}

	for i, acao := range report.Insight.Plano5W2H {
		values := []string{acao.OQue, acao.PorQue, acao.Quem, acao.Onde, acao.Quando, acao.Como, acao.Quanto}
		for j, v := range values {
			cell, err := excelize.CoordinatesToCellName(j+1, i+4)
			if err != nil {
				return err
			}
			f.SetCellValue(sheetPlano, cell, v)
		}
	}

	return f.SetColWidth(sheetPlano, "A", "G", 30)
}
