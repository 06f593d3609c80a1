package handlers

import (
	"github.com/efraim-gestao/efraim-360-api/internal/application/export"
	"github.com/efraim-gestao/efraim-360-api/internal/application/usecases"
	"github.com/gofiber/fiber/v2"
)

// ReportHandler expõe a geração do relatório estratégico em JSON e XLSX.
type ReportHandler struct {
	diagnosticUseCase *usecases.DiagnosticUseCase
	reportUseCase     *usecases.ReportUseCase
}

// NewReportHandler cria uma nova instância de ReportHandler.
func NewReportHandler(diagnosticUseCase *usecases.DiagnosticUseCase, reportUseCase *usecases.ReportUseCase) *ReportHandler {
	return &ReportHandler{
		diagnosticUseCase: diagnosticUseCase,
		reportUseCase:     reportUseCase,
	}
}

// GetReport monta e retorna o relatório estratégico do diagnóstico. A
// montagem nunca falha por indisponibilidade da IA: nesse caso o payload
// vem marcado com origem "contingencia".
func (h *ReportHandler) GetReport(c *fiber.Ctx) error {
	d, err := h.diagnosticUseCase.Get(c.Params("id"))
	if err != nil {
		return respondError(c, err, "Erro ao buscar diagnóstico")
	}

	report := h.reportUseCase.Assemble(c.UserContext(), d)
	return c.JSON(report)
}

// ExportReport gera a pasta de trabalho XLSX do relatório e a devolve como
// anexo.
func (h *ReportHandler) ExportReport(c *fiber.Ctx) error {
	d, err := h.diagnosticUseCase.Get(c.Params("id"))
	if err != nil {
		return respondError(c, err, "Erro ao buscar diagnóstico")
	}

	report := h.reportUseCase.Assemble(c.UserContext(), d)

	f, err := export.ReportWorkbook(report)
	if err != nil {
		return respondError(c, err, "Erro ao gerar planilha")
	}
	defer f.Close()

	buf, err := f.WriteToBuffer()
	if err != nil {
		return respondError(c, err, "Erro ao gerar planilha")
	}

	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="diagnostico-`+d.ID+`.xlsx"`)
	return c.Send(buf.Bytes())
}
