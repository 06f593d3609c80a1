package handlers

import (
	"strconv"

	"github.com/efraim-gestao/efraim-360-api/internal/application/usecases"
	"github.com/efraim-gestao/efraim-360-api/internal/domain/catalog"
	"github.com/efraim-gestao/efraim-360-api/internal/domain/entities"
	"github.com/efraim-gestao/efraim-360-api/internal/domain/scoring"
	"github.com/gofiber/fiber/v2"
)

// DiagnosticHandler expõe o ciclo de vida do diagnóstico via HTTP.
type DiagnosticHandler struct {
	diagnosticUseCase *usecases.DiagnosticUseCase
}

// NewDiagnosticHandler cria uma nova instância de DiagnosticHandler.
func NewDiagnosticHandler(diagnosticUseCase *usecases.DiagnosticUseCase) *DiagnosticHandler {
	return &DiagnosticHandler{diagnosticUseCase: diagnosticUseCase}
}

// StartDiagnostic inicia uma nova sessão de diagnóstico. O corpo é o bloco
// de identificação do cliente e pode vir vazio (preenchido depois).
func (h *DiagnosticHandler) StartDiagnostic(c *fiber.Ctx) error {
	var info entities.ClientInfo
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&info); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Corpo da requisição inválido: " + err.Error(),
			})
		}
	}

	d, err := h.diagnosticUseCase.Start(info)
	if err != nil {
		return respondError(c, err, "Erro ao iniciar diagnóstico")
	}
	return c.Status(fiber.StatusCreated).JSON(d)
}

// GetDiagnostics lista os diagnósticos paginados, mais recentes primeiro.
func (h *DiagnosticHandler) GetDiagnostics(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "20"))

	diagnostics, total, err := h.diagnosticUseCase.List(page, limit)
	if err != nil {
		return respondError(c, err, "Erro ao listar diagnósticos")
	}

	return c.JSON(fiber.Map{
		"data":  diagnostics,
		"total": total,
		"page":  page,
		"limit": limit,
	})
}

// GetDiagnosticByID retorna um diagnóstico pelo id.
func (h *DiagnosticHandler) GetDiagnosticByID(c *fiber.Ctx) error {
	d, err := h.diagnosticUseCase.Get(c.Params("id"))
	if err != nil {
		return respondError(c, err, "Erro ao buscar diagnóstico")
	}
	return c.JSON(d)
}

type answerRequest struct {
	QuestionID string `json:"question_id"`
	Option     string `json:"option"`
	Suggestion string `json:"suggestion"`
}

// RecordAnswer registra a alternativa escolhida de uma questão (autosave).
func (h *DiagnosticHandler) RecordAnswer(c *fiber.Ctx) error {
	var req answerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Corpo da requisição inválido: " + err.Error(),
		})
	}
	if req.QuestionID == "" || req.Option == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "question_id e option são obrigatórios",
		})
	}

	d, err := h.diagnosticUseCase.RecordAnswer(c.Params("id"), req.QuestionID, catalog.Option(req.Option), req.Suggestion)
	if err != nil {
		return respondError(c, err, "Erro ao registrar resposta")
	}
	return c.JSON(d)
}

type noteRequest struct {
	QuestionID string `json:"question_id"`
	Field      string `json:"field"`
	Text       string `json:"text"`
}

// RecordNote registra observação ou plano de ação de uma questão.
func (h *DiagnosticHandler) RecordNote(c *fiber.Ctx) error {
	var req noteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Corpo da requisição inválido: " + err.Error(),
		})
	}

	field := scoring.NoteField(req.Field)
	if field != scoring.NoteObservation && field != scoring.NoteActionPlan {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "field deve ser 'observation' ou 'actionPlan'",
		})
	}

	d, err := h.diagnosticUseCase.RecordNote(c.Params("id"), req.QuestionID, field, req.Text)
	if err != nil {
		return respondError(c, err, "Erro ao registrar anotação")
	}
	return c.JSON(d)
}

// UpdateClientInfo substitui o bloco de identificação do diagnóstico.
func (h *DiagnosticHandler) UpdateClientInfo(c *fiber.Ctx) error {
	var info entities.ClientInfo
	if err := c.BodyParser(&info); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Corpo da requisição inválido: " + err.Error(),
		})
	}

	d, err := h.diagnosticUseCase.UpdateClientInfo(c.Params("id"), info)
	if err != nil {
		return respondError(c, err, "Erro ao atualizar dados do cliente")
	}
	return c.JSON(d)
}

// FinishDiagnostic marca o diagnóstico como Finalizado e cadastra o cliente
// pelo CNPJ quando informado.
func (h *DiagnosticHandler) FinishDiagnostic(c *fiber.Ctx) error {
	d, err := h.diagnosticUseCase.Finish(c.Params("id"))
	if err != nil {
		return respondError(c, err, "Erro ao finalizar diagnóstico")
	}
	return c.JSON(d)
}

// GetProgress retorna o progresso total e por área do diagnóstico.
func (h *DiagnosticHandler) GetProgress(c *fiber.Ctx) error {
	d, err := h.diagnosticUseCase.Get(c.Params("id"))
	if err != nil {
		return respondError(c, err, "Erro ao buscar diagnóstico")
	}

	areas := make([]fiber.Map, 0, len(catalog.Areas))
	for _, area := range catalog.Areas {
		areas = append(areas, fiber.Map{
			"id":       area.ID,
			"name":     area.Name,
			"progress": scoring.AreaProgress(d, area.ID),
		})
	}

	return c.JSON(fiber.Map{
		"diagnostic_id":  d.ID,
		"total_progress": scoring.TotalProgress(d),
		"areas":          areas,
	})
}
