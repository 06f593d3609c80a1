// Package scoring implementa o motor puro de pontuação e agregação do
// diagnóstico 360º. Todas as operações recebem a sessão explicitamente e
// não mantêm estado próprio: o estado vive no Diagnostic do chamador.
package scoring

import (
	"errors"
	"fmt"
	"math"

	"github.com/efraim-gestao/efraim-360-api/internal/domain/catalog"
	"github.com/efraim-gestao/efraim-360-api/internal/domain/entities"
)

// ErrUnknownQuestion indica referência a uma questão fora do catálogo.
// É violação de contrato do chamador, não falha operacional.
var ErrUnknownQuestion = errors.New("questão fora do catálogo")

// ErrInvalidOption indica uma alternativa fora de A-D.
var ErrInvalidOption = errors.New("alternativa inválida")

// NoteField identifica qual texto livre da resposta será editado.
type NoteField string

const (
	NoteObservation NoteField = "observation"
	NoteActionPlan  NoteField = "actionPlan"
)

// RecordAnswer registra a alternativa escolhida e a nota derivada do mapa
// fixo de pontuação. O plano de ação recebe a sugestão (ou a sugestão padrão
// da questão, quando vazia) apenas se ainda não houver texto: um plano já
// preenchido nunca é sobrescrito ao reclicar uma alternativa.
func RecordAnswer(d *entities.Diagnostic, questionID string, opt catalog.Option, suggestion string) error {
	q, ok := catalog.QuestionByID(questionID)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownQuestion, questionID)
	}
	score, ok := catalog.ScoreFor(opt)
	if !ok {
		return fmt.Errorf("%w: %s", ErrInvalidOption, opt)
	}

	if d.Responses == nil {
		d.Responses = entities.ResponseMap{}
	}

	resp := d.Responses[questionID]
	resp.SelectedOption = opt
	resp.Score = score
	if resp.ActionPlan == "" {
		if suggestion != "" {
			resp.ActionPlan = suggestion
		} else {
			resp.ActionPlan = q.SugestaoPadrao
		}
	}
	d.Responses[questionID] = resp
	return nil
}

// RecordNote registra um texto livre (observação ou plano de ação) sem
// efeito sobre a nota. O conteúdo não é validado.
func RecordNote(d *entities.Diagnostic, questionID string, field NoteField, text string) error {
	if _, ok := catalog.QuestionByID(questionID); !ok {
		return fmt.Errorf("%w: %s", ErrUnknownQuestion, questionID)
	}

	if d.Responses == nil {
		d.Responses = entities.ResponseMap{}
	}

	resp := d.Responses[questionID]
	switch field {
	case NoteObservation:
		resp.Observation = text
	case NoteActionPlan:
		resp.ActionPlan = text
	default:
		return fmt.Errorf("campo de nota inválido: %s", field)
	}
	d.Responses[questionID] = resp
	return nil
}

// AreaProgress retorna o percentual (0-100) de questões respondidas da área.
// Áreas fora do catálogo retornam 0.
func AreaProgress(d *entities.Diagnostic, areaID string) float64 {
	questions := catalog.QuestionsByArea(areaID)
	if len(questions) == 0 {
		return 0
	}
	answered := 0
	for _, q := range questions {
		if d.Responses[q.ID].Answered() {
			answered++
		}
	}
	return float64(answered) / float64(len(questions)) * 100
}

// TotalProgress retorna o percentual de conclusão do diagnóstico inteiro,
// arredondado para o inteiro mais próximo.
func TotalProgress(d *entities.Diagnostic) int {
	total := len(catalog.Questions)
	if total == 0 {
		return 0
	}
	answered := 0
	for _, q := range catalog.Questions {
		if d.Responses[q.ID].Answered() {
			answered++
		}
	}
	return int(math.Round(float64(answered) / float64(total) * 100))
}
