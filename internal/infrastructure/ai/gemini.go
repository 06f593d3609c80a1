// Package ai implementa o colaborador de geração de insight do relatório
// estratégico sobre a API Gemini, com saída estruturada em JSON.
package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/efraim-gestao/efraim-360-api/internal/domain/catalog"
	"github.com/efraim-gestao/efraim-360-api/internal/domain/entities"
	"github.com/efraim-gestao/efraim-360-api/internal/domain/scoring"
)

// ErrInsightUnavailable cobre tanto falha de rede/API quanto resposta fora
// do schema esperado. O chamador recupera localmente com a contingência,
// nunca propaga como erro fatal ao usuário final.
var ErrInsightUnavailable = errors.New("insight indisponível")

// InsightGenerator é o contrato do colaborador de geração de insight:
// uma tentativa por requisição, sem streaming, pode expirar.
type InsightGenerator interface {
	Generate(ctx context.Context, d *entities.Diagnostic, priority scoring.PriorityAnalysis) (*entities.StrategicReport, error)
}

const defaultModel = "gemini-2.0-flash"

// GeminiGenerator implementa InsightGenerator usando o SDK Gemini.
type GeminiGenerator struct {
	client *genai.Client
	model  string
}

// NewGeminiGenerator cria o gerador. model vazio usa o modelo padrão.
func NewGeminiGenerator(ctx context.Context, apiKey, model string) (*GeminiGenerator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create Gemini client: %w", err)
	}

	if model == "" {
		model = defaultModel
	}

	return &GeminiGenerator{client: client, model: model}, nil
}

// Generate monta o prompt de consultor sênior, chama o modelo com schema de
// resposta estruturada e valida o payload retornado.
func (g *GeminiGenerator) Generate(ctx context.Context, d *entities.Diagnostic, priority scoring.PriorityAnalysis) (*entities.StrategicReport, error) {
	prompt := buildPrompt(d, priority)

	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   reportSchema(),
	}

	result, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), config)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInsightUnavailable, err)
	}

	text := strings.TrimSpace(result.Text())
	if text == "" {
		return nil, fmt.Errorf("%w: resposta vazia do modelo", ErrInsightUnavailable)
	}

	var report entities.StrategicReport
	if err := json.Unmarshal([]byte(text), &report); err != nil {
		return nil, fmt.Errorf("%w: payload fora do schema: %v", ErrInsightUnavailable, err)
	}
	if report.SumarioExecutivo == "" {
		return nil, fmt.Errorf("%w: payload sem sumário executivo", ErrInsightUnavailable)
	}

	return &report, nil
}

// buildPrompt resume o diagnóstico ponto a ponto na ordem do catálogo e
// destaca a prioridade crítica detectada pelo motor de pontuação.
func buildPrompt(d *entities.Diagnostic, priority scoring.PriorityAnalysis) string {
	var summary strings.Builder
	for _, q := range catalog.Questions {
		resp, ok := d.Responses[q.ID]
		if !ok || !resp.Answered() {
			continue
		}
		status := "Bom"
		if resp.Score < 40 {
			status = "Crítico"
		} else if resp.Score < 70 {
			status = "Regular"
		}
		obs := resp.Observation
		if obs == "" {
			obs = "N/A"
		}
		fmt.Fprintf(&summary, "- Ponto: %s | Status: %s | Obs: %s\n", q.ID, status, obs)
	}

	return fmt.Sprintf(`Você é um consultor sênior da Efraim Gestão Inteligente.
Analise o diagnóstico 360º da empresa %s.

FOCO PRINCIPAL (Prioridade Crítica): %s - Motivo: %s.

DADOS DO DIAGNÓSTICO:
%s
Gere um relatório estratégico completo contendo:
1. Um sumário executivo impactante.
2. Análise SWOT (4 pontos para cada quadrante).
3. Diagrama de Ishikawa (Causa e Efeito) para o problema principal (%s).
4. Um plano de ação 5W2H com 4 ações práticas.
5. Um roteiro resumido seguindo o ciclo PDCA.

Retorne estritamente em JSON seguindo o esquema definido.`,
		d.ClientInfo.NomeFantasia, priority.AreaName, priority.Message, summary.String(), priority.AreaName)
}

// reportSchema descreve o StrategicReport para a saída estruturada do modelo.
func reportSchema() *genai.Schema {
	stringArray := &genai.Schema{
		Type:  genai.TypeArray,
		Items: &genai.Schema{Type: genai.TypeString},
	}

	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"sumarioExecutivo": {Type: genai.TypeString},
			"swot": {
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"forcas":        stringArray,
					"fraquezas":     stringArray,
					"oportunidades": stringArray,
					"ameacas":       stringArray,
				},
				Required: []string{"forcas", "fraquezas", "oportunidades", "ameacas"},
			},
			"ishikawa": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"categoria": {Type: genai.TypeString, Description: "Ex: Métodos, Mão de Obra, Máquinas, Medida, Meio Ambiente, Materiais"},
						"causa":     {Type: genai.TypeString},
					},
				},
			},
			"plano5W2H": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"oQue":   {Type: genai.TypeString},
						"porQue": {Type: genai.TypeString},
						"quem":   {Type: genai.TypeString},
						"onde":   {Type: genai.TypeString},
						"quando": {Type: genai.TypeString},
						"como":   {Type: genai.TypeString},
						"quanto": {Type: genai.TypeString},
					},
				},
			},
			"pdca": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"fase":      {Type: genai.TypeString},
						"descricao": {Type: genai.TypeString},
					},
				},
			},
		},
		Required: []string{"sumarioExecutivo", "swot", "plano5W2H", "pdca", "ishikawa"},
	}
}
