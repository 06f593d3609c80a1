package usecases

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/efraim-gestao/efraim-360-api/internal/domain/entities"
	"github.com/efraim-gestao/efraim-360-api/internal/domain/scoring"
	"github.com/efraim-gestao/efraim-360-api/internal/infrastructure/ai"
	"github.com/efraim-gestao/efraim-360-api/internal/infrastructure/cache"
)

// insightTTL limita por quanto tempo um payload de IA é reaproveitado
// para a mesma combinação de respostas.
const insightTTL = 24 * time.Hour

// Report é o valor final pronto para apresentação: resultados determinísticos
// do motor de pontuação mais o payload estratégico (IA ou contingência).
type Report struct {
	DiagnosticID  string                   `json:"diagnostic_id"`
	ClientInfo    entities.ClientInfo      `json:"client_info"`
	GeneratedAt   time.Time                `json:"generated_at"`
	TotalProgress int                      `json:"total_progress"`
	AreaResults   []scoring.AreaResult     `json:"area_results"`
	MasterRadar   []scoring.RadarPoint     `json:"master_radar"`
	Priority      scoring.PriorityAnalysis `json:"priority"`
	Insight       entities.StrategicReport `json:"insight"`
	InsightOrigem string                   `json:"insight_origem"`
}

// ReportUseCase monta o relatório estratégico de um diagnóstico.
type ReportUseCase struct {
	generator ai.InsightGenerator
	cache     *cache.InsightCache
}

// NewReportUseCase cria uma nova instância de ReportUseCase. generator pode
// ser nil quando a IA não está configurada: todo relatório usa contingência.
func NewReportUseCase(generator ai.InsightGenerator, insightCache *cache.InsightCache) *ReportUseCase {
	return &ReportUseCase{
		generator: generator,
		cache:     insightCache,
	}
}

// Assemble monta o relatório a partir de um snapshot da sessão tirado no
// momento da invocação: mutações concorrentes no diagnóstico não afetam o
// cálculo em andamento. Nunca falha por indisponibilidade do insight.
func (u *ReportUseCase) Assemble(ctx context.Context, d *entities.Diagnostic) *Report {
	snapshot := *d
	snapshot.Responses = d.Responses.Clone()

	areaResults := scoring.ComputeAreaResults(&snapshot)
	priority := scoring.ComputePriority(areaResults)
	progress := scoring.TotalProgress(&snapshot)

	masterRadar := make([]scoring.RadarPoint, 0, len(areaResults))
	for _, r := range areaResults {
		masterRadar = append(masterRadar, scoring.RadarPoint{
			Subject: strings.SplitN(r.Name, " ", 2)[0],
			Value:   r.Score,
		})
	}

	insight, origem := u.insightFor(ctx, &snapshot, areaResults, priority)

	return &Report{
		DiagnosticID:  snapshot.ID,
		ClientInfo:    snapshot.ClientInfo,
		GeneratedAt:   time.Now(),
		TotalProgress: progress,
		AreaResults:   areaResults,
		MasterRadar:   masterRadar,
		Priority:      priority,
		Insight:       insight,
		InsightOrigem: origem,
	}
}

// insightFor resolve o payload estratégico: cache por hash das respostas,
// uma única tentativa na IA e contingência determinística em caso de falha.
func (u *ReportUseCase) insightFor(ctx context.Context, d *entities.Diagnostic, areaResults []scoring.AreaResult, priority scoring.PriorityAnalysis) (entities.StrategicReport, string) {
	key := cache.Key(d.ID, d.Responses)
	if cached, ok := u.cache.Get(key); ok {
		return cached, entities.InsightOrigemIA
	}

	if u.generator != nil {
		insight, err := u.generator.Generate(ctx, d, priority)
		if err == nil {
			u.cache.Set(key, *insight, insightTTL)
			return *insight, entities.InsightOrigemIA
		}
		log.Printf("⚠️ Insight indisponível para o diagnóstico %s: %v", d.ID, err)
	}

	return buildFallbackInsight(areaResults, priority), entities.InsightOrigemContingencia
}
