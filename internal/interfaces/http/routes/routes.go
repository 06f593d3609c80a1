package routes

import (
	"github.com/efraim-gestao/efraim-360-api/internal/application/usecases"
	"github.com/efraim-gestao/efraim-360-api/internal/domain/repositories"
	"github.com/efraim-gestao/efraim-360-api/internal/infrastructure/ai"
	"github.com/efraim-gestao/efraim-360-api/internal/infrastructure/cache"
	"github.com/efraim-gestao/efraim-360-api/internal/interfaces/http/handlers"
	"github.com/efraim-gestao/efraim-360-api/internal/interfaces/http/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"gorm.io/gorm"
)

func authMiddleware(c *fiber.Ctx) error {
	// TODO: Implementar autenticação
	return c.Next()
}

func SetupRoutes(app *fiber.App, db *gorm.DB, generator ai.InsightGenerator) {
	// Add performance middleware
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))

	// Add ETag support for efficient caching
	app.Use(etag.New())

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// Repositories
	diagRepo := repositories.NewDiagnosticRepository(db)
	clientRepo := repositories.NewClientRepository(db)
	leadRepo := repositories.NewLeadRepository(db)

	// Use Cases
	diagnosticUseCase := usecases.NewDiagnosticUseCase(diagRepo, clientRepo)
	reportUseCase := usecases.NewReportUseCase(generator, cache.New())
	dashboardUseCase := usecases.NewDashboardUseCase(diagRepo, clientRepo, leadRepo)
	crmUseCase := usecases.NewCrmUseCase(clientRepo, leadRepo)

	// Handlers
	catalogHandler := handlers.NewCatalogHandler()
	diagnosticHandler := handlers.NewDiagnosticHandler(diagnosticUseCase)
	reportHandler := handlers.NewReportHandler(diagnosticUseCase, reportUseCase)
	dashboardHandler := handlers.NewDashboardHandler(dashboardUseCase)
	crmHandler := handlers.NewCrmHandler(crmUseCase)

	// Routes
	reportLimiter := middleware.NewReportLimiter(1, 3)
	groups := middleware.SetupRouteGroups(app, authMiddleware, reportLimiter)

	// Catálogo fixo de áreas e questões
	groups.Public.Get("/catalog/areas", catalogHandler.GetAreas)
	groups.Public.Get("/catalog/questions", catalogHandler.GetQuestions)

	// Ciclo de vida do diagnóstico
	groups.Diagnostic.Post("/", diagnosticHandler.StartDiagnostic)
	groups.Diagnostic.Get("/", diagnosticHandler.GetDiagnostics)
	groups.Diagnostic.Get("/:id", diagnosticHandler.GetDiagnosticByID)
	groups.Diagnostic.Get("/:id/progress", diagnosticHandler.GetProgress)
	groups.Diagnostic.Put("/:id/answers", diagnosticHandler.RecordAnswer)
	groups.Diagnostic.Put("/:id/notes", diagnosticHandler.RecordNote)
	groups.Diagnostic.Put("/:id/client", diagnosticHandler.UpdateClientInfo)
	groups.Diagnostic.Post("/:id/finish", diagnosticHandler.FinishDiagnostic)

	// Relatório estratégico (rate limited)
	groups.Report.Get("/", reportHandler.GetReport)
	groups.Report.Get("/export", reportHandler.ExportReport)

	// CRM e painel
	groups.Public.Get("/clients", crmHandler.GetClients)
	groups.Public.Get("/leads", crmHandler.GetLeads)
	groups.Public.Get("/dashboard/stats", dashboardHandler.GetStats)
}
