package middleware

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func SetupMiddlewares(app *fiber.App) {
	allowOrigins := os.Getenv("ALLOWED_ORIGINS")
	if allowOrigins == "" {
		allowOrigins = "http://localhost:3000"
	}

	// CORS configuration
	app.Use(cors.New(cors.Config{
		AllowOrigins:     allowOrigins,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           300, // 5 minutes
	}))
}

// RouteGroups define os grupos de rotas da API
type RouteGroups struct {
	Public     fiber.Router
	Diagnostic fiber.Router
	Report     fiber.Router
}

// SetupRouteGroups configura os grupos de rotas com seus respectivos
// middlewares. As rotas de relatório carregam, além da autenticação, o
// limitador de chamadas que protege a cota da IA.
func SetupRouteGroups(app *fiber.App, authMiddleware fiber.Handler, reportLimiter fiber.Handler) RouteGroups {
	// Grupo público (sem autenticação)
	public := app.Group("/")

	// Grupo para o ciclo de vida do diagnóstico
	diagnostic := app.Group("/diagnostics")
	diagnostic.Use(authMiddleware)

	// Grupo para geração de relatório (rate limited)
	report := app.Group("/diagnostics/:id/report")
	report.Use(authMiddleware)
	report.Use(reportLimiter)

	return RouteGroups{
		Public:     public,
		Diagnostic: diagnostic,
		Report:     report,
	}
}
