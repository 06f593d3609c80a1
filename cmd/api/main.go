package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/efraim-gestao/efraim-360-api/internal/infrastructure/ai"
	"github.com/efraim-gestao/efraim-360-api/internal/infrastructure/database"
	"github.com/efraim-gestao/efraim-360-api/internal/interfaces/http/middleware"
	"github.com/efraim-gestao/efraim-360-api/internal/interfaces/http/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ No .env file found, using system environment variables")
	}

	// Initialize database
	db, err := database.SetupDatabase()
	if err != nil {
		log.Fatalf("❌ Error setting up database: %v", err)
	}

	// Gerador de insight (opcional). Sem chave, todo relatório sai em modo
	// de contingência.
	var generator ai.InsightGenerator
	if apiKey := os.Getenv("GEMINI_API_KEY"); apiKey != "" {
		gemini, err := ai.NewGeminiGenerator(context.Background(), apiKey, os.Getenv("GEMINI_MODEL"))
		if err != nil {
			log.Printf("⚠️ Erro ao configurar o Gemini, relatórios usarão contingência: %v", err)
		} else {
			generator = gemini
		}
	} else {
		log.Println("⚠️ GEMINI_API_KEY não definida, relatórios usarão contingência")
	}

	// Configure Fiber for better performance
	app := fiber.New(fiber.Config{
		Concurrency: 256 * 1024,
		// Desabilitado modo Prefork pois causa instabilidade no container
		Prefork:   false,
		BodyLimit: 10 * 1024 * 1024, // 10MB
		// A geração de relatório espera a resposta da IA
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	})

	// Setup middleware
	middleware.SetupMiddlewares(app)

	// Setup routes
	routes.SetupRoutes(app, db, generator)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("🚀 Server is running on port %s", port)
	log.Fatal(app.Listen(":" + port))
}
