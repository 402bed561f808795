// @title         jobassist API
// @version       1.0
// @description   Сервис поиска вакансий и оценки резюме: нормализованный поиск через Adzuna, избранная вакансия и двухэтапный LLM-конвейер «требования → оценка».
// @BasePath      /
// @schemes       http
// @host          localhost:8080
package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	swagger "github.com/gofiber/swagger"

	_ "github.com/artem13815/jobassist/docs"

	// internal imports
	"github.com/artem13815/jobassist/api/http"
	"github.com/artem13815/jobassist/api/http/handlers"
	"github.com/artem13815/jobassist/pkg/config"
	"github.com/artem13815/jobassist/pkg/favorites"
	"github.com/artem13815/jobassist/pkg/health"
	"github.com/artem13815/jobassist/pkg/health/checkers"
	"github.com/artem13815/jobassist/pkg/listings"
	"github.com/artem13815/jobassist/pkg/llm/openrouter"
	"github.com/artem13815/jobassist/pkg/pipeline"
)

func main() {
	app := fiber.New()

	// Load configuration from env/.env
	cfg := config.Load()

	if cfg.AdzunaAppID == "" || cfg.AdzunaAppKey == "" {
		log.Println("warning: ADZUNA_APP_ID / ADZUNA_APP_KEY not set — job search will fail")
	}
	if cfg.OpenRouterAPIKey == "" {
		log.Println("warning: OPENROUTER_API_KEY not set — resume evaluation will fail")
	}

	// Single-slot stores live as JSON files under the data directory.
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		log.Fatalf("prepare data dir: %v", err)
	}
	searchOutput := listings.NewFileOutputStore(filepath.Join(cfg.DataDir, "search_output.json"))
	favoriteStore := favorites.NewFileStore(filepath.Join(cfg.DataDir, "saved_job.json"))

	// External collaborators
	searchClient := listings.NewClient(cfg.AdzunaAppID, cfg.AdzunaAppKey, cfg.AdzunaCountry, "", searchOutput)
	llmClient := openrouter.New(
		cfg.OpenRouterAPIKey,
		cfg.OpenRouterBase,
		cfg.OpenRouterModel,
		cfg.OpenRouterAppTitle,
		cfg.OpenRouterReferer,
	)

	// Pipeline stages share one model boundary; personas pick up the
	// configured model name here, not inside stage logic.
	extractor := pipeline.NewRequirementExtractor(llmClient, pipeline.WithModelName(pipeline.Researcher, cfg.OpenRouterModel))
	evaluator := pipeline.NewResumeEvaluator(llmClient, pipeline.WithModelName(pipeline.Evaluator, cfg.OpenRouterModel))
	orch := pipeline.NewOrchestrator(searchClient, searchOutput, extractor, evaluator)

	// Health service: compose checkers
	readiness := health.NewService(checkers.NewDataDirChecker(cfg.DataDir))

	jobsHandler := handlers.NewJobsHandler(orch, favoriteStore, cfg.MaxSearchResults)
	evalHandler := handlers.NewEvaluateHandler(orch)
	healthHandler := handlers.NewHealthHandler(readiness)

	// Register routes
	http.Register(app, jobsHandler, evalHandler, healthHandler)

	// Swagger UI
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Start server
	port := cfg.Port
	log.Printf("HTTP server listening on :%s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
