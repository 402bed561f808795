package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/jobassist/api/http/handlers"
)

// Register wires all HTTP routes onto given Fiber app. Routes live at the
// root path for compatibility with the interactive client.
func Register(app *fiber.App, jobs *handlers.JobsHandler, eval *handlers.EvaluateHandler, health *handlers.HealthHandler) {
	// Health and readiness endpoints for probes/monitoring
	app.Get("/health", health.Health)
	app.Get("/ready", health.Ready)

	// Job search and the single-slot favorite
	app.Post("/search_jobs", jobs.SearchJobs)
	app.Post("/save_job", jobs.SaveJob)
	app.Get("/get_saved_job", jobs.GetSavedJob)
	app.Get("/get_saved_job_description", jobs.GetSavedJobDescription)

	// Two-stage resume evaluation pipeline
	app.Post("/evaluate", eval.Evaluate)
}
