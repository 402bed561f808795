package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/jobassist/api/http/presenter"
	"github.com/artem13815/jobassist/pkg/favorites"
	"github.com/artem13815/jobassist/pkg/listings"
	"github.com/artem13815/jobassist/pkg/pipeline"
)

const defaultNumResults = 5

// JobsHandler обслуживает поиск вакансий и избранную вакансию.
type JobsHandler struct {
	orch       *pipeline.Orchestrator
	favs       favorites.Store
	maxResults int
}

func NewJobsHandler(orch *pipeline.Orchestrator, favs favorites.Store, maxResults int) *JobsHandler {
	if maxResults < 1 {
		maxResults = 10
	}
	return &JobsHandler{orch: orch, favs: favs, maxResults: maxResults}
}

type searchJobsRequest struct {
	Role       string `json:"role"`
	Location   string `json:"location"`
	NumResults int    `json:"num_results"`
}

type searchJobsResponse struct {
	Results []listings.JobListing `json:"results"`
}

// SearchJobs ищет вакансии во внешнем API и возвращает нормализованный список.
// @Summary Поиск вакансий
// @Tags    Вакансии
// @Accept  json
// @Produce json
// @Param   input body searchJobsRequest true "Роль, локация, число результатов (по умолчанию 5)"
// @Success 200 {object} searchJobsResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /search_jobs [post]
func (h *JobsHandler) SearchJobs(c *fiber.Ctx) error {
	var req searchJobsRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "невалидный JSON")
	}
	if req.Role == "" || req.Location == "" {
		return presenter.Error(c, http.StatusBadRequest, "role and location are required")
	}
	n := req.NumResults
	if n == 0 {
		n = defaultNumResults
	}
	if n < 1 {
		return presenter.Error(c, http.StatusBadRequest, "num_results must be >= 1")
	}
	if n > h.maxResults {
		n = h.maxResults
	}

	results, err := h.orch.RunJobSearch(c.Context(), req.Role, req.Location, n)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, err.Error())
	}
	if results == nil {
		results = []listings.JobListing{}
	}
	return presenter.JSON(c, http.StatusOK, searchJobsResponse{Results: results})
}

type saveJobRequest struct {
	Job listings.JobListing `json:"job"`
}

// SaveJob сохраняет вакансию в единственный слот избранного, перезаписывая его.
// @Summary Сохранить вакансию в избранное
// @Tags    Вакансии
// @Accept  json
// @Produce json
// @Param   input body saveJobRequest true "Вакансия"
// @Success 200 {object} map[string]string
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /save_job [post]
func (h *JobsHandler) SaveJob(c *fiber.Ctx) error {
	var req saveJobRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "невалидный JSON")
	}
	if err := h.favs.Save(c.Context(), req.Job); err != nil {
		return presenter.Error(c, http.StatusInternalServerError, err.Error())
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{"message": "Job saved successfully!"})
}

// GetSavedJob возвращает сохранённую вакансию целиком.
// @Summary Получить сохранённую вакансию
// @Tags    Вакансии
// @Produce json
// @Success 200 {object} listings.JobListing
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /get_saved_job [get]
func (h *JobsHandler) GetSavedJob(c *fiber.Ctx) error {
	job, err := h.favs.Load(c.Context())
	if err != nil {
		if errors.Is(err, favorites.ErrNoSavedJob) {
			return presenter.Error(c, http.StatusNotFound, "No saved job found.")
		}
		return presenter.Error(c, http.StatusInternalServerError, err.Error())
	}
	return presenter.JSON(c, http.StatusOK, job)
}

// GetSavedJobDescription возвращает сокращённое представление сохранённой вакансии.
// @Summary Описание сохранённой вакансии
// @Tags    Вакансии
// @Produce json
// @Success 200 {object} listings.Projection
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /get_saved_job_description [get]
func (h *JobsHandler) GetSavedJobDescription(c *fiber.Ctx) error {
	job, err := h.favs.Load(c.Context())
	if err != nil {
		if errors.Is(err, favorites.ErrNoSavedJob) {
			return presenter.Error(c, http.StatusNotFound, "No saved job found.")
		}
		return presenter.Error(c, http.StatusInternalServerError, err.Error())
	}
	return presenter.JSON(c, http.StatusOK, job.Project())
}
