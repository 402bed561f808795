package handlers

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/jobassist/api/http/presenter"
	"github.com/artem13815/jobassist/pkg/pipeline"
)

// EvaluateHandler обслуживает двухэтапный конвейер оценки резюме.
type EvaluateHandler struct {
	orch *pipeline.Orchestrator
}

func NewEvaluateHandler(orch *pipeline.Orchestrator) *EvaluateHandler {
	return &EvaluateHandler{orch: orch}
}

type evaluateRequest struct {
	JobTitle   string `json:"job_title"`
	JobDes     string `json:"job_des"`
	ResumeText string `json:"resume_text"`
}

// Evaluate извлекает требования вакансии и оценивает резюме относительно
// них. Запрос держится открытым на время обоих обращений к модели.
// @Summary Оценка резюме по вакансии
// @Description Этап 1 строит отчёт о требованиях, этап 2 оценивает резюме по этому отчёту. Сбой любого этапа прерывает весь запрос.
// @Tags    Оценка
// @Accept  json
// @Produce json
// @Param   input body evaluateRequest true "Название вакансии, описание, текст резюме"
// @Success 200 {object} pipeline.EvaluationResult
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /evaluate [post]
func (h *EvaluateHandler) Evaluate(c *fiber.Ctx) error {
	var req evaluateRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "невалидный JSON")
	}
	if strings.TrimSpace(req.ResumeText) == "" {
		return presenter.Error(c, http.StatusBadRequest, "resume_text is required")
	}

	result, err := h.orch.RunEvaluation(c.Context(), req.JobTitle, req.JobDes, req.ResumeText)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, err.Error())
	}
	return presenter.JSON(c, http.StatusOK, result)
}
