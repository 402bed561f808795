package pipeline

import (
	"context"
	"errors"
	"strings"

	"github.com/artem13815/jobassist/pkg/llm"
)

// Этап — ограниченная единица работы: ровно один вызов модели,
// возвращающий непрозрачный текстовый отчёт. Этапы не ретраят,
// не кэшируют и не валидируют содержимое ответа.

// RequirementExtractor строит отчёт о требованиях вакансии.
type RequirementExtractor struct {
	model llm.Model
	agent llm.Agent
}

func NewRequirementExtractor(model llm.Model, agent llm.Agent) *RequirementExtractor {
	return &RequirementExtractor{model: model, agent: agent}
}

// Extract возвращает текстовый отчёт о требованиях для пары
// (название вакансии, описание). Ошибка вызова модели пробрасывается
// без изменений.
func (e *RequirementExtractor) Extract(ctx context.Context, jobTitle, jobDescription string) (string, error) {
	return e.model.Invoke(ctx, e.agent, requirementsPrompt(jobTitle, jobDescription))
}

// ResumeEvaluator оценивает резюме относительно отчёта о требованиях.
type ResumeEvaluator struct {
	model llm.Model
	agent llm.Agent
}

func NewResumeEvaluator(model llm.Model, agent llm.Agent) *ResumeEvaluator {
	return &ResumeEvaluator{model: model, agent: agent}
}

// Evaluate возвращает текстовый отчёт оценки. Требования — любой
// непрозрачный текст, их форма не проверяется; текст резюме обязателен.
func (e *ResumeEvaluator) Evaluate(ctx context.Context, requirements, resumeText string) (string, error) {
	if strings.TrimSpace(resumeText) == "" {
		return "", errors.New("empty resume text")
	}
	return e.model.Invoke(ctx, e.agent, evaluationPrompt(requirements, resumeText))
}
