package pipeline

import (
	"context"
	"log"

	"github.com/google/uuid"

	"github.com/artem13815/jobassist/pkg/listings"
)

// Searcher — порт поиска вакансий (реализуется listings.Client).
type Searcher interface {
	Search(ctx context.Context, role, location string, numResults int) ([]listings.JobListing, error)
}

// EvaluationResult — результат двухэтапного конвейера: оба отчёта целиком.
type EvaluationResult struct {
	Requirements string `json:"job_requirements"`
	Evaluation   string `json:"evaluation_result"`
}

// Orchestrator последовательно выполняет конвейеры и переводит сбои
// этапов в ошибки, видимые вызывающему. Конвейеров ровно два:
// одноэтапный поиск вакансий и двухэтапная оценка резюме.
type Orchestrator struct {
	searcher  Searcher
	output    listings.OutputStore
	extractor *RequirementExtractor
	evaluator *ResumeEvaluator
}

func NewOrchestrator(searcher Searcher, output listings.OutputStore, extractor *RequirementExtractor, evaluator *ResumeEvaluator) *Orchestrator {
	return &Orchestrator{
		searcher:  searcher,
		output:    output,
		extractor: extractor,
		evaluator: evaluator,
	}
}

// RunJobSearch выполняет поиск и возвращает содержимое слота последнего
// поиска, а не прямой результат клиента: ответом считается то, что было
// последним записано в слот. Непрямой путь сохранён намеренно для
// совместимости и изолирован в этом методе; при конкурентных поисках
// слот может содержать результат чужого запроса (см. listings.OutputStore).
func (o *Orchestrator) RunJobSearch(ctx context.Context, role, location string, numResults int) ([]listings.JobListing, error) {
	if _, err := o.searcher.Search(ctx, role, location, numResults); err != nil {
		return nil, err
	}
	return o.output.Read(ctx)
}

// RunEvaluation выполняет строго последовательный конвейер: извлечение
// требований, затем оценка резюме на выходе первого этапа. Сбой первого
// этапа терминален — второй этап не запускается. Сбой второго этапа
// терминален — уже вычисленный отчёт первого этапа отбрасывается,
// частичный результат не возвращается.
func (o *Orchestrator) RunEvaluation(ctx context.Context, jobTitle, jobDescription, resumeText string) (EvaluationResult, error) {
	runID := uuid.New()

	log.Printf("evaluation %s: extracting requirements for %q", runID, jobTitle)
	requirements, err := o.extractor.Extract(ctx, jobTitle, jobDescription)
	if err != nil {
		return EvaluationResult{}, err
	}

	log.Printf("evaluation %s: scoring resume", runID)
	evaluation, err := o.evaluator.Evaluate(ctx, requirements, resumeText)
	if err != nil {
		return EvaluationResult{}, err
	}

	log.Printf("evaluation %s: done", runID)
	return EvaluationResult{
		Requirements: requirements,
		Evaluation:   evaluation,
	}, nil
}
