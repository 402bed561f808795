package pipeline

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/artem13815/jobassist/pkg/listings"
	"github.com/artem13815/jobassist/pkg/llm"
)

// scriptedModel returns canned replies per persona role and records every call.
type scriptedModel struct {
	replies map[string]string // persona role -> reply
	errs    map[string]error  // persona role -> forced error
	calls   map[string]int
	prompts map[string]string // persona role -> last prompt seen
}

func newScriptedModel() *scriptedModel {
	return &scriptedModel{
		replies: map[string]string{},
		errs:    map[string]error{},
		calls:   map[string]int{},
		prompts: map[string]string{},
	}
}

func (m *scriptedModel) Invoke(_ context.Context, agent llm.Agent, prompt string) (string, error) {
	m.calls[agent.Role]++
	m.prompts[agent.Role] = prompt
	if err := m.errs[agent.Role]; err != nil {
		return "", err
	}
	return m.replies[agent.Role], nil
}

// slotSearcher writes a fixed payload to the output slot, like the real client.
type slotSearcher struct {
	out     listings.OutputStore
	returns []listings.JobListing
	writes  []listings.JobListing
	err     error
}

func (s *slotSearcher) Search(ctx context.Context, role, location string, numResults int) ([]listings.JobListing, error) {
	if s.err != nil {
		return nil, s.err
	}
	if err := s.out.Write(ctx, s.writes); err != nil {
		return nil, err
	}
	return s.returns, nil
}

type memoryOutput struct {
	jobs []listings.JobListing
	set  bool
	err  error
}

func (m *memoryOutput) Write(_ context.Context, jobs []listings.JobListing) error {
	m.jobs, m.set = jobs, true
	return nil
}

func (m *memoryOutput) Read(_ context.Context) ([]listings.JobListing, error) {
	if m.err != nil {
		return nil, m.err
	}
	if !m.set {
		return nil, listings.ErrMalformedOutput
	}
	return m.jobs, nil
}

func newTestOrchestrator(model llm.Model, searcher Searcher, out listings.OutputStore) *Orchestrator {
	return NewOrchestrator(
		searcher,
		out,
		NewRequirementExtractor(model, Researcher),
		NewResumeEvaluator(model, Evaluator),
	)
}

func TestRunEvaluationWiresStageOneIntoStageTwo(t *testing.T) {
	model := newScriptedModel()
	model.replies[Researcher.Role] = "REQ"
	model.replies[Evaluator.Role] = "EVAL"
	o := newTestOrchestrator(model, nil, nil)

	got, err := o.RunEvaluation(context.Background(), "Data Scientist", "desc", "resume text")
	require.NoError(t, err)
	require.Equal(t, EvaluationResult{Requirements: "REQ", Evaluation: "EVAL"}, got)

	// stage two's prompt must embed stage one's verbatim output
	require.Equal(t, 1, model.calls[Researcher.Role])
	require.Equal(t, 1, model.calls[Evaluator.Role])
	require.Contains(t, model.prompts[Evaluator.Role], "REQ")
	require.Contains(t, model.prompts[Evaluator.Role], "resume text")
}

func TestRunEvaluationStageOneFailureSkipsStageTwo(t *testing.T) {
	model := newScriptedModel()
	model.errs[Researcher.Role] = llm.ErrInvocationFailed
	o := newTestOrchestrator(model, nil, nil)

	_, err := o.RunEvaluation(context.Background(), "Data Scientist", "desc", "resume text")
	require.ErrorIs(t, err, llm.ErrInvocationFailed)
	require.Equal(t, 0, model.calls[Evaluator.Role], "stage two must never run after a stage-one failure")
}

func TestRunEvaluationStageTwoFailureDiscardsStageOne(t *testing.T) {
	model := newScriptedModel()
	model.replies[Researcher.Role] = "REQ"
	model.errs[Evaluator.Role] = llm.ErrInvocationFailed
	o := newTestOrchestrator(model, nil, nil)

	got, err := o.RunEvaluation(context.Background(), "Data Scientist", "desc", "resume text")
	require.ErrorIs(t, err, llm.ErrInvocationFailed)
	require.Zero(t, got, "no partial result on stage-two failure")
}

func TestRunEvaluationRejectsEmptyResume(t *testing.T) {
	model := newScriptedModel()
	model.replies[Researcher.Role] = "REQ"
	o := newTestOrchestrator(model, nil, nil)

	_, err := o.RunEvaluation(context.Background(), "Data Scientist", "desc", "   ")
	require.Error(t, err)
}

func TestRunJobSearchReturnsSlotContents(t *testing.T) {
	out := &memoryOutput{}
	direct := []listings.JobListing{{Role: "direct", Company: "N/A", Location: "N/A", Link: "#", Description: "No description available."}}
	stored := []listings.JobListing{{Role: "stored", Company: "N/A", Location: "N/A", Link: "#", Description: "No description available."}}
	o := newTestOrchestrator(newScriptedModel(), &slotSearcher{out: out, returns: direct, writes: stored}, out)

	got, err := o.RunJobSearch(context.Background(), "role", "loc", 5)
	require.NoError(t, err)
	// the response is what was last durably written, not the direct return
	require.Equal(t, stored, got)
}

func TestRunJobSearchPropagatesSearchFailure(t *testing.T) {
	out := &memoryOutput{}
	o := newTestOrchestrator(newScriptedModel(), &slotSearcher{out: out, err: listings.ErrUpstreamUnavailable}, out)

	_, err := o.RunJobSearch(context.Background(), "role", "loc", 5)
	require.ErrorIs(t, err, listings.ErrUpstreamUnavailable)
}

func TestRunJobSearchMalformedSlot(t *testing.T) {
	out := &memoryOutput{err: listings.ErrMalformedOutput}
	o := newTestOrchestrator(newScriptedModel(), &slotSearcher{out: &memoryOutput{}}, out)

	_, err := o.RunJobSearch(context.Background(), "role", "loc", 5)
	require.ErrorIs(t, err, listings.ErrMalformedOutput)
}

func TestPromptsCoverFixedSections(t *testing.T) {
	req := requirementsPrompt("Data Scientist", "job description")
	for _, want := range []string{
		"technical skills",
		"education and experience",
		"soft skills",
		"certifications",
		"emerging skills",
	} {
		if !strings.Contains(req, want) {
			t.Errorf("requirements prompt missing %q", want)
		}
	}

	eval := evaluationPrompt("REQ", "RESUME")
	for _, want := range []string{
		"Overall Score (out of 10)",
		"Match Assessment",
		"Strengths",
		"Weaknesses",
		"ATS Optimization Tips",
		"Improvement Recommendations",
	} {
		if !strings.Contains(eval, want) {
			t.Errorf("evaluation prompt missing %q", want)
		}
	}
}
