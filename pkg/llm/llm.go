package llm

import (
	"context"
	"errors"
)

// ErrInvocationFailed covers every failure of a model call: transport
// errors, rejected requests, and empty responses. Callers never retry.
var ErrInvocationFailed = errors.New("model invocation failed")

// Agent is the static persona configuration that parameterises one kind of
// model call: a role label, a goal, a backstory and sampling parameters.
// Agents are package-level data, never built per request.
type Agent struct {
	Role            string
	Goal            string
	Backstory       string
	Model           string
	Temperature     float32
	Verbose         bool
	AllowDelegation bool
}

// Model is a minimal abstraction for persona-parameterised LLM calls.
// It intentionally hides concrete providers to preserve dependency
// direction; the returned text is opaque prose to every caller.
type Model interface {
	Invoke(ctx context.Context, agent Agent, prompt string) (string, error)
}
