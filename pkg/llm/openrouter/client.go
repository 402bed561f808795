package openrouter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/artem13815/jobassist/pkg/llm"
)

// Client is a minimal OpenRouter (OpenAI-compatible) chat completions client.
// The persona supplies the system message and sampling parameters per call.
type Client struct {
	APIKey       string
	BaseURL      string
	DefaultModel string
	AppTitle     string
	Referer      string
	httpDo       *http.Client
}

func New(apiKey, baseURL, defaultModel, appTitle, referer string) *Client {
	if baseURL == "" {
		baseURL = "https://openrouter.ai/api/v1"
	}
	return &Client{
		APIKey:       apiKey,
		BaseURL:      baseURL,
		DefaultModel: defaultModel,
		AppTitle:     appTitle,
		Referer:      referer,
		httpDo: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionsRequest struct {
	Model       string    `json:"model"`
	Messages    []message `json:"messages"`
	Temperature float32   `json:"temperature,omitempty"`
	MaxTokens   int       `json:"max_tokens,omitempty"`
}

type chatChoice struct {
	Index   int `json:"index"`
	Message struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"message"`
	FinishReason string `json:"finish_reason"`
}

type chatCompletionsResponse struct {
	ID      string       `json:"id"`
	Object  string       `json:"object"`
	Created int64        `json:"created"`
	Model   string       `json:"model"`
	Choices []chatChoice `json:"choices"`
}

// systemMessage renders the persona into a system prompt.
func systemMessage(agent llm.Agent) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "You are %s.\n", agent.Role)
	if agent.Goal != "" {
		fmt.Fprintf(&sb, "Your goal: %s\n", agent.Goal)
	}
	if agent.Backstory != "" {
		fmt.Fprintf(&sb, "Background: %s\n", agent.Backstory)
	}
	return strings.TrimSpace(sb.String())
}

// Invoke sends the prompt under the given persona and returns the model reply.
// Every failure mode is reported as llm.ErrInvocationFailed; no retries.
func (c *Client) Invoke(ctx context.Context, agent llm.Agent, prompt string) (string, error) {
	if c.APIKey == "" {
		return "", fmt.Errorf("%w: openrouter api key is empty", llm.ErrInvocationFailed)
	}
	model := agent.Model
	if model == "" {
		model = c.DefaultModel
	}
	if model == "" {
		model = "openai/gpt-4-turbo-preview"
	}
	reqBody := chatCompletionsRequest{
		Model: model,
		Messages: []message{
			{Role: "system", Content: systemMessage(agent)},
			{Role: "user", Content: prompt},
		},
		Temperature: agent.Temperature,
	}
	data, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	endpoint := fmt.Sprintf("%s/chat/completions", c.BaseURL)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.APIKey)
	if c.Referer != "" {
		httpReq.Header.Set("HTTP-Referer", c.Referer)
	}
	if c.AppTitle != "" {
		httpReq.Header.Set("X-Title", c.AppTitle)
	}

	resp, err := c.httpDo.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("%w: %v", llm.ErrInvocationFailed, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errMap map[string]any
		_ = json.NewDecoder(resp.Body).Decode(&errMap)
		return "", fmt.Errorf("%w: openrouter http %d: %v", llm.ErrInvocationFailed, resp.StatusCode, errMap)
	}
	var out chatCompletionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("%w: decode response: %v", llm.ErrInvocationFailed, err)
	}
	if len(out.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices returned by model", llm.ErrInvocationFailed)
	}
	content := strings.TrimSpace(out.Choices[0].Message.Content)
	if content == "" {
		return "", fmt.Errorf("%w: empty completion", llm.ErrInvocationFailed)
	}
	return content, nil
}
