// README: OpenAI-compatible chat-completions provider (Docker Model Runner et al).
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// OpenAIProvider speaks the OpenAI chat-completions schema against a
// configured base URL. The model runtime is typically local, so the API key
// is a placeholder unless the endpoint demands a real one.
type OpenAIProvider struct {
	baseURL string
	model   string
	apiKey  string
	client  *http.Client
	logger  *slog.Logger
}

func NewOpenAIProvider(baseURL, model, apiKey string, timeout time.Duration, logger *slog.Logger) *OpenAIProvider {
	return &OpenAIProvider{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		model:   model,
		apiKey:  apiKey,
		// Model responses can take a while; the client timeout is the only
		// bound beyond context cancellation.
		client: &http.Client{Timeout: timeout},
		logger: logger,
	}
}

// Complete issues exactly one non-streaming chat-completion request. Any
// failure, malformed body, or empty completion degrades to the fallback text.
func (p *OpenAIProvider) Complete(ctx context.Context, req Request) GenerationResult {
	system, user := buildPrompts(req)

	text, err := p.call(ctx, system, user)
	if err != nil {
		p.logger.Error("generation failed", "model", p.model, "err", err)
		return failedGeneration(req)
	}
	if strings.TrimSpace(text) == "" {
		p.logger.Error("generation returned empty completion", "model", p.model)
		return failedGeneration(req)
	}
	p.logger.Info("generated recommendation", "model", p.model, "chars", len(text))
	return GenerationResult{Text: text, Succeeded: true}
}

func (p *OpenAIProvider) call(ctx context.Context, system, user string) (string, error) {
	reqBody, err := json.Marshal(chatRequest{
		Model: p.model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		Temperature: 0.7,
		MaxTokens:   2000,
	})
	if err != nil {
		return "", fmt.Errorf("llm: marshal request: %w", err)
	}

	endpoint := p.baseURL + "/chat/completions"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(reqBody))
	if err != nil {
		return "", fmt.Errorf("llm: build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := p.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("llm: do request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("llm: read response: %w", err)
	}

	var cr chatResponse
	if err := json.Unmarshal(body, &cr); err != nil {
		return "", fmt.Errorf("llm: unmarshal response: %w", err)
	}
	if cr.Error != nil {
		return "", fmt.Errorf("llm: api error: %s", cr.Error.Message)
	}
	if len(cr.Choices) == 0 {
		return "", fmt.Errorf("llm: API returned empty choices array (status %d)", resp.StatusCode)
	}
	return cr.Choices[0].Message.Content, nil
}
