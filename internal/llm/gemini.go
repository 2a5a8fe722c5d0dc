// README: Gemini generation provider (alternate backend behind the Generator interface).
package llm

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiProvider implements Generator using Google's Gemini models. It exists
// for deployments without a local OpenAI-compatible runtime; selected with
// LLM_PROVIDER=gemini.
type GeminiProvider struct {
	client *genai.Client
	model  *genai.GenerativeModel
	logger *slog.Logger
}

// NewGeminiProvider initializes a new Gemini client.
// apiKey should be provided from environment variables.
func NewGeminiProvider(ctx context.Context, apiKey string, logger *slog.Logger) (*GeminiProvider, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel("gemini-2.0-flash")
	model.SetTemperature(0.7)

	return &GeminiProvider{client: client, model: model, logger: logger}, nil
}

// Close cleans up the Gemini client resources.
func (p *GeminiProvider) Close() {
	p.client.Close()
}

// Complete issues one GenerateContent call; failures degrade to the fallback.
func (p *GeminiProvider) Complete(ctx context.Context, req Request) GenerationResult {
	system, user := buildPrompts(req)

	// Gemini supports SystemInstruction, but a combined prompt keeps parity
	// with the OpenAI provider's rendering.
	fullPrompt := fmt.Sprintf("%s\n\n%s", system, user)

	resp, err := p.model.GenerateContent(ctx, genai.Text(fullPrompt))
	if err != nil {
		p.logger.Error("gemini generation failed", "err", err)
		return failedGeneration(req)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		p.logger.Error("gemini returned no candidates")
		return failedGeneration(req)
	}

	var text strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			text.WriteString(string(txt))
		}
	}
	if strings.TrimSpace(text.String()) == "" {
		return failedGeneration(req)
	}
	return GenerationResult{Text: text.String(), Succeeded: true}
}
