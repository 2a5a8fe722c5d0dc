// README: Generation provider contract shared by the OpenAI-compatible and Gemini backends.
package llm

import (
	"context"

	"trailhead/internal/gateway"
)

// Request carries everything a provider needs for one completion. Providers
// assemble the final prompt themselves via buildPrompts so both backends
// render tool context identically.
type Request struct {
	Preferences        Preferences
	DestinationContext string
	// Tools is rendered into the prompt in invocation order. Failed results
	// are skipped; their absence degrades the answer, not the call.
	Tools []gateway.ToolResult
}

// GenerationResult is a degraded-on-failure value: providers never return a
// transport error. When Succeeded is false, Text holds a fallback message the
// caller can still show.
type GenerationResult struct {
	Text      string `json:"text"`
	Succeeded bool   `json:"succeeded"`
}

// Generator produces one completion per call. Implementations make exactly
// one outbound request and must not retry.
type Generator interface {
	Complete(ctx context.Context, req Request) GenerationResult
}

// buildPrompts renders the system and user prompts for a request.
func buildPrompts(req Request) (system, user string) {
	var sections []ToolSection
	for _, t := range req.Tools {
		if !t.Succeeded || t.Output == "" {
			continue
		}
		sections = append(sections, ToolSection{Name: t.ToolName, Output: t.Output})
	}
	return SystemPrompt(), UserPrompt(req.Preferences, req.DestinationContext, sections)
}

func failedGeneration(req Request) GenerationResult {
	return GenerationResult{Text: Fallback(req.Preferences), Succeeded: false}
}
