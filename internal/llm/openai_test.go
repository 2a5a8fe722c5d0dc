package llm

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"trailhead/internal/gateway"
	"trailhead/internal/logging"
)

func testRequest() Request {
	return Request{
		Preferences:        Preferences{Interests: "hiking", Duration: "3 days", Season: "fall", ActivityLevel: "moderate"},
		DestinationContext: "## Parks",
		Tools: []gateway.ToolResult{
			{ToolName: "weather", Output: "12C and clear", Succeeded: true},
		},
	}
}

func newOpenAIServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *OpenAIProvider) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	p := NewOpenAIProvider(srv.URL, "ai/llama3.2", "local-model-runner", 5*time.Second, logging.NewNop())
	return srv, p
}

func TestOpenAIComplete_Success(t *testing.T) {
	var captured chatRequest
	_, p := newOpenAIServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &captured)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"role": "assistant", "content": "## Recommended Destinations\nZion."}},
			},
		})
	})

	res := p.Complete(context.Background(), testRequest())
	if !res.Succeeded {
		t.Fatalf("expected success, got fallback: %q", res.Text)
	}
	if !strings.Contains(res.Text, "Zion") {
		t.Errorf("unexpected completion: %q", res.Text)
	}

	if captured.Model != "ai/llama3.2" {
		t.Errorf("unexpected model %q", captured.Model)
	}
	if len(captured.Messages) != 2 || captured.Messages[0].Role != "system" || captured.Messages[1].Role != "user" {
		t.Fatalf("expected system+user messages, got %+v", captured.Messages)
	}
	if !strings.Contains(captured.Messages[1].Content, "12C and clear") {
		t.Error("tool output missing from user prompt")
	}
	if !strings.Contains(captured.Messages[1].Content, "hiking") {
		t.Error("preferences missing from user prompt")
	}
}

func TestOpenAIComplete_APIFailureFallsBack(t *testing.T) {
	_, p := newOpenAIServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"message": "model not loaded"},
		})
	})

	res := p.Complete(context.Background(), testRequest())
	if res.Succeeded {
		t.Fatal("api error must degrade the result")
	}
	if !strings.Contains(res.Text, "temporarily unavailable") {
		t.Errorf("expected the fallback guide, got %q", res.Text)
	}
}

func TestOpenAIComplete_EmptyChoicesFallsBack(t *testing.T) {
	_, p := newOpenAIServer(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
	})

	if res := p.Complete(context.Background(), testRequest()); res.Succeeded {
		t.Fatal("empty choices must degrade the result")
	}
}

func TestOpenAIComplete_BlankCompletionFallsBack(t *testing.T) {
	_, p := newOpenAIServer(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"role": "assistant", "content": "   "}},
			},
		})
	})

	if res := p.Complete(context.Background(), testRequest()); res.Succeeded {
		t.Fatal("blank completion must degrade the result")
	}
}

func TestOpenAIComplete_UnreachableFallsBack(t *testing.T) {
	p := NewOpenAIProvider("http://127.0.0.1:1", "ai/llama3.2", "k", time.Second, logging.NewNop())
	res := p.Complete(context.Background(), testRequest())
	if res.Succeeded {
		t.Fatal("unreachable runtime must degrade the result")
	}
	if res.Text == "" {
		t.Error("fallback text must not be empty")
	}
}
