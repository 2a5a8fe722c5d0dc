package gateway

import (
	"strings"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func TestExtractText(t *testing.T) {
	content := []mcp.Content{
		&mcp.TextContent{Text: "first"},
		&mcp.ImageContent{MIMEType: "image/png", Data: []byte{0x1}},
		&mcp.TextContent{Text: "second"},
	}
	got := extractText(content)
	if got != "first\nsecond" {
		t.Errorf("unexpected extraction: %q", got)
	}
}

func TestFormatOutput_SearchJSON(t *testing.T) {
	raw := `[
		{"title": "Zion in Fall", "snippet": "Cooler temps, fewer crowds"},
		{"title": "Bryce Stargazing", "description": "Dark sky programs"}
	]`
	got := formatOutput(raw)
	want := "- **Zion in Fall**: Cooler temps, fewer crowds\n- **Bryce Stargazing**: Dark sky programs"
	if got != want {
		t.Errorf("formatOutput() = %q, want %q", got, want)
	}
}

func TestFormatOutput_LimitsSearchResults(t *testing.T) {
	var items []string
	for i := 0; i < 8; i++ {
		items = append(items, `{"title": "t", "snippet": "s"}`)
	}
	got := formatOutput("[" + strings.Join(items, ",") + "]")
	if n := strings.Count(got, "- **"); n != 5 {
		t.Errorf("expected 5 formatted results, got %d", n)
	}
}

func TestFormatOutput_TruncatesLongText(t *testing.T) {
	long := strings.Repeat("x", maxOutputLen+500)
	if got := formatOutput(long); len(got) != maxOutputLen {
		t.Errorf("expected truncation to %d chars, got %d", maxOutputLen, len(got))
	}
}

func TestFormatOutput_PassthroughPlainText(t *testing.T) {
	plain := "Currently 12C with clear skies"
	if got := formatOutput(plain); got != plain {
		t.Errorf("plain text must pass through unchanged, got %q", got)
	}
}
