// README: MCP content extraction and search-result formatting.
package gateway

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const maxOutputLen = 2000

// extractText joins the text blocks of an MCP result. Non-text content
// (images, resource links) is skipped so partial results still flow through.
func extractText(content []mcp.Content) string {
	var parts []string
	for _, item := range content {
		if tc, ok := item.(*mcp.TextContent); ok {
			parts = append(parts, tc.Text)
		}
	}
	return strings.Join(parts, "\n")
}

// formatOutput reshapes raw tool output for prompt context. Search tools tend
// to return a JSON array of {title, snippet} objects; those become a compact
// markdown list. Anything else passes through truncated to maxOutputLen.
func formatOutput(text string) string {
	trimmed := strings.TrimSpace(text)
	if strings.HasPrefix(trimmed, "[") {
		var items []map[string]any
		if err := json.Unmarshal([]byte(trimmed), &items); err == nil {
			var lines []string
			for i, item := range items {
				if i == 5 {
					break
				}
				title, _ := item["title"].(string)
				snippet, _ := item["snippet"].(string)
				if snippet == "" {
					snippet, _ = item["description"].(string)
				}
				lines = append(lines, fmt.Sprintf("- **%s**: %s", title, snippet))
			}
			if len(lines) > 0 {
				return strings.Join(lines, "\n")
			}
		}
	}
	if len(text) > maxOutputLen {
		return text[:maxOutputLen]
	}
	return text
}
