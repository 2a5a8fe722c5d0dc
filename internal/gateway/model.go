// README: Tool gateway wire-facing types.
package gateway

import "encoding/json"

// ToolDescriptor is one discovered gateway capability.
type ToolDescriptor struct {
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Schema      json.RawMessage `json:"schema,omitempty"`
}

// ToolResult is the outcome of a single tool invocation. Invoke never fails
// with an error; transport and protocol problems surface as Succeeded=false
// with an explanatory Output so callers have no failure branch to handle.
type ToolResult struct {
	ToolName  string            `json:"tool_name"`
	Arguments map[string]string `json:"arguments,omitempty"`
	Output    string            `json:"output"`
	Succeeded bool              `json:"succeeded"`
}

func failedResult(name string, args map[string]any, msg string) ToolResult {
	return ToolResult{ToolName: name, Arguments: stringifyArgs(args), Output: msg, Succeeded: false}
}
