// README: Best-effort argument validation against a tool's declared schema.
package gateway

import (
	"encoding/json"
	"fmt"
)

// toolSchema is the subset of JSON Schema the gateway validation cares about.
// Extra arguments are deliberately not rejected; only missing required fields
// block the network call.
type toolSchema struct {
	Required []string `json:"required"`
}

func validateArgs(desc ToolDescriptor, args map[string]any) error {
	if len(desc.Schema) == 0 {
		return nil
	}
	var schema toolSchema
	if err := json.Unmarshal(desc.Schema, &schema); err != nil {
		// An unparseable schema is the gateway's problem, not the caller's.
		return nil
	}
	for _, field := range schema.Required {
		if _, ok := args[field]; !ok {
			return fmt.Errorf("tool %q: missing required argument %q", desc.Name, field)
		}
	}
	return nil
}
