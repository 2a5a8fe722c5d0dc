// README: Recommendation domain model.
package recommendation

import (
	"time"

	"trailhead/internal/gateway"
)

// PreferenceRequest is the user input for one recommendation cycle. It is
// immutable; only the copy embedded in the Record outlives the request.
type PreferenceRequest struct {
	Interests     string `json:"interests" form:"interests"`
	Duration      string `json:"duration" form:"duration"`
	Season        string `json:"season" form:"season"`
	ActivityLevel string `json:"activity_level" form:"activity_level"`
}

// Record is one completed recommendation cycle. Records are immutable after
// creation; history only reads them.
type Record struct {
	ID            string            `json:"id"`
	Request       PreferenceRequest `json:"request"`
	GeneratedText string            `json:"generated_text"`
	// Succeeded mirrors the generation outcome. When false, GeneratedText
	// holds the explicit fallback, never partial model output.
	Succeeded   bool                 `json:"succeeded"`
	ToolResults []gateway.ToolResult `json:"tool_results"`
	CreatedAt   time.Time            `json:"created_at"`
}
