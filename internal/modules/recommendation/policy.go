// README: Static policy table mapping request attributes to tool invocations.
package recommendation

import (
	"fmt"
	"strings"
)

// policyRule decides whether one tool runs for a request and with which
// arguments. Rules are evaluated and recorded in declaration order; that
// order is the contract for ToolResults in the persisted record.
type policyRule struct {
	Tool    string
	Matches func(PreferenceRequest) bool
	Args    func(PreferenceRequest) map[string]any
}

// outdoorKeywords trigger the search lookup. Derived from the interest
// categories the destination catalog knows about.
var outdoorKeywords = []string{
	"hik", "ski", "bik", "climb", "camp", "outdoor", "raft",
	"backpack", "snowboard", "fish", "adventure", "stargaz",
}

var policyTable = []policyRule{
	{
		Tool: "weather",
		// Any stated season is worth a live weather check.
		Matches: func(req PreferenceRequest) bool {
			return strings.TrimSpace(req.Season) != ""
		},
		Args: func(req PreferenceRequest) map[string]any {
			return map[string]any{"location": "Utah, United States"}
		},
	},
	{
		Tool: "search",
		Matches: func(req PreferenceRequest) bool {
			interests := strings.ToLower(req.Interests)
			for _, kw := range outdoorKeywords {
				if strings.Contains(interests, kw) {
					return true
				}
			}
			return false
		},
		Args: func(req PreferenceRequest) map[string]any {
			return map[string]any{
				"query":       fmt.Sprintf("Utah tourism %s %s travel tips", req.Interests, req.Season),
				"max_results": 5,
			}
		},
	},
}

// planTools returns the matching rules in policy-table order.
func planTools(req PreferenceRequest) []policyRule {
	var rules []policyRule
	for _, rule := range policyTable {
		if rule.Matches(req) {
			rules = append(rules, rule)
		}
	}
	return rules
}
