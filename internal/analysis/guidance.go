package analysis

import "strings"

const maxSuggestions = 4

// Explain returns the fixed plain-language explanation for a clause type.
func Explain(t ClauseType) string {
	return profileFor(t).Explanation
}

// Suggest returns the negotiation suggestions for a clause type, extended by
// concern-driven extras and capped at four.
func Suggest(t ClauseType, concerns []string) []string {
	base := profileFor(t).Suggestions
	out := make([]string, 0, len(base)+2)
	out = append(out, base...)
	if anyContains(concerns, "perpetual") {
		out = append(out, "Replace indefinite terms with specific durations")
	}
	if anyContains(concerns, "exclusivity") {
		out = append(out, "Negotiate carve-outs from exclusivity requirements")
	}
	if len(out) > maxSuggestions {
		out = out[:maxSuggestions]
	}
	return out
}

func anyContains(items []string, substr string) bool {
	for _, s := range items {
		if strings.Contains(s, substr) {
			return true
		}
	}
	return false
}
