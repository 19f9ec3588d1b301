package validators

import "strings"

// SanitizeString collapses runs of whitespace and truncates to maxLen runes,
// so multi-byte food names are never cut mid-character. maxLen <= 0 disables
// truncation.
func SanitizeString(input string, maxLen int) string {
	cleaned := strings.Join(strings.Fields(input), " ")
	if maxLen <= 0 {
		return cleaned
	}
	runes := []rune(cleaned)
	if len(runes) <= maxLen {
		return cleaned
	}
	return strings.TrimSpace(string(runes[:maxLen]))
}
