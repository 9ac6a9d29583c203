package search

import "strings"

// Suggest returns the first option, in list order, not present in
// excluding, whose text contains the trimmed search term
// (case-insensitive substring). An empty trimmed term returns the first
// option regardless of the exclusion set; this mirrors the historical
// behavior callers rely on when a field is still blank.
func Suggest(searchTerm string, options []string, excluding []string) (string, bool) {
	cleaned := strings.TrimSpace(searchTerm)
	if cleaned == "" {
		if len(options) == 0 {
			return "", false
		}
		return options[0], true
	}

	needle := strings.ToLower(cleaned)
	for _, option := range options {
		if containsString(excluding, option) {
			continue
		}
		if strings.Contains(strings.ToLower(option), needle) {
			return option, true
		}
	}
	return "", false
}

// CompletionText returns the suffix of suggestion following the typed
// text, but only when suggestion starts with the typed text ignoring
// case; a mere substring match yields no completion.
func CompletionText(typedText, suggestion string) string {
	cleaned := strings.TrimSpace(typedText)
	if !strings.HasPrefix(strings.ToLower(suggestion), strings.ToLower(cleaned)) {
		return ""
	}
	return suggestion[len(cleaned):]
}

func containsString(list []string, s string) bool {
	for _, candidate := range list {
		if candidate == s {
			return true
		}
	}
	return false
}
