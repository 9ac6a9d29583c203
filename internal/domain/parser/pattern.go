package parser

import "regexp"

// Token patterns of the todo.txt line grammar. The head-anchored patterns
// match only at the start of the remaining text; the others match at the
// start of the text or after whitespace, and the matched span (including
// that whitespace) is removed from the working text on extraction.
var (
	patCompleted      = regexp.MustCompile(`^x\s+`)
	patCompletionDate = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}\s+`)
	patPriority       = regexp.MustCompile(`^\(([A-Z])\)\s?`)
	patProject        = regexp.MustCompile(`(?:^|\s)\+([A-Za-z0-9-]+)`)
	patTags           = regexp.MustCompile(`(?:^|\s)@([A-Za-z0-9-]+)`)
	patDue            = regexp.MustCompile(`(?:^|\s)due:(\d{4}-\d{2}-\d{2})`)
	patURL            = regexp.MustCompile(`(?:^|\s)url:(\S+)`)
	patNote           = regexp.MustCompile(`(?:^|\s)note:"([^"]+)"`)

	patHeader = regexp.MustCompile(`^#\s+(.+)$`)
)

// cutFirst applies pat once. It returns the first capture group (or the
// trimmed full match when the pattern has no group), the text with the
// matched span removed, and whether a match was found.
func cutFirst(text string, pat *regexp.Regexp) (value, rest string, ok bool) {
	m := pat.FindStringSubmatchIndex(text)
	if m == nil {
		return "", text, false
	}
	if len(m) > 2 && m[2] >= 0 {
		value = text[m[2]:m[3]]
	} else {
		value = text[m[0]:m[1]]
	}
	return value, text[:m[0]] + text[m[1]:], true
}

// cutAll repeatedly applies pat from the start of the text, collecting
// every capture in order of appearance and removing every matched span.
func cutAll(text string, pat *regexp.Regexp) ([]string, string) {
	var values []string
	for {
		m := pat.FindStringSubmatchIndex(text)
		if m == nil {
			return values, text
		}
		values = append(values, text[m[2]:m[3]])
		text = text[:m[0]] + text[m[1]:]
	}
}
