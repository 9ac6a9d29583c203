// Package search provides the substring filter and autocomplete helpers
// that operate over the repository's item view.
package search

import (
	"strings"

	"github.com/jwigmo/todotxt/internal/domain/model/item"
)

// Filter returns the items whose title, project, tags or note contain
// searchText, ignoring case. A search text that is empty after trimming
// returns the input slice unchanged.
func Filter(items []item.Item, searchText string) []item.Item {
	trimmed := strings.TrimSpace(searchText)
	if trimmed == "" {
		return items
	}

	needle := strings.ToLower(trimmed)
	matched := make([]item.Item, 0, len(items))
	for _, it := range items {
		if matches(it, needle) {
			matched = append(matched, it)
		}
	}
	return matched
}

// matches checks the title and, for todos, project, tags and note
func matches(it item.Item, needle string) bool {
	if strings.Contains(strings.ToLower(it.Title()), needle) {
		return true
	}

	todo, ok := it.(*item.Todo)
	if !ok {
		return false
	}

	if p := todo.Project(); p != nil && strings.Contains(strings.ToLower(*p), needle) {
		return true
	}
	for _, tag := range todo.Tags() {
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}
	if n := todo.Note(); n != nil && strings.Contains(strings.ToLower(*n), needle) {
		return true
	}
	return false
}
