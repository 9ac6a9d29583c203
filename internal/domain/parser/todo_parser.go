package parser

import (
	"strings"
	"time"

	"github.com/jwigmo/todotxt/internal/domain/model/item"
)

// TodoParser recognizes task lines. Tokens are extracted left to right in
// a fixed order, each successful extraction shortening the working text;
// whatever remains, trimmed, becomes the title.
type TodoParser struct{}

// NewTodoParser creates a new TodoParser
func NewTodoParser() *TodoParser {
	return &TodoParser{}
}

// Parse returns a Todo for a recognized task line, or nil.
// Empty lines, indented lines (the convention's comment form) and lines
// starting with '#' are never task lines.
func (p *TodoParser) Parse(lineText string) item.Item {
	if lineText == "" {
		return nil
	}
	if strings.HasPrefix(lineText, " ") {
		return nil
	}
	if strings.HasPrefix(lineText, "#") {
		return nil
	}

	rest := strings.TrimLeft(lineText, " \t")

	isCompleted, rest := extractCompleted(rest)
	completionDate, rest := extractCompletionDate(rest)
	priority, rest := extractPriority(rest)
	project, rest := extractProject(rest)
	tags, rest := extractTags(rest)
	due, rest := extractDue(rest)
	url, rest := extractURL(rest)
	note, rest := extractNote(rest)
	title := strings.TrimSpace(rest)

	todo := item.NewTodo(title)
	if isCompleted {
		todo.Complete(completionDate)
	} else if completionDate != nil {
		// A bare leading date is extracted even without the "x" marker.
		todo.SetCompletionDate(completionDate)
	}
	if priority != nil {
		todo.SetPriority(*priority)
	}
	if project != nil {
		todo.SetProject(*project)
	}
	for _, tag := range tags {
		todo.AddTag(tag)
	}
	if due != nil {
		todo.SetDue(*due)
	}
	if url != nil {
		todo.SetURL(*url)
	}
	if note != nil {
		todo.SetNote(*note)
	}
	return todo
}

// extractCompleted consumes a leading "x" marker
func extractCompleted(text string) (bool, string) {
	_, rest, ok := cutFirst(text, patCompleted)
	return ok, rest
}

// extractCompletionDate consumes a leading date token. The extraction does
// not require the completion marker to have matched first. A token whose
// shape matches but whose calendar value does not parse is left in place.
func extractCompletionDate(text string) (*time.Time, string) {
	value, rest, ok := cutFirst(text, patCompletionDate)
	if !ok {
		return nil, text
	}
	t, err := time.Parse(item.DateLayout, strings.TrimSpace(value))
	if err != nil {
		return nil, text
	}
	return &t, rest
}

// extractPriority consumes a leading "(A)" token
func extractPriority(text string) (*item.Priority, string) {
	value, rest, ok := cutFirst(text, patPriority)
	if !ok {
		return nil, text
	}
	p, err := item.ParsePriority(value)
	if err != nil {
		return nil, text
	}
	return &p, rest
}

// extractProject keeps the first project name and removes every
// occurrence so later duplicates never leak into the title
func extractProject(text string) (*string, string) {
	values, rest := cutAll(text, patProject)
	if len(values) == 0 {
		return nil, text
	}
	return &values[0], rest
}

// extractTags captures every tag in order of appearance
func extractTags(text string) ([]string, string) {
	return cutAll(text, patTags)
}

// extractDue keeps the first due date and removes every occurrence.
// A calendar-invalid date yields no value but the token stays consumed.
func extractDue(text string) (*time.Time, string) {
	values, rest := cutAll(text, patDue)
	if len(values) == 0 {
		return nil, text
	}
	t, err := time.Parse(item.DateLayout, values[0])
	if err != nil {
		return nil, rest
	}
	return &t, rest
}

// extractURL keeps the first url and removes duplicates
func extractURL(text string) (*string, string) {
	values, rest := cutAll(text, patURL)
	if len(values) == 0 {
		return nil, text
	}
	return &values[0], rest
}

// extractNote keeps the first quoted note and removes duplicates
func extractNote(text string) (*string, string) {
	values, rest := cutAll(text, patNote)
	if len(values) == 0 {
		return nil, text
	}
	return &values[0], rest
}
