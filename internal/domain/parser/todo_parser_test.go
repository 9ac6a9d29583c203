package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwigmo/todotxt/internal/domain/model/item"
	"github.com/jwigmo/todotxt/internal/domain/parser"
)

func parseTodo(t *testing.T, text string) *item.Todo {
	t.Helper()
	it := parser.NewTodoParser().Parse(text)
	require.NotNil(t, it)
	todo, ok := it.(*item.Todo)
	require.True(t, ok)
	return todo
}

func TestTodoParser_SimpleTodo(t *testing.T) {
	todo := parseTodo(t, "A simple todo")
	assert.Equal(t, "A simple todo", todo.Title())
	assert.False(t, todo.IsCompleted())
	assert.Nil(t, todo.Priority())
}

func TestTodoParser_Completed(t *testing.T) {
	todo := parseTodo(t, "x A completed todo")
	assert.True(t, todo.IsCompleted())
	assert.Nil(t, todo.CompletionDate())
	assert.Equal(t, "A completed todo", todo.Title())
}

func TestTodoParser_CompletedWithDate(t *testing.T) {
	todo := parseTodo(t, "x 2025-01-01 A completed todo")
	assert.True(t, todo.IsCompleted())
	require.NotNil(t, todo.CompletionDate())
	assert.Equal(t, "2025-01-01", todo.CompletionDate().Format(item.DateLayout))
	assert.Equal(t, "A completed todo", todo.Title())
}

func TestTodoParser_BareLeadingDate(t *testing.T) {
	// The date token is extracted even without the completion marker.
	todo := parseTodo(t, "2025-01-01 A todo")
	assert.False(t, todo.IsCompleted())
	require.NotNil(t, todo.CompletionDate())
	assert.Equal(t, "A todo", todo.Title())
}

func TestTodoParser_InvalidCalendarDateStaysInTitle(t *testing.T) {
	todo := parseTodo(t, "2025-13-45 A todo")
	assert.Nil(t, todo.CompletionDate())
	assert.Equal(t, "2025-13-45 A todo", todo.Title())
}

func TestTodoParser_Priority(t *testing.T) {
	todo := parseTodo(t, "(A) Prioritized todo")
	require.NotNil(t, todo.Priority())
	assert.Equal(t, item.PriorityA, *todo.Priority())
	assert.Equal(t, "Prioritized todo", todo.Title())
}

func TestTodoParser_LowercasePriorityNotExtracted(t *testing.T) {
	todo := parseTodo(t, "(a) Not prioritized")
	assert.Nil(t, todo.Priority())
	assert.Equal(t, "(a) Not prioritized", todo.Title())
}

func TestTodoParser_PriorityOnlyAtLineStart(t *testing.T) {
	todo := parseTodo(t, "Todo with (A) inside")
	assert.Nil(t, todo.Priority())
	assert.Equal(t, "Todo with (A) inside", todo.Title())
}

func TestTodoParser_Project(t *testing.T) {
	todo := parseTodo(t, "A todo +Work")
	require.NotNil(t, todo.Project())
	assert.Equal(t, "Work", *todo.Project())
	assert.Equal(t, "A todo", todo.Title())
}

func TestTodoParser_DuplicateProjectsFirstKept(t *testing.T) {
	todo := parseTodo(t, "A todo +Work something +Home")
	require.NotNil(t, todo.Project())
	assert.Equal(t, "Work", *todo.Project())
	assert.Equal(t, "A todo something", todo.Title())
}

func TestTodoParser_Tags(t *testing.T) {
	todo := parseTodo(t, "A todo @phone @waiting")
	assert.Equal(t, []string{"phone", "waiting"}, todo.Tags())
	assert.Equal(t, "A todo", todo.Title())
}

func TestTodoParser_DuplicateTagsDeduped(t *testing.T) {
	todo := parseTodo(t, "A todo @phone @phone @waiting")
	assert.Equal(t, []string{"phone", "waiting"}, todo.Tags())
}

func TestTodoParser_DueDate(t *testing.T) {
	todo := parseTodo(t, "A todo due:2025-06-30")
	require.NotNil(t, todo.Due())
	assert.Equal(t, "2025-06-30", todo.Due().Format(item.DateLayout))
	assert.Equal(t, "A todo", todo.Title())
}

func TestTodoParser_InvalidDueDateConsumed(t *testing.T) {
	// The token shape matches, so it leaves the title even though the
	// calendar value does not parse.
	todo := parseTodo(t, "A todo due:2025-13-45")
	assert.Nil(t, todo.Due())
	assert.Equal(t, "A todo", todo.Title())
}

func TestTodoParser_URL(t *testing.T) {
	todo := parseTodo(t, "A todo url:https://example.com/page?q=1")
	require.NotNil(t, todo.URL())
	assert.Equal(t, "https://example.com/page?q=1", *todo.URL())
	assert.Equal(t, "A todo", todo.Title())
}

func TestTodoParser_Note(t *testing.T) {
	todo := parseTodo(t, `A todo note:"call before noon"`)
	require.NotNil(t, todo.Note())
	assert.Equal(t, "call before noon", *todo.Note())
	assert.Equal(t, "A todo", todo.Title())
}

func TestTodoParser_UnterminatedNoteStaysInTitle(t *testing.T) {
	todo := parseTodo(t, `A todo note:"unterminated`)
	assert.Nil(t, todo.Note())
	assert.Equal(t, `A todo note:"unterminated`, todo.Title())
}

func TestTodoParser_AllComponents(t *testing.T) {
	todo := parseTodo(t, `x 2025-01-01 (B) Test todo +Project @tag1 @tag2 due:2025-01-01 url:https://example.com note:"This is a note"`)

	assert.True(t, todo.IsCompleted())
	require.NotNil(t, todo.CompletionDate())
	require.NotNil(t, todo.Priority())
	assert.Equal(t, item.PriorityB, *todo.Priority())
	require.NotNil(t, todo.Project())
	assert.Equal(t, "Project", *todo.Project())
	assert.Equal(t, []string{"tag1", "tag2"}, todo.Tags())
	require.NotNil(t, todo.Due())
	require.NotNil(t, todo.URL())
	require.NotNil(t, todo.Note())
	assert.Equal(t, "Test todo", todo.Title())
}

func TestTodoParser_RejectsNonTaskLines(t *testing.T) {
	p := parser.NewTodoParser()
	for _, text := range []string{
		"",
		" indented line",
		"  A comment",
		"# A header",
		"#NoSpace",
	} {
		assert.Nil(t, p.Parse(text), "input %q", text)
	}
}

func TestTodoParser_CompletedMarkerNeedsWhitespace(t *testing.T) {
	todo := parseTodo(t, "xylophone practice")
	assert.False(t, todo.IsCompleted())
	assert.Equal(t, "xylophone practice", todo.Title())
}

func TestTodoParser_RoundTrip(t *testing.T) {
	inputs := []string{
		"A simple todo",
		"x A completed todo",
		"x 2025-01-01 A completed todo",
		"(A) Prioritized todo",
		"A todo +Work",
		"A todo @phone @waiting",
		"A todo due:2025-06-30",
		`x 2025-01-01 (B) Test todo +Project @tag1 @tag2 due:2025-01-01 url:https://example.com note:"This is a note"`,
	}
	for _, input := range inputs {
		todo := parseTodo(t, input)
		assert.Equal(t, input, todo.Serialize(), "input %q", input)
	}
}
