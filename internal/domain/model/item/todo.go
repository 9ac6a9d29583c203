package item

import (
	"strings"
	"time"

	"github.com/jwigmo/todotxt/internal/domain/model"
)

// DateLayout is the strict calendar format used by completion and due dates
const DateLayout = "2006-01-02"

// Todo represents a task line carrying completion state, an optional
// priority, optional project/tags/due/url/note metadata, and a title
type Todo struct {
	id             model.ID
	title          string
	isCompleted    bool
	completionDate *time.Time
	priority       *Priority
	project        *string
	tags           []string
	due            *time.Time
	url            *string
	note           *string
}

// NewTodo creates a new Todo with a fresh identity and no metadata
func NewTodo(title string) *Todo {
	return &Todo{
		id:    model.NewID(),
		title: title,
	}
}

// ReconstructTodo rebuilds a Todo with an existing identity and field values
func ReconstructTodo(
	id model.ID,
	title string,
	isCompleted bool,
	completionDate *time.Time,
	priority *Priority,
	project *string,
	tags []string,
	due *time.Time,
	url *string,
	note *string,
) *Todo {
	t := &Todo{
		id:             id,
		title:          title,
		isCompleted:    isCompleted,
		completionDate: completionDate,
		priority:       priority,
		project:        project,
		due:            due,
		url:            url,
		note:           note,
	}
	for _, tag := range tags {
		t.AddTag(tag)
	}
	return t
}

// ID returns the stable identity
func (t *Todo) ID() model.ID { return t.id }

// Title returns the task title
func (t *Todo) Title() string { return t.title }

// IsCompleted reports whether the task is marked done
func (t *Todo) IsCompleted() bool { return t.isCompleted }

// CompletionDate returns the completion date, or nil
func (t *Todo) CompletionDate() *time.Time { return t.completionDate }

// Priority returns the priority, or nil
func (t *Todo) Priority() *Priority { return t.priority }

// Project returns the project name, or nil
func (t *Todo) Project() *string { return t.project }

// Tags returns the tags in insertion order
func (t *Todo) Tags() []string {
	out := make([]string, len(t.tags))
	copy(out, t.tags)
	return out
}

// Due returns the due date, or nil
func (t *Todo) Due() *time.Time { return t.due }

// URL returns the url, or nil
func (t *Todo) URL() *string { return t.url }

// Note returns the note, or nil
func (t *Todo) Note() *string { return t.note }

// SetTitle updates the task title
func (t *Todo) SetTitle(title string) {
	t.title = title
}

// Complete marks the task done with an optional completion date
func (t *Todo) Complete(date *time.Time) {
	t.isCompleted = true
	t.completionDate = date
}

// SetCompletionDate assigns the completion date without touching the
// completion flag
func (t *Todo) SetCompletionDate(date *time.Time) {
	t.completionDate = date
}

// Reopen clears the completion state and date
func (t *Todo) Reopen() {
	t.isCompleted = false
	t.completionDate = nil
}

// SetPriority assigns a priority
func (t *Todo) SetPriority(p Priority) {
	t.priority = &p
}

// ClearPriority removes the priority
func (t *Todo) ClearPriority() {
	t.priority = nil
}

// SetProject assigns the project name
func (t *Todo) SetProject(project string) {
	t.project = &project
}

// ClearProject removes the project
func (t *Todo) ClearProject() {
	t.project = nil
}

// AddTag appends a tag, keeping insertion order and ignoring duplicates
func (t *Todo) AddTag(tag string) {
	for _, existing := range t.tags {
		if existing == tag {
			return
		}
	}
	t.tags = append(t.tags, tag)
}

// RemoveTag removes a tag if present
func (t *Todo) RemoveTag(tag string) {
	kept := make([]string, 0, len(t.tags))
	for _, existing := range t.tags {
		if existing != tag {
			kept = append(kept, existing)
		}
	}
	t.tags = kept
}

// SetDue assigns the due date
func (t *Todo) SetDue(due time.Time) {
	t.due = &due
}

// ClearDue removes the due date
func (t *Todo) ClearDue() {
	t.due = nil
}

// SetURL assigns the url
func (t *Todo) SetURL(url string) {
	t.url = &url
}

// ClearURL removes the url
func (t *Todo) ClearURL() {
	t.url = nil
}

// SetNote assigns the note
func (t *Todo) SetNote(note string) {
	t.note = &note
}

// ClearNote removes the note
func (t *Todo) ClearNote() {
	t.note = nil
}

// Serialize returns the canonical text form. Components appear
// space-separated in the exact inverse of extraction order:
// x, completion date, (priority), title, +project, @tags, due:, url:, note:""
func (t *Todo) Serialize() string {
	var components []string

	if t.isCompleted {
		components = append(components, "x")
	}
	if t.completionDate != nil {
		components = append(components, t.completionDate.Format(DateLayout))
	}
	if t.priority != nil {
		components = append(components, "("+t.priority.String()+")")
	}

	components = append(components, t.title)

	if t.project != nil {
		components = append(components, "+"+*t.project)
	}
	for _, tag := range t.tags {
		components = append(components, "@"+tag)
	}
	if t.due != nil {
		components = append(components, "due:"+t.due.Format(DateLayout))
	}
	if t.url != nil {
		components = append(components, "url:"+*t.url)
	}
	if t.note != nil {
		components = append(components, `note:"`+*t.note+`"`)
	}

	return strings.Join(components, " ")
}

// WithID returns a copy of the todo carrying the given identity
func (t *Todo) WithID(id model.ID) Item {
	return ReconstructTodo(
		id,
		t.title,
		t.isCompleted,
		t.completionDate,
		t.priority,
		t.project,
		t.Tags(),
		t.due,
		t.url,
		t.note,
	)
}

func (t *Todo) sealed() {}
