// Package repository owns the ordered todo.txt line sequence and its
// structural invariants: after every mutation line numbers are contiguous
// from 0, item identities are stable across updates, and the relative
// order of untouched lines is preserved.
package repository

import (
	"fmt"
	"sort"

	"github.com/jwigmo/todotxt/internal/domain/model"
	"github.com/jwigmo/todotxt/internal/domain/model/item"
	"github.com/jwigmo/todotxt/internal/domain/model/line"
)

// TodoRepository is the exclusive owner of the line sequence. It is not
// safe for concurrent mutation; callers serialize access externally.
type TodoRepository struct {
	fileStore   FileStore
	lines       []line.Line
	currentPath string
}

// NewTodoRepository creates a repository backed by the given file store
func NewTodoRepository(fileStore FileStore) *TodoRepository {
	return &TodoRepository{fileStore: fileStore}
}

// LoadFile replaces the sequence with the contents of the file at path
func (r *TodoRepository) LoadFile(path string) error {
	lines, err := r.fileStore.Load(path)
	if err != nil {
		return err
	}
	r.lines = lines
	r.currentPath = path
	return nil
}

// SaveFile writes the sequence back to the loaded file.
// Fails when no target has been bound by a prior LoadFile.
func (r *TodoRepository) SaveFile() error {
	return r.fileStore.Save(r.Lines())
}

// CurrentPath returns the path of the loaded file, or ""
func (r *TodoRepository) CurrentPath() string {
	return r.currentPath
}

// Lines returns a copy of the ordered line sequence
func (r *TodoRepository) Lines() []line.Line {
	out := make([]line.Line, len(r.lines))
	copy(out, r.lines)
	return out
}

// Len returns the number of lines in the sequence
func (r *TodoRepository) Len() int {
	return len(r.lines)
}

// AddItem appends a new item line at the end of the sequence
func (r *TodoRepository) AddItem(it item.Item) {
	r.lines = append(r.lines, line.NewItem(len(r.lines), it))
}

// AddItemAt inserts a new item line at index when it falls within the
// current bounds, shifting and renumbering subsequent lines; any other
// index appends.
func (r *TodoRepository) AddItemAt(it item.Item, index int) {
	if index < 0 || index >= len(r.lines) {
		r.AddItem(it)
		return
	}
	r.lines = append(r.lines, line.Line{})
	copy(r.lines[index+1:], r.lines[index:])
	r.lines[index] = line.NewItem(index, it)
	r.renumber()
}

// UpdateItem replaces the item carrying the given identity in place.
// The position is kept, the raw text slot is cleared, and the new item
// adopts the existing identity.
func (r *TodoRepository) UpdateItem(id model.ID, it item.Item) error {
	index := r.indexOfItem(id)
	if index < 0 {
		return fmt.Errorf("update item %s: %w", id, ErrUnknownIdentity)
	}
	r.lines[index] = r.lines[index].WithItem(it.WithID(id))
	return nil
}

// RemoveItem removes the line whose item carries the given identity and
// renumbers the remaining lines
func (r *TodoRepository) RemoveItem(id model.ID) error {
	index := r.indexOfItem(id)
	if index < 0 {
		return fmt.Errorf("remove item %s: %w", id, ErrUnknownIdentity)
	}
	r.lines = append(r.lines[:index], r.lines[index+1:]...)
	r.renumber()
	return nil
}

// MoveItem removes the line at from and reinserts it at to, then
// renumbers. from must be an existing index; to may equal the sequence
// length, meaning move to the end.
func (r *TodoRepository) MoveItem(from, to int) error {
	if from < 0 || from >= len(r.lines) {
		return fmt.Errorf("move from %d: %w", from, ErrInvalidIndex)
	}
	if to < 0 || to > len(r.lines) {
		return fmt.Errorf("move to %d: %w", to, ErrInvalidIndex)
	}

	moved := r.lines[from]
	r.lines = append(r.lines[:from], r.lines[from+1:]...)
	if to > len(r.lines) {
		to = len(r.lines)
	}
	r.lines = append(r.lines, line.Line{})
	copy(r.lines[to+1:], r.lines[to:])
	r.lines[to] = moved
	r.renumber()
	return nil
}

// Items returns every parsed item in sequence order
func (r *TodoRepository) Items() []item.Item {
	var items []item.Item
	for _, l := range r.lines {
		if it := l.Item(); it != nil {
			items = append(items, it)
		}
	}
	return items
}

// AllProjects returns the unique todo project names, case-sensitive, sorted
func (r *TodoRepository) AllProjects() []string {
	seen := make(map[string]struct{})
	var projects []string
	for _, it := range r.Items() {
		todo, ok := it.(*item.Todo)
		if !ok || todo.Project() == nil {
			continue
		}
		name := *todo.Project()
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		projects = append(projects, name)
	}
	sort.Strings(projects)
	return projects
}

// AllTags returns the unique tags across every todo, flattened and sorted
func (r *TodoRepository) AllTags() []string {
	seen := make(map[string]struct{})
	var tags []string
	for _, it := range r.Items() {
		todo, ok := it.(*item.Todo)
		if !ok {
			continue
		}
		for _, tag := range todo.Tags() {
			if _, dup := seen[tag]; dup {
				continue
			}
			seen[tag] = struct{}{}
			tags = append(tags, tag)
		}
	}
	sort.Strings(tags)
	return tags
}

// indexOfItem finds the line whose item carries id, or -1
func (r *TodoRepository) indexOfItem(id model.ID) int {
	for i, l := range r.lines {
		if it := l.Item(); it != nil && it.ID().Equals(id) {
			return i
		}
	}
	return -1
}

// renumber resets every line number to its positional index
func (r *TodoRepository) renumber() {
	for i := range r.lines {
		r.lines[i] = r.lines[i].WithNumber(i)
	}
}
