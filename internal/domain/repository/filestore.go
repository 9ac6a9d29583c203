package repository

import "github.com/jwigmo/todotxt/internal/domain/model/line"

// FileStore abstracts loading and saving of the todo.txt file.
// Load and Save are atomic from the repository's perspective: they
// either fully succeed or fail with one of the errors in this package
// and leave no partial state visible. Retry policy, if any, belongs to
// the implementation.
type FileStore interface {
	// Load reads the file at path and returns the ordered line sequence
	Load(path string) ([]line.Line, error)

	// Save writes the line sequence to the previously loaded target
	Save(lines []line.Line) error
}
