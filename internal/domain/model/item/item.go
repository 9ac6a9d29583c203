// Package item defines the closed set of entities a todo.txt line can
// carry: section headers and todos. Every consumer switches exhaustively
// over the two concrete types.
package item

import (
	"github.com/jwigmo/todotxt/internal/domain/model"
)

// Item is the common interface for the two line entities (Header, Todo).
// The variant is closed: only types in this package implement it.
type Item interface {
	// ID returns the stable identity of the item
	ID() model.ID

	// Title returns the item title
	Title() string

	// Serialize returns the canonical todo.txt text form
	Serialize() string

	// WithID returns a copy of the item carrying the given identity.
	// The repository uses it to keep identity stable across updates.
	WithID(id model.ID) Item

	// sealed marks the variant as closed
	sealed()
}
