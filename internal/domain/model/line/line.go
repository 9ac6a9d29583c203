// Package line wraps one physical todo.txt line with its position and,
// when a recognizer matched, its parsed item.
package line

import (
	"github.com/jwigmo/todotxt/internal/domain/model"
	"github.com/jwigmo/todotxt/internal/domain/model/item"
)

// Line is a positional wrapper around one physical line. When an item is
// present it is authoritative for serialization; otherwise the original
// raw text (possibly empty) is reproduced verbatim.
type Line struct {
	id      model.ID
	number  int
	rawText string
	item    item.Item
}

// New creates a line holding both the original raw text and a parsed item
func New(number int, rawText string, it item.Item) Line {
	return Line{
		id:      model.NewID(),
		number:  number,
		rawText: rawText,
		item:    it,
	}
}

// NewRaw creates an opaque passthrough line
func NewRaw(number int, rawText string) Line {
	return New(number, rawText, nil)
}

// NewItem creates a line backed solely by a parsed item
func NewItem(number int, it item.Item) Line {
	return New(number, "", it)
}

// ID returns the stable identity of the line
func (l Line) ID() model.ID { return l.id }

// Number returns the 0-based position within the file
func (l Line) Number() int { return l.number }

// RawText returns the original text of the line
func (l Line) RawText() string { return l.rawText }

// Item returns the parsed item, or nil for a passthrough line
func (l Line) Item() item.Item { return l.item }

// WithNumber returns a copy at a new position, keeping identity and content
func (l Line) WithNumber(number int) Line {
	l.number = number
	return l
}

// WithItem returns a copy carrying the given item. The raw text slot is
// cleared: once an item occupies the line, it alone drives serialization.
func (l Line) WithItem(it item.Item) Line {
	l.item = it
	l.rawText = ""
	return l
}

// Serialize returns the text form of the line: the item when present,
// otherwise the original raw text unchanged
func (l Line) Serialize() string {
	if l.item != nil {
		return l.item.Serialize()
	}
	return l.rawText
}
