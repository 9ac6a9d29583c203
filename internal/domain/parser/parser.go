// Package parser implements the todo.txt line grammar: an ordered chain
// of mutually exclusive line recognizers plus the token extractors they
// are built on. Lines no recognizer accepts are preserved verbatim.
package parser

import (
	"strings"

	"github.com/jwigmo/todotxt/internal/domain/model/item"
	"github.com/jwigmo/todotxt/internal/domain/model/line"
)

// LineParser recognizes one line shape, returning nil when it does not match
type LineParser interface {
	Parse(lineText string) item.Item
}

// Chain offers each line to its parsers in order; the first match wins
type Chain struct {
	parsers []LineParser
}

// NewChain creates a chain from the given parsers
func NewChain(parsers ...LineParser) Chain {
	return Chain{parsers: parsers}
}

// DefaultChain returns the standard chain: headers before todos
func DefaultChain() Chain {
	return NewChain(NewHeaderParser(), NewTodoParser())
}

// ParseLine classifies a single line, returning nil for passthrough lines
func (c Chain) ParseLine(lineText string) item.Item {
	if lineText == "" {
		return nil
	}
	for _, p := range c.parsers {
		if it := p.Parse(lineText); it != nil {
			return it
		}
	}
	return nil
}

// ParseContent splits text into physical lines and classifies each one,
// producing the ordered line sequence with 0-based numbering.
// Empty input yields an empty sequence, not a single empty line.
func (c Chain) ParseContent(content string) []line.Line {
	if content == "" {
		return []line.Line{}
	}

	raw := strings.Split(content, "\n")
	lines := make([]line.Line, 0, len(raw))
	for i, text := range raw {
		lines = append(lines, line.New(i, text, c.ParseLine(text)))
	}
	return lines
}
