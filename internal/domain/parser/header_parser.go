package parser

import (
	"strings"

	"github.com/jwigmo/todotxt/internal/domain/model/item"
)

// HeaderParser recognizes section-marker lines of the form "# <title>".
// A bare "#" or a "#" without following whitespace does not match.
type HeaderParser struct{}

// NewHeaderParser creates a new HeaderParser
func NewHeaderParser() *HeaderParser {
	return &HeaderParser{}
}

// Parse returns a Header for a recognized section line, or nil
func (p *HeaderParser) Parse(lineText string) item.Item {
	m := patHeader.FindStringSubmatch(lineText)
	if m == nil {
		return nil
	}
	return item.NewHeader(strings.TrimSpace(m[1]))
}
