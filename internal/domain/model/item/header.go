package item

import "github.com/jwigmo/todotxt/internal/domain/model"

// Header represents a section-marker line of the form "# <title>"
type Header struct {
	id    model.ID
	title string
}

// NewHeader creates a new Header with a fresh identity
func NewHeader(title string) *Header {
	return &Header{
		id:    model.NewID(),
		title: title,
	}
}

// ReconstructHeader rebuilds a Header with an existing identity
func ReconstructHeader(id model.ID, title string) *Header {
	return &Header{
		id:    id,
		title: title,
	}
}

// ID returns the stable identity
func (h *Header) ID() model.ID { return h.id }

// Title returns the section title
func (h *Header) Title() string { return h.title }

// SetTitle updates the section title
func (h *Header) SetTitle(title string) {
	h.title = title
}

// Serialize returns the canonical text form: "# " followed by the title
func (h *Header) Serialize() string {
	return "# " + h.title
}

// WithID returns a copy of the header carrying the given identity
func (h *Header) WithID(id model.ID) Item {
	return ReconstructHeader(id, h.title)
}

func (h *Header) sealed() {}
