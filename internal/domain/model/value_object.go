package model

import (
	"crypto/rand"
	"errors"
	"time"

	"github.com/oklog/ulid/v2"
)

// ID represents a stable identity for items and lines.
// An entity keeps its ID across field updates and repositioning;
// only its values and line number change.
type ID struct {
	value string
}

// NewID creates a new ID using ULID
// Format: ULID (e.g., 01JB6X8Y2K9FQR4T3VWHGP5M2C)
func NewID() ID {
	entropy := ulid.Monotonic(rand.Reader, 0)
	id := ulid.MustNew(ulid.Timestamp(time.Now()), entropy)
	return ID{value: id.String()}
}

// NewIDFromString creates an ID from an existing string
func NewIDFromString(id string) (ID, error) {
	if id == "" {
		return ID{}, errors.New("id cannot be empty")
	}
	return ID{value: id}, nil
}

// String returns the string representation
func (i ID) String() string {
	return i.value
}

// Equals checks if two IDs are equal
func (i ID) Equals(other ID) bool {
	return i.value == other.value
}

// IsZero reports whether the ID has not been assigned
func (i ID) IsZero() bool {
	return i.value == ""
}
