package item

import "fmt"

// Priority represents a todo priority symbol A (highest) through Z.
// Ordering is lexicographic by symbol.
type Priority string

const (
	PriorityA Priority = "A"
	PriorityB Priority = "B"
	PriorityC Priority = "C"
	PriorityD Priority = "D"
	PriorityE Priority = "E"
	PriorityF Priority = "F"
	PriorityG Priority = "G"
	PriorityH Priority = "H"
	PriorityI Priority = "I"
	PriorityJ Priority = "J"
	PriorityK Priority = "K"
	PriorityL Priority = "L"
	PriorityM Priority = "M"
	PriorityN Priority = "N"
	PriorityO Priority = "O"
	PriorityP Priority = "P"
	PriorityQ Priority = "Q"
	PriorityR Priority = "R"
	PriorityS Priority = "S"
	PriorityT Priority = "T"
	PriorityU Priority = "U"
	PriorityV Priority = "V"
	PriorityW Priority = "W"
	PriorityX Priority = "X"
	PriorityY Priority = "Y"
	PriorityZ Priority = "Z"
)

// ParsePriority converts a single uppercase letter into a Priority
func ParsePriority(s string) (Priority, error) {
	p := Priority(s)
	if !p.IsValid() {
		return "", fmt.Errorf("invalid priority %q: must be a single letter A-Z", s)
	}
	return p, nil
}

// IsValid validates the priority symbol
func (p Priority) IsValid() bool {
	return len(p) == 1 && p[0] >= 'A' && p[0] <= 'Z'
}

// Less reports whether p ranks higher than other (A sorts before B)
func (p Priority) Less(other Priority) bool {
	return p < other
}

// String returns the string representation
func (p Priority) String() string {
	return string(p)
}

// Priorities returns all priority symbols in rank order
func Priorities() []Priority {
	out := make([]Priority, 0, 26)
	for c := byte('A'); c <= 'Z'; c++ {
		out = append(out, Priority(c))
	}
	return out
}
