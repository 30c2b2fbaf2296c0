package buffer

import (
	"fmt"
	"sync/atomic"
)

// Position is a line and character location in a document.
// Both Line and Character are 0-indexed; Character counts runes.
// Position is an immutable value type.
type Position struct {
	Line      int // 0-indexed line number
	Character int // 0-indexed rune column within the line
}

// NewPosition creates a position.
func NewPosition(line, character int) Position {
	return Position{Line: line, Character: character}
}

// String returns a human-readable representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("(%d:%d)", p.Line, p.Character)
}

// Compare returns -1 if p < other, 0 if p == other, 1 if p > other.
func (p Position) Compare(other Position) int {
	if p.Line < other.Line {
		return -1
	}
	if p.Line > other.Line {
		return 1
	}
	if p.Character < other.Character {
		return -1
	}
	if p.Character > other.Character {
		return 1
	}
	return 0
}

// Before returns true if p comes before other.
func (p Position) Before(other Position) bool {
	return p.Compare(other) < 0
}

// BeforeOrEqual returns true if p comes before or equals other.
func (p Position) BeforeOrEqual(other Position) bool {
	return p.Compare(other) <= 0
}

// After returns true if p comes after other.
func (p Position) After(other Position) bool {
	return p.Compare(other) > 0
}

// AfterOrEqual returns true if p comes after or equals other.
func (p Position) AfterOrEqual(other Position) bool {
	return p.Compare(other) >= 0
}

// IsEqual returns true if both positions point at the same location.
func (p Position) IsEqual(other Position) bool {
	return p.Line == other.Line && p.Character == other.Character
}

// Translate returns a position shifted by the given line and character deltas.
// Negative results are clamped to zero.
func (p Position) Translate(lineDelta, characterDelta int) Position {
	return Position{
		Line:      max(0, p.Line+lineDelta),
		Character: max(0, p.Character+characterDelta),
	}
}

// WithCharacter returns a position on the same line at the given column.
func (p Position) WithCharacter(character int) Position {
	return Position{Line: p.Line, Character: character}
}

// MinPosition returns the earlier of two positions.
func MinPosition(a, b Position) Position {
	if a.Before(b) {
		return a
	}
	return b
}

// MaxPosition returns the later of two positions.
func MaxPosition(a, b Position) Position {
	if a.After(b) {
		return a
	}
	return b
}

// RevisionID uniquely identifies a buffer revision.
// Each modification to the buffer creates a new revision.
type RevisionID uint64

var revisionCounter uint64

// NewRevisionID generates a new unique revision ID.
func NewRevisionID() RevisionID {
	return RevisionID(atomic.AddUint64(&revisionCounter, 1))
}
