package cursor

import (
	"fmt"

	"github.com/dshills/textsubject/internal/engine/buffer"
)

// Position is an alias for buffer.Position for convenience.
type Position = buffer.Position

// Range is an alias for buffer.Range for convenience.
type Range = buffer.Range

// Selection represents a range of selected text.
// Anchor is where the selection started; Active is the moving end.
// When Anchor == Active, this represents a caret with no selection.
// Selection is an immutable value type.
type Selection struct {
	Anchor Position
	Active Position
}

// NewSelection creates a selection from anchor to active.
func NewSelection(anchor, active Position) Selection {
	return Selection{Anchor: anchor, Active: active}
}

// NewCaret creates a selection representing just a caret (no extent).
func NewCaret(p Position) Selection {
	return Selection{Anchor: p, Active: p}
}

// NewRangeSelection creates a forward selection covering the given range.
func NewRangeSelection(r Range) Selection {
	return Selection{Anchor: r.Start, Active: r.End}
}

// IsEmpty returns true if the selection has no extent.
func (s Selection) IsEmpty() bool {
	return s.Anchor.IsEqual(s.Active)
}

// Range returns the selection as a range (always Start <= End).
func (s Selection) Range() Range {
	return buffer.NewRange(s.Anchor, s.Active)
}

// Start returns the lower bound of the selection.
func (s Selection) Start() Position {
	return buffer.MinPosition(s.Anchor, s.Active)
}

// End returns the upper bound of the selection.
func (s Selection) End() Position {
	return buffer.MaxPosition(s.Anchor, s.Active)
}

// IsReversed returns true if the active end precedes the anchor.
func (s Selection) IsReversed() bool {
	return s.Active.Before(s.Anchor)
}

// Flip returns a selection with anchor and active swapped.
func (s Selection) Flip() Selection {
	return Selection{Anchor: s.Active, Active: s.Anchor}
}

// Normalize returns a forward selection (anchor <= active).
func (s Selection) Normalize() Selection {
	if s.IsReversed() {
		return s.Flip()
	}
	return s
}

// Overlaps returns true if this selection shares text with another.
// Two identical carets count as overlapping.
func (s Selection) Overlaps(other Selection) bool {
	if s.Range().IsEqual(other.Range()) {
		return true
	}
	return s.Start().Before(other.End()) && other.Start().Before(s.End())
}

// Merge merges two selections into one forward selection covering both.
func (s Selection) Merge(other Selection) Selection {
	return NewRangeSelection(s.Range().Union(other.Range()))
}

// String returns a string representation of the selection.
func (s Selection) String() string {
	if s.IsEmpty() {
		return fmt.Sprintf("Caret%s", s.Active)
	}
	dir := "→"
	if s.IsReversed() {
		dir = "←"
	}
	return fmt.Sprintf("Selection(%s%s%s)", s.Anchor, dir, s.Active)
}

// Equals returns true if two selections have the same anchor and active end.
func (s Selection) Equals(other Selection) bool {
	return s.Anchor.IsEqual(other.Anchor) && s.Active.IsEqual(other.Active)
}

// SameRange returns true if two selections cover the same range,
// regardless of direction.
func (s Selection) SameRange(other Selection) bool {
	return s.Range().IsEqual(other.Range())
}
