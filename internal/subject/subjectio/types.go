package subjectio

import (
	"github.com/dshills/textsubject/internal/engine/buffer"
)

// Re-exported host vocabulary.
type (
	Position    = buffer.Position
	Range       = buffer.Range
	Document    = buffer.Document
	EditBuilder = buffer.EditBuilder
)

// Direction is the direction of an iteration.
type Direction uint8

const (
	Forwards Direction = iota
	Backwards
)

// Reverse returns the opposite direction.
func (d Direction) Reverse() Direction {
	if d == Forwards {
		return Backwards
	}
	return Forwards
}

// String returns the direction name.
func (d Direction) String() string {
	if d == Backwards {
		return "backwards"
	}
	return "forwards"
}

// IterationOptions is the query every iterator accepts.
type IterationOptions struct {
	StartingPosition Position
	Direction        Direction

	// CurrentInclusive admits an object starting exactly at
	// StartingPosition.
	CurrentInclusive bool

	// RestrictToCurrentScope stops the iteration once it leaves the scope
	// of the starting position. What a scope is depends on the strategy.
	RestrictToCurrentScope bool

	// Bounds, when set, stops the iteration at the first object that is
	// not inside it.
	Bounds *Range
}

// startsAfter reports whether an object starting at p lies beyond the
// starting position in the iteration direction.
func (o IterationOptions) startsAfter(p Position) bool {
	c := p.Compare(o.StartingPosition)
	if o.CurrentInclusive && c == 0 {
		return true
	}
	if o.Direction == Backwards {
		return c < 0
	}
	return c > 0
}

// inBounds reports whether r lies inside the optional bounds.
func (o IterationOptions) inBounds(r Range) bool {
	return o.Bounds == nil || o.Bounds.ContainsRange(r)
}

// Span is a column range inside one line.
type Span struct {
	Start int
	End   int
}

// SubTextRange is a classified run of text inside one line.
type SubTextRange struct {
	Text  string
	Range Span
}

// Placement is a span of the document after an edit, in rune offsets.
type Placement struct {
	Start int
	End   int
}

// Caret returns a zero-width placement at offset.
func Caret(offset int) Placement {
	return Placement{Start: offset, End: offset}
}

// Shift moves both ends of the placement by delta.
func (p Placement) Shift(delta int) Placement {
	return Placement{Start: p.Start + delta, End: p.End + delta}
}

// Resolve converts the placement to a range in doc.
func (p Placement) Resolve(doc Document) Range {
	return buffer.NewRange(doc.PositionAt(p.Start), doc.PositionAt(p.End))
}
