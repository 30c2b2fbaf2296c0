package buffer

import "fmt"

// Range represents a span between two positions.
// Start is inclusive, End is exclusive: [Start, End).
// A Range built with NewRange is always start-ordered.
type Range struct {
	Start Position
	End   Position
}

// NewRange creates a start-ordered range from two positions.
func NewRange(a, b Position) Range {
	if b.Before(a) {
		a, b = b, a
	}
	return Range{Start: a, End: b}
}

// NewRangeAt creates a range from line/character coordinates.
func NewRangeAt(startLine, startChar, endLine, endChar int) Range {
	return NewRange(Position{startLine, startChar}, Position{endLine, endChar})
}

// EmptyRange returns a zero-width range at p.
func EmptyRange(p Position) Range {
	return Range{Start: p, End: p}
}

// String returns a human-readable representation of the range.
func (r Range) String() string {
	return fmt.Sprintf("[%s:%s)", r.Start, r.End)
}

// IsEmpty returns true if start equals end.
func (r Range) IsEmpty() bool {
	return r.Start.IsEqual(r.End)
}

// IsValid returns true if start <= end.
func (r Range) IsValid() bool {
	return r.Start.BeforeOrEqual(r.End)
}

// IsSingleLine returns true if the range spans only one line.
func (r Range) IsSingleLine() bool {
	return r.Start.Line == r.End.Line
}

// IsEqual returns true if both ranges cover the same span.
func (r Range) IsEqual(other Range) bool {
	return r.Start.IsEqual(other.Start) && r.End.IsEqual(other.End)
}

// Contains returns true if p lies within [Start, End].
// Both boundaries are included, matching host editor semantics.
func (r Range) Contains(p Position) bool {
	return p.AfterOrEqual(r.Start) && p.BeforeOrEqual(r.End)
}

// ContainsStrict returns true if p lies strictly inside (Start, End).
func (r Range) ContainsStrict(p Position) bool {
	return p.After(r.Start) && p.Before(r.End)
}

// ContainsRange returns true if other lies entirely within r.
func (r Range) ContainsRange(other Range) bool {
	return other.Start.AfterOrEqual(r.Start) && other.End.BeforeOrEqual(r.End)
}

// Union returns the smallest range that contains both ranges.
func (r Range) Union(other Range) Range {
	return Range{
		Start: MinPosition(r.Start, other.Start),
		End:   MaxPosition(r.End, other.End),
	}
}

// Intersection returns the overlap of two ranges.
// ok is false when the ranges do not touch.
func (r Range) Intersection(other Range) (Range, bool) {
	start := MaxPosition(r.Start, other.Start)
	end := MinPosition(r.End, other.End)
	if end.Before(start) {
		return Range{}, false
	}
	return Range{Start: start, End: end}, true
}

// WithStart returns a copy of r with a new start, re-ordered if needed.
func (r Range) WithStart(p Position) Range {
	return NewRange(p, r.End)
}

// WithEnd returns a copy of r with a new end, re-ordered if needed.
func (r Range) WithEnd(p Position) Range {
	return NewRange(r.Start, p)
}
