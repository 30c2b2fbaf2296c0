package subjectio

import (
	"iter"

	"github.com/dshills/textsubject/internal/engine/buffer"
)

// LineIO treats lines, without their indentation, as objects.
// Deleting and vertically swapping lines are left to the host editor.
type LineIO struct {
	base
}

// NewLineIO creates a line strategy.
func NewLineIO() *LineIO {
	s := &LineIO{}
	s.base = newBase(s, `(\n[\t ]*)+`, "\n")
	return s
}

// lineObject is line n from its first non-whitespace character to its end.
func lineObject(doc Document, n int) Range {
	l := doc.LineAt(n)
	return buffer.NewRangeAt(n, indentOf(l), n, l.Len())
}

// GetContainingObjectAt returns the line at pos.
func (s *LineIO) GetContainingObjectAt(doc Document, pos Position) (Range, bool) {
	if pos.Line < 0 || pos.Line >= doc.LineCount() {
		return Range{}, false
	}
	return lineObject(doc, pos.Line), true
}

// IterAll yields the non-blank lines in the iteration direction. With
// RestrictToCurrentScope it stops at the first line shallower than the
// starting one.
func (s *LineIO) IterAll(doc Document, opts IterationOptions) iter.Seq[Range] {
	return func(yield func(Range) bool) {
		start := opts.StartingPosition.Line
		indent := indentOf(doc.LineAt(start))
		for n := range lineSteps(doc, start, opts.Direction) {
			l := doc.LineAt(n)
			if l.IsEmptyOrWhitespace {
				continue
			}
			if opts.RestrictToCurrentScope && indentOf(l) < indent {
				return
			}
			r := lineObject(doc, n)
			if !opts.startsAfter(r.Start) {
				continue
			}
			if !opts.inBounds(r) || !yield(r) {
				return
			}
		}
	}
}

// IterVertically is IterAll.
func (s *LineIO) IterVertically(doc Document, opts IterationOptions) iter.Seq[Range] {
	return s.IterAll(doc, opts)
}

// IterHorizontally descends into (forwards) or climbs out of (backwards)
// nested indentation: each yielded line is strictly deeper, or strictly
// shallower, than the previous one.
func (s *LineIO) IterHorizontally(doc Document, opts IterationOptions) iter.Seq[Range] {
	return func(yield func(Range) bool) {
		start := opts.StartingPosition.Line
		origin := indentOf(doc.LineAt(start))
		current := origin
		for n := range lineSteps(doc, start, opts.Direction) {
			l := doc.LineAt(n)
			if n == start || l.IsEmptyOrWhitespace {
				continue
			}
			indent := indentOf(l)
			if opts.Direction == Forwards {
				if opts.RestrictToCurrentScope && indent < origin {
					return
				}
				if indent <= current {
					continue
				}
			} else if indent >= current {
				continue
			}
			current = indent

			r := lineObject(doc, n)
			if !opts.inBounds(r) || !yield(r) {
				return
			}
		}
	}
}

// IterScope yields the following lines at the starting line's indentation,
// stopping at the first differently indented line.
func (s *LineIO) IterScope(doc Document, opts IterationOptions) iter.Seq[Range] {
	return func(yield func(Range) bool) {
		start := opts.StartingPosition.Line
		indent := indentOf(doc.LineAt(start))
		for n := range lineSteps(doc, start, opts.Direction) {
			l := doc.LineAt(n)
			if n == start || l.IsEmptyOrWhitespace {
				continue
			}
			if indentOf(l) != indent {
				return
			}
			r := lineObject(doc, n)
			if !opts.inBounds(r) || !yield(r) {
				return
			}
		}
	}
}

// DeleteObject is not supported for lines.
func (s *LineIO) DeleteObject(Document, EditBuilder, Range) (Placement, error) {
	return Placement{}, ErrUseHostLineCommand
}

// SwapVertically is not supported for lines.
func (s *LineIO) SwapVertically(Document, EditBuilder, Direction, Range) (Placement, bool, error) {
	return Placement{}, false, ErrUseHostLineCommand
}
