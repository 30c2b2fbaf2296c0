package subjectio

import (
	"iter"

	"github.com/dshills/textsubject/internal/engine/buffer"
)

// CharIO treats single characters as objects. Positions are derived from
// document offsets, so a line break is a zero-width pseudo object rather
// than a one-character span.
type CharIO struct {
	base
}

// NewCharIO creates a character strategy.
func NewCharIO() *CharIO {
	s := &CharIO{}
	s.base = newBase(s, ``, "")
	return s
}

// charAt returns the character at offset. ok is false for line breaks and
// the document end.
func charAt(doc Document, offset int) (Range, bool) {
	p, q := doc.PositionAt(offset), doc.PositionAt(offset+1)
	if p.Line != q.Line || q.Character != p.Character+1 {
		return buffer.EmptyRange(p), false
	}
	return buffer.NewRange(p, q), true
}

// charsOnLine lists the characters of line n.
func charsOnLine(doc Document, n int) []Range {
	l := doc.LineAt(n)
	chars := make([]Range, l.Len())
	for i := range chars {
		chars[i] = buffer.NewRangeAt(n, i, n, i+1)
	}
	return chars
}

// GetContainingObjectAt returns the character at pos, or an empty range
// when pos is on a line break.
func (s *CharIO) GetContainingObjectAt(doc Document, pos Position) (Range, bool) {
	offset := doc.OffsetAt(pos)
	if offset >= docLen(doc) {
		return Range{}, false
	}
	r, _ := charAt(doc, offset)
	return r, true
}

// IterAll walks the document offset by offset, skipping line breaks.
// With RestrictToCurrentScope it stays on the starting line.
func (s *CharIO) IterAll(doc Document, opts IterationOptions) iter.Seq[Range] {
	return func(yield func(Range) bool) {
		at, end := doc.OffsetAt(opts.StartingPosition), docLen(doc)
		step := 1
		if opts.Direction == Backwards {
			step = -1
		}
		for offset := at; offset >= 0 && offset < end; offset += step {
			r, ok := charAt(doc, offset)
			if !ok || !opts.startsAfter(r.Start) {
				continue
			}
			if opts.RestrictToCurrentScope && r.Start.Line != opts.StartingPosition.Line {
				return
			}
			if !opts.inBounds(r) || !yield(r) {
				return
			}
		}
	}
}

// IterHorizontally is IterAll.
func (s *CharIO) IterHorizontally(doc Document, opts IterationOptions) iter.Seq[Range] {
	return s.IterAll(doc, opts)
}

// IterVertically yields the character nearest to the starting column on
// each following non-empty line.
func (s *CharIO) IterVertically(doc Document, opts IterationOptions) iter.Seq[Range] {
	return iterByColumn(doc, opts, charsOnLine)
}

// IterScope yields the characters of the starting line.
func (s *CharIO) IterScope(doc Document, opts IterationOptions) iter.Seq[Range] {
	return objectsOnLine(doc, opts, charsOnLine)
}
