package subjectio

import (
	"iter"

	"github.com/dshills/textsubject/internal/engine/buffer"
	"github.com/dshills/textsubject/internal/subject/seq"
)

// BlockIO treats indentation blocks as objects: a header line together
// with the more-indented lines beneath it.
//
// A stop line (one without letters or digits) never starts a block, and a
// stop line at the header's indentation ends one.
type BlockIO struct {
	base
}

// NewBlockIO creates a block strategy.
func NewBlockIO() *BlockIO {
	s := &BlockIO{}
	s.base = newBase(s, `\s*`, "\n\n")
	return s
}

// lineIsBlockStart reports whether cur can start a block given the line
// before it. prev is nil for the first line.
func lineIsBlockStart(prev *buffer.Line, cur buffer.Line) bool {
	switch {
	case isStopLine(cur):
		return false
	case prev == nil || isStopLine(*prev):
		return true
	default:
		return indentOf(cur) > indentOf(*prev)
	}
}

// previousLine returns the line before n, or nil for the first line.
func previousLine(doc Document, n int) *buffer.Line {
	if n <= 0 {
		return nil
	}
	l := doc.LineAt(n - 1)
	return &l
}

// isHeader reports whether line n heads a block: it either owns a deeper
// body, or is a block start right after a stop line or at the top of the
// document. A line that is a block start only because it is deeper than its
// predecessor is a body line unless it has a deeper body of its own.
func isHeader(doc Document, n int) bool {
	cur := doc.LineAt(n)
	if isStopLine(cur) {
		return false
	}
	for m := n + 1; m < doc.LineCount(); m++ {
		next := doc.LineAt(m)
		if !next.IsEmptyOrWhitespace {
			if indentOf(next) > indentOf(cur) {
				return true
			}
			break
		}
	}
	prev := previousLine(doc, n)
	return lineIsBlockStart(prev, cur) && (prev == nil || isStopLine(*prev))
}

// blockEnd returns the last line of the block headed by line header.
// Trailing blank lines are not part of the block.
func blockEnd(doc Document, header int) int {
	indent := indentOf(doc.LineAt(header))
	last := header
	sawBody := false
	for n := header + 1; n < doc.LineCount(); n++ {
		l := doc.LineAt(n)
		if l.IsEmptyOrWhitespace {
			continue
		}
		switch lineIndent := indentOf(l); {
		case lineIndent < indent:
			return last
		case lineIndent > indent:
			sawBody = true
		case sawBody || isStopLine(l) || isHeader(doc, n):
			return last
		}
		last = n
	}
	return last
}

// blockRange is the range of the block headed by line header.
func blockRange(doc Document, header int) Range {
	last := doc.LineAt(blockEnd(doc, header))
	return buffer.NewRange(
		buffer.NewPosition(header, indentOf(doc.LineAt(header))),
		last.Range.End,
	)
}

// containingHeader finds the nearest header at or above pos whose block
// contains pos. Any indentation qualifies.
func containingHeader(doc Document, pos Position) (int, bool) {
	for h := min(pos.Line, doc.LineCount()-1); h >= 0; h-- {
		if isHeader(doc, h) && blockRange(doc, h).Contains(pos) {
			return h, true
		}
	}
	return 0, false
}

// GetContainingObjectAt returns the innermost block containing pos.
func (s *BlockIO) GetContainingObjectAt(doc Document, pos Position) (Range, bool) {
	if pos.Line < 0 || pos.Line >= doc.LineCount() {
		return Range{}, false
	}
	h, ok := containingHeader(doc, pos)
	if !ok {
		return Range{}, false
	}
	return blockRange(doc, h), true
}

// referenceIndent is the indentation iteration is measured against: the
// header of the block at the starting position, or the starting line.
func referenceIndent(doc Document, pos Position) int {
	if h, ok := containingHeader(doc, pos); ok {
		return indentOf(doc.LineAt(h))
	}
	return indentOf(doc.LineAt(pos.Line))
}

// headers yields the block headers in the iteration direction, applying
// the starting-position rule and the bounds. keep filters headers by
// indentation; stop ends the walk at a line.
func (s *BlockIO) headers(
	doc Document,
	opts IterationOptions,
	keep func(indent int) bool,
	stop func(l buffer.Line) bool,
) iter.Seq[Range] {
	first := opts.StartingPosition.Line
	lines := lineSteps(doc, first, opts.Direction)
	if stop != nil {
		lines = seq.TakeWhile(lines, func(n int) bool {
			return n == first || !stop(doc.LineAt(n))
		})
	}
	return func(yield func(Range) bool) {
		for n := range lines {
			if !isHeader(doc, n) || !keep(indentOf(doc.LineAt(n))) {
				continue
			}
			r := blockRange(doc, n)
			if !opts.startsAfter(r.Start) {
				continue
			}
			if !opts.inBounds(r) || !yield(r) {
				return
			}
		}
	}
}

// scopeStop ends a walk at the first non-blank line shallower than indent.
func scopeStop(indent int) func(buffer.Line) bool {
	return func(l buffer.Line) bool {
		return !l.IsEmptyOrWhitespace && indentOf(l) < indent
	}
}

// IterAll yields every block in the iteration direction. With
// RestrictToCurrentScope the walk ends where the current scope does.
func (s *BlockIO) IterAll(doc Document, opts IterationOptions) iter.Seq[Range] {
	var stop func(buffer.Line) bool
	if opts.RestrictToCurrentScope {
		stop = scopeStop(referenceIndent(doc, opts.StartingPosition))
	}
	return s.headers(doc, opts, func(int) bool { return true }, stop)
}

// IterHorizontally descends into deeper blocks (forwards) or climbs to
// enclosing ones (backwards). Each yielded block is strictly deeper, or
// strictly shallower, than the one before it.
func (s *BlockIO) IterHorizontally(doc Document, opts IterationOptions) iter.Seq[Range] {
	return func(yield func(Range) bool) {
		current := referenceIndent(doc, opts.StartingPosition)
		keep := func(indent int) bool {
			if opts.Direction == Forwards {
				return indent > current
			}
			return indent < current
		}
		for r := range s.headers(doc, opts, keep, nil) {
			current = r.Start.Character
			if !yield(r) {
				return
			}
		}
	}
}

// IterVertically yields sibling blocks at the same indentation. It crosses
// shallower lines unless RestrictToCurrentScope is set.
func (s *BlockIO) IterVertically(doc Document, opts IterationOptions) iter.Seq[Range] {
	indent := referenceIndent(doc, opts.StartingPosition)
	var stop func(buffer.Line) bool
	if opts.RestrictToCurrentScope {
		stop = scopeStop(indent)
	}
	return s.headers(doc, opts, func(i int) bool { return i == indent }, stop)
}

// IterScope yields sibling blocks inside the enclosing scope.
func (s *BlockIO) IterScope(doc Document, opts IterationOptions) iter.Seq[Range] {
	indent := referenceIndent(doc, opts.StartingPosition)
	return s.headers(doc, opts, func(i int) bool { return i == indent }, scopeStop(indent))
}

// DeleteObject removes the block through to the next sibling's start, else
// from the previous sibling's end, else just the block itself. Siblings
// overlapping obj are passed over.
func (s *BlockIO) DeleteObject(doc Document, edit EditBuilder, obj Range) (Placement, error) {
	r := obj
	opts := IterationOptions{StartingPosition: obj.Start, Direction: Forwards}
	next, ok := seq.Find(s.IterScope(doc, opts), func(b Range) bool {
		return obj.End.BeforeOrEqual(b.Start)
	})
	if ok {
		r = buffer.NewRange(obj.Start, next.Start)
	} else {
		opts.Direction = Backwards
		prev, ok := seq.Find(s.IterScope(doc, opts), func(b Range) bool {
			return b.End.BeforeOrEqual(obj.Start)
		})
		if ok {
			r = buffer.NewRange(prev.End, obj.End)
		}
	}
	edit.Delete(r)
	return Caret(doc.OffsetAt(r.Start)), nil
}
