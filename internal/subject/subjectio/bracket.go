package subjectio

import (
	"iter"

	"github.com/dshills/textsubject/internal/engine/buffer"
)

// closers maps each opening bracket to its closing bracket.
var closers = map[rune]rune{
	'(': ')',
	'[': ']',
	'{': '}',
}

func isOpener(r rune) bool {
	_, ok := closers[r]
	return ok
}

func isCloser(r rune) bool {
	return r == ')' || r == ']' || r == '}'
}

// BracketIO treats matched bracket pairs as objects. Brackets of all kinds
// are counted together while matching, and a pair is only an object when
// both ends are of the same kind.
type BracketIO struct {
	base

	// inclusive makes objects include the brackets themselves.
	inclusive bool
}

// NewBracketIO creates a bracket strategy.
func NewBracketIO(inclusive bool) *BracketIO {
	s := &BracketIO{inclusive: inclusive}
	s.base = newBase(s, `[\s,;]*`, "")
	return s
}

// Inclusive reports whether objects include their brackets.
func (s *BracketIO) Inclusive() bool {
	return s.inclusive
}

// documentRunes returns the whole document, indexable by offset.
func documentRunes(doc Document) []rune {
	return []rune(doc.GetText(fullRange(doc)))
}

// getLeftBracket scans backwards from at for the opening bracket of the
// pair around at. A closer at at itself belongs to that pair and is not
// counted.
func getLeftBracket(text []rune, at int) (int, bool) {
	unmatched := 0
	for i := min(at, len(text)-1); i >= 0; i-- {
		switch r := text[i]; {
		case isCloser(r):
			if i != at {
				unmatched++
			}
		case isOpener(r):
			if unmatched == 0 {
				return i, true
			}
			unmatched--
		}
	}
	return 0, false
}

// getRightBracket scans forwards from at for the closing bracket of the
// pair around at. An opener at at itself is not counted.
func getRightBracket(text []rune, at int) (int, bool) {
	unmatched := 0
	for i := max(at, 0); i < len(text); i++ {
		switch r := text[i]; {
		case isOpener(r):
			if i != at {
				unmatched++
			}
		case isCloser(r):
			if unmatched == 0 {
				return i, true
			}
			unmatched--
		}
	}
	return 0, false
}

// enclosingOpener returns the opener of the pair around offset i,
// ignoring any bracket at i itself.
func enclosingOpener(text []rune, i int) (int, bool) {
	unmatched := 0
	for j := i - 1; j >= 0; j-- {
		switch r := text[j]; {
		case isCloser(r):
			unmatched++
		case isOpener(r):
			if unmatched == 0 {
				return j, true
			}
			unmatched--
		}
	}
	return 0, false
}

// pairAt resolves the pair around offset at.
func pairAt(text []rune, at int) (left, right int, ok bool) {
	left, ok = getLeftBracket(text, at)
	if !ok {
		return 0, 0, false
	}
	right, ok = getRightBracket(text, at)
	if !ok || closers[text[left]] != text[right] {
		return 0, 0, false
	}
	return left, right, true
}

// pairFrom resolves the pair opened at offset i.
func pairFrom(text []rune, i int) (int, bool) {
	if i < 0 || i >= len(text) || !isOpener(text[i]) {
		return 0, false
	}
	right, ok := getRightBracket(text, i)
	if !ok || closers[text[i]] != text[right] {
		return 0, false
	}
	return right, true
}

// object converts a pair of bracket offsets to an object range.
func (s *BracketIO) object(doc Document, left, right int) Range {
	if s.inclusive {
		right++
	} else {
		left++
	}
	return buffer.NewRange(doc.PositionAt(left), doc.PositionAt(right))
}

// GetContainingObjectAt returns the innermost same-kind pair around pos.
// Without delimiters, an opening bracket belongs to the enclosing pair.
func (s *BracketIO) GetContainingObjectAt(doc Document, pos Position) (Range, bool) {
	text := documentRunes(doc)
	at := doc.OffsetAt(pos)
	left, right, ok := pairAt(text, at)
	if ok && !s.inclusive && left == at {
		left, ok = enclosingOpener(text, at)
		if ok {
			right, ok = pairFrom(text, left)
		}
	}
	if !ok {
		return Range{}, false
	}
	return s.object(doc, left, right), true
}

// GetClosestObjectTo resolves the pair of the nearest bracket character.
// With no bracket in reach it returns an empty range at pos.
func (s *BracketIO) GetClosestObjectTo(doc Document, pos Position) (Range, bool) {
	text := documentRunes(doc)
	at := doc.OffsetAt(pos)
	isBracket := func(r rune) bool { return isOpener(r) || isCloser(r) }

	next, prev := -1, -1
	for i := at; i < len(text); i++ {
		if isBracket(text[i]) {
			next = i
			break
		}
	}
	for i := min(at, len(text)) - 1; i >= 0; i-- {
		if isBracket(text[i]) {
			prev = i
			break
		}
	}

	nearest := next
	if prev >= 0 && (next < 0 || at-prev <= next-at) {
		nearest = prev
	}
	if nearest >= 0 {
		if left, right, ok := pairAt(text, nearest); ok {
			return s.object(doc, left, right), true
		}
	}
	return buffer.EmptyRange(pos), true
}

// scan yields the pairs whose opener lies between lo and hi (inclusive) in
// the iteration direction. accept filters candidate openers.
func (s *BracketIO) scan(doc Document, text []rune, opts IterationOptions, lo, hi int, accept func(i int) bool) iter.Seq[Range] {
	return func(yield func(Range) bool) {
		at := doc.OffsetAt(opts.StartingPosition)
		i, step := max(at-1, lo), 1
		if opts.Direction == Backwards {
			i, step = min(at, hi), -1
		}
		for ; i >= lo && i <= hi && i < len(text); i += step {
			right, ok := pairFrom(text, i)
			if !ok || (accept != nil && !accept(i)) {
				continue
			}
			r := s.object(doc, i, right)
			if !opts.startsAfter(r.Start) {
				continue
			}
			if !opts.inBounds(r) || !yield(r) {
				return
			}
		}
	}
}

// IterAll yields every matched pair in the iteration direction. With
// RestrictToCurrentScope only pairs inside the pair around the starting
// position are considered.
func (s *BracketIO) IterAll(doc Document, opts IterationOptions) iter.Seq[Range] {
	text := documentRunes(doc)
	lo, hi := 0, len(text)-1
	if opts.RestrictToCurrentScope {
		if left, right, ok := pairAt(text, doc.OffsetAt(opts.StartingPosition)); ok {
			lo, hi = left+1, right-1
		}
	}
	return s.scan(doc, text, opts, lo, hi, nil)
}

// IterHorizontally is IterAll.
func (s *BracketIO) IterHorizontally(doc Document, opts IterationOptions) iter.Seq[Range] {
	return s.IterAll(doc, opts)
}

// IterVertically yields the pairs opening on other lines.
func (s *BracketIO) IterVertically(doc Document, opts IterationOptions) iter.Seq[Range] {
	return func(yield func(Range) bool) {
		for r := range s.IterAll(doc, opts) {
			if s.openerLine(doc, r) == opts.StartingPosition.Line {
				continue
			}
			if !yield(r) {
				return
			}
		}
	}
}

// openerLine is the line holding the opening bracket of r.
func (s *BracketIO) openerLine(doc Document, r Range) int {
	if s.inclusive {
		return r.Start.Line
	}
	return doc.PositionAt(doc.OffsetAt(r.Start) - 1).Line
}

// IterScope yields the sibling pairs that share the enclosing pair of the
// starting position.
func (s *BracketIO) IterScope(doc Document, opts IterationOptions) iter.Seq[Range] {
	text := documentRunes(doc)
	at := doc.OffsetAt(opts.StartingPosition)
	if !s.inclusive && at > 0 && at <= len(text) && isOpener(text[at-1]) {
		// The starting position is the inside of an object; its siblings
		// are found from the opener.
		at--
	}

	parent, hasParent := enclosingOpener(text, at)
	lo, hi := 0, len(text)-1
	if hasParent {
		right, ok := pairFrom(text, parent)
		if !ok {
			return func(func(Range) bool) {}
		}
		lo, hi = parent+1, right-1
	}

	return s.scan(doc, text, opts, lo, hi, func(i int) bool {
		p, ok := enclosingOpener(text, i)
		return ok == hasParent && p == parent
	})
}
