package subjectio

import (
	"iter"
	"slices"
	"unicode"
	"unicode/utf8"

	"github.com/dshills/textsubject/internal/engine/buffer"
)

// docEnd returns the position after the last character.
func docEnd(doc Document) Position {
	return doc.LineAt(doc.LineCount() - 1).Range.End
}

// docLen returns the document length in rune offsets.
func docLen(doc Document) int {
	return doc.OffsetAt(docEnd(doc))
}

// fullRange covers the whole document.
func fullRange(doc Document) Range {
	return Range{End: docEnd(doc)}
}

// isStopLine reports whether the line has no alphanumeric character.
// Blank lines are stop lines.
func isStopLine(l buffer.Line) bool {
	for _, r := range l.Text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// indentOf is the raw count of leading whitespace runes. Tabs and spaces
// count the same.
func indentOf(l buffer.Line) int {
	return l.FirstNonWhitespaceCharacterIndex
}

// indentText is the leading whitespace of l.
func indentText(l buffer.Line) string {
	return string([]rune(l.Text)[:indentOf(l)])
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}

// spanRange converts a column span on line n to a range.
func spanRange(n int, s Span) Range {
	return buffer.NewRangeAt(n, s.Start, n, s.End)
}

// lineSteps yields line numbers from start (inclusive) in dir.
func lineSteps(doc Document, start int, dir Direction) iter.Seq[int] {
	return func(yield func(int) bool) {
		if dir == Forwards {
			for n := max(start, 0); n < doc.LineCount(); n++ {
				if !yield(n) {
					return
				}
			}
			return
		}
		for n := min(start, doc.LineCount()-1); n >= 0; n-- {
			if !yield(n) {
				return
			}
		}
	}
}

// leftScope reports whether line n is a non-blank line shallower than
// indent, which ends the scope of a line at that indentation.
func leftScope(doc Document, n, indent int) bool {
	l := doc.LineAt(n)
	return !l.IsEmptyOrWhitespace && indentOf(l) < indent
}

// lineObjects lists the objects of one line in document order.
type lineObjects func(doc Document, n int) []Range

// iterByLine walks the per-line objects of a strategy in the iteration
// direction. With RestrictToCurrentScope only the starting line is walked.
func iterByLine(doc Document, opts IterationOptions, objects lineObjects) iter.Seq[Range] {
	return func(yield func(Range) bool) {
		first := opts.StartingPosition.Line
		for n := range lineSteps(doc, first, opts.Direction) {
			if opts.RestrictToCurrentScope && n != first {
				return
			}
			objs := objects(doc, n)
			if opts.Direction == Backwards {
				objs = slices.Clone(objs)
				slices.Reverse(objs)
			}
			for _, r := range objs {
				if !opts.startsAfter(r.Start) {
					continue
				}
				if !opts.inBounds(r) || !yield(r) {
					return
				}
			}
		}
	}
}

// iterByColumn yields, for every line after the starting one in the
// iteration direction, the object of that line closest to the starting
// column. Lines without objects are skipped. With RestrictToCurrentScope
// the walk stops at the first line shallower than the starting line.
func iterByColumn(doc Document, opts IterationOptions, objects lineObjects) iter.Seq[Range] {
	return func(yield func(Range) bool) {
		start := opts.StartingPosition
		indent := indentOf(doc.LineAt(start.Line))
		for n := range lineSteps(doc, start.Line, opts.Direction) {
			if n == start.Line {
				continue
			}
			if opts.RestrictToCurrentScope && leftScope(doc, n, indent) {
				return
			}
			r, ok := closestToColumn(objects(doc, n), start.Character)
			if !ok {
				continue
			}
			if !opts.inBounds(r) || !yield(r) {
				return
			}
		}
	}
}

// closestToColumn picks the single-line range nearest to col; the earlier
// range wins a tie.
func closestToColumn(objs []Range, col int) (Range, bool) {
	best, bestDist := Range{}, -1
	for _, r := range objs {
		d := 0
		switch {
		case col < r.Start.Character:
			d = r.Start.Character - col
		case col >= r.End.Character:
			d = col - r.End.Character + 1
		}
		if bestDist < 0 || d < bestDist {
			best, bestDist = r, d
		}
	}
	return best, bestDist >= 0
}

// objectsOnLine iterates the objects of the starting line only.
func objectsOnLine(doc Document, opts IterationOptions, objects lineObjects) iter.Seq[Range] {
	opts.RestrictToCurrentScope = true
	return iterByLine(doc, opts, objects)
}
