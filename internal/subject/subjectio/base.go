package subjectio

import (
	"iter"
	"regexp"
	"strings"

	"golang.org/x/text/cases"

	"github.com/dshills/textsubject/internal/engine/buffer"
	"github.com/dshills/textsubject/internal/subject/seq"
)

// base holds the algorithms shared by all strategies. They are written
// against self so a strategy's own primitives and overrides are used.
type base struct {
	self SubjectIO

	// separators must match the whole of a separating text for it to be
	// removed or reused with its object.
	separators       *regexp.Regexp
	defaultSeparator string
}

func newBase(self SubjectIO, separators, defaultSeparator string) base {
	return base{
		self:             self,
		separators:       regexp.MustCompile(anchor(separators)),
		defaultSeparator: defaultSeparator,
	}
}

// anchor wraps a pattern so it has to match a whole string.
func anchor(pattern string) string {
	return `^(?:` + pattern + `)$`
}

// setSeparators replaces the separator pattern.
func (b *base) setSeparators(re *regexp.Regexp) {
	b.separators = re
}

// GetClosestObjectTo returns the nearer of the first objects before and
// after pos. A tie goes to the object before.
func (b *base) GetClosestObjectTo(doc Document, pos Position) (Range, bool) {
	opts := IterationOptions{StartingPosition: pos, Direction: Forwards}
	next, nextOK := seq.First(b.self.IterAll(doc, opts))
	opts.Direction = Backwards
	prev, prevOK := seq.First(b.self.IterAll(doc, opts))

	switch {
	case !nextOK:
		return prev, prevOK
	case !prevOK:
		return next, true
	}

	at := doc.OffsetAt(pos)
	nextDist := doc.OffsetAt(next.Start) - at
	prevDist := max(at-doc.OffsetAt(prev.End), 0)
	if nextDist < prevDist {
		return next, true
	}
	return prev, true
}

// gap returns the text between obj and the nearest object in scope on the
// dir side that does not overlap it.
func (b *base) gap(doc Document, obj Range, dir Direction) (Range, bool) {
	if dir == Backwards {
		opts := IterationOptions{StartingPosition: obj.Start, Direction: Backwards}
		prev, ok := seq.Find(b.self.IterScope(doc, opts), func(r Range) bool {
			return r.End.BeforeOrEqual(obj.Start)
		})
		return buffer.NewRange(prev.End, obj.Start), ok
	}
	opts := IterationOptions{StartingPosition: obj.Start, Direction: Forwards}
	next, ok := seq.Find(b.self.IterScope(doc, opts), func(r Range) bool {
		return obj.End.BeforeOrEqual(r.Start)
	})
	return buffer.NewRange(obj.End, next.Start), ok
}

// GetSeparatingText looks at the text between obj and its neighbours in
// scope. The shorter one is returned if it is a deletable separator;
// the text before wins a tie.
func (b *base) GetSeparatingText(doc Document, obj Range) (Range, bool) {
	candidate, found := b.gap(doc, obj, Backwards)
	if next, ok := b.gap(doc, obj, Forwards); ok {
		if !found || runeLen(doc.GetText(next)) < runeLen(doc.GetText(candidate)) {
			candidate, found = next, true
		}
	}
	if !found || !b.separators.MatchString(doc.GetText(candidate)) {
		return Range{}, false
	}
	return candidate, true
}

// SeparatorBeside returns the text between obj and its neighbour in dir
// if it is a deletable separator.
func (b *base) SeparatorBeside(doc Document, obj Range, dir Direction) (Range, bool) {
	r, ok := b.gap(doc, obj, dir)
	if !ok || !b.separators.MatchString(doc.GetText(r)) {
		return Range{}, false
	}
	return r, true
}

// Skip returns the first object whose leading character equals target
// under Unicode case folding.
func (b *base) Skip(doc Document, target rune, opts IterationOptions) (Range, bool) {
	fold := cases.Fold()
	want := fold.String(string(target))
	return seq.Find(b.self.IterAll(doc, opts), func(r Range) bool {
		lead, ok := leadingRune(doc, r)
		return ok && fold.String(string(lead)) == want
	})
}

// SkipOver jumps to the next blank line when skipChar is zero, or to the
// next occurrence of skipChar, and returns the first object beyond it.
func (b *base) SkipOver(doc Document, skipChar rune, opts IterationOptions) (Range, bool) {
	from := func(p Position) (Range, bool) {
		return seq.First(b.self.IterAll(doc, IterationOptions{
			StartingPosition: p,
			Direction:        opts.Direction,
			Bounds:           opts.Bounds,
		}))
	}

	start := opts.StartingPosition
	if skipChar == 0 {
		for n := range lineSteps(doc, start.Line, opts.Direction) {
			if n != start.Line && doc.LineAt(n).IsEmptyOrWhitespace {
				return from(Position{Line: n})
			}
		}
		return Range{}, false
	}

	text := []rune(doc.GetText(fullRange(doc)))
	at := doc.OffsetAt(start)
	step := 1
	if opts.Direction == Backwards {
		step = -1
	}
	for k := at + step; k >= 0 && k < len(text); k += step {
		if text[k] == skipChar {
			return from(doc.PositionAt(k))
		}
	}
	return Range{}, false
}

// DeleteObject removes obj together with its separating text.
func (b *base) DeleteObject(doc Document, edit EditBuilder, obj Range) (Placement, error) {
	r := obj
	if sep, ok := b.self.GetSeparatingText(doc, obj); ok {
		r = r.Union(sep)
	}
	edit.Delete(r)
	return Caret(doc.OffsetAt(r.Start)), nil
}

// separatorFor returns the separator to reuse next to obj. A default
// separator ending a line carries the indentation of obj's line.
func (b *base) separatorFor(doc Document, obj Range) string {
	if r, ok := b.self.GetSeparatingText(doc, obj); ok {
		return doc.GetText(r)
	}
	if strings.HasSuffix(b.defaultSeparator, "\n") {
		return b.defaultSeparator + indentText(doc.LineAt(obj.Start.Line))
	}
	return b.defaultSeparator
}

// InsertNew inserts a separator on the dir side of obj and returns the
// caret where the new object goes.
func (b *base) InsertNew(doc Document, edit EditBuilder, obj Range, dir Direction) (Placement, error) {
	sep := b.separatorFor(doc, obj)
	if dir == Backwards {
		edit.Insert(obj.Start, sep)
		return Caret(doc.OffsetAt(obj.Start)), nil
	}
	edit.Insert(obj.End, sep)
	return Caret(doc.OffsetAt(obj.End) + runeLen(sep)), nil
}

// SwapHorizontally swaps with the first object of IterHorizontally.
func (b *base) SwapHorizontally(doc Document, edit EditBuilder, dir Direction, r Range) (Placement, bool, error) {
	return b.swap(doc, edit, dir, r, b.self.IterHorizontally)
}

// SwapVertically swaps with the first object of IterVertically.
func (b *base) SwapVertically(doc Document, edit EditBuilder, dir Direction, r Range) (Placement, bool, error) {
	return b.swap(doc, edit, dir, r, b.self.IterVertically)
}

func (b *base) swap(
	doc Document,
	edit EditBuilder,
	dir Direction,
	r Range,
	neighbours func(Document, IterationOptions) iter.Seq[Range],
) (Placement, bool, error) {
	src, ok := b.self.GetContainingObjectAt(doc, r.Start)
	if !ok {
		if r.IsEmpty() {
			return Placement{}, false, nil
		}
		src = r
	}

	opts := IterationOptions{StartingPosition: src.Start, Direction: dir}
	dst, ok := seq.Find(neighbours(doc, opts), func(t Range) bool {
		return !overlaps(src, t)
	})
	if !ok {
		return Placement{}, false, nil
	}

	srcText, dstText := doc.GetText(src), doc.GetText(dst)
	edit.Replace(src, dstText)
	edit.Replace(dst, srcText)

	start := doc.OffsetAt(dst.Start)
	if dst.Start.After(src.Start) {
		start += runeLen(dstText) - runeLen(srcText)
	}
	return Placement{Start: start, End: start + runeLen(srcText)}, true, nil
}

// overlaps reports whether two ranges share at least one character.
func overlaps(a, b Range) bool {
	if a.IsEqual(b) {
		return true
	}
	return a.Start.Before(b.End) && b.Start.Before(a.End)
}

// leadingRune returns the first character of r.
func leadingRune(doc Document, r Range) (rune, bool) {
	text := []rune(doc.LineAt(r.Start.Line).Text)
	if r.Start.Character < 0 || r.Start.Character >= len(text) {
		return 0, false
	}
	return text[r.Start.Character], true
}
