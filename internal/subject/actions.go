package subject

import (
	"iter"

	"github.com/dshills/textsubject/internal/engine/buffer"
	"github.com/dshills/textsubject/internal/engine/cursor"
	"github.com/dshills/textsubject/internal/subject/seq"
	"github.com/dshills/textsubject/internal/subject/subjectio"
)

type axis uint8

const (
	horizontal axis = iota
	vertical
)

func (s *Subject) iterate(a axis, doc buffer.Document, opts subjectio.IterationOptions) iter.Seq[buffer.Range] {
	if a == vertical {
		return s.io.IterVertically(doc, opts)
	}
	return s.io.IterHorizontally(doc, opts)
}

// NextSubjectUp moves every selection to the subject above it.
func (s *Subject) NextSubjectUp() { s.move(vertical, subjectio.Backwards) }

// NextSubjectDown moves every selection to the subject below it.
func (s *Subject) NextSubjectDown() { s.move(vertical, subjectio.Forwards) }

// NextSubjectLeft moves every selection to the previous subject.
func (s *Subject) NextSubjectLeft() { s.move(horizontal, subjectio.Backwards) }

// NextSubjectRight moves every selection to the next subject.
func (s *Subject) NextSubjectRight() { s.move(horizontal, subjectio.Forwards) }

// AddSubjectUp adds the subject above the topmost selection.
func (s *Subject) AddSubjectUp() { s.add(vertical, subjectio.Backwards) }

// AddSubjectDown adds the subject below the bottommost selection.
func (s *Subject) AddSubjectDown() { s.add(vertical, subjectio.Forwards) }

// AddSubjectLeft adds the subject before the first selection.
func (s *Subject) AddSubjectLeft() { s.add(horizontal, subjectio.Backwards) }

// AddSubjectRight adds the subject after the last selection.
func (s *Subject) AddSubjectRight() { s.add(horizontal, subjectio.Forwards) }

func (s *Subject) move(a axis, dir subjectio.Direction) {
	doc := s.editor.Document()
	sels := s.editor.Selections()

	out := make([]cursor.Selection, len(sels))
	moved := false
	for i, sel := range sels {
		out[i] = sel
		opts := subjectio.IterationOptions{StartingPosition: sel.Start(), Direction: dir}
		if r, ok := seq.First(s.iterate(a, doc, opts)); ok {
			out[i] = cursor.NewRangeSelection(r)
			moved = true
		}
	}
	if !moved {
		s.log.Debug("no subject %s", dir)
		return
	}
	s.apply(out, out[len(out)-1].Range())
}

func (s *Subject) add(a axis, dir subjectio.Direction) {
	doc := s.editor.Document()
	sels := cursor.Normalize(s.editor.Selections())
	if len(sels) == 0 {
		return
	}

	from := sels[len(sels)-1]
	if dir == subjectio.Backwards {
		from = sels[0]
	}
	opts := subjectio.IterationOptions{StartingPosition: from.Start(), Direction: dir}
	r, ok := seq.First(s.iterate(a, doc, opts))
	if !ok {
		s.log.Debug("nothing to add %s", dir)
		return
	}
	s.apply(cursor.Append(sels, cursor.NewRangeSelection(r)), r)
}

// FirstSubjectInScope moves every selection to the first subject of its
// scope.
func (s *Subject) FirstSubjectInScope() { s.scopeEdge(subjectio.Backwards) }

// LastSubjectInScope moves every selection to the last subject of its
// scope.
func (s *Subject) LastSubjectInScope() { s.scopeEdge(subjectio.Forwards) }

func (s *Subject) scopeEdge(dir subjectio.Direction) {
	s.jumpEach(func(doc buffer.Document, sel cursor.Selection) (buffer.Range, bool) {
		return seq.Last(s.io.IterScope(doc, subjectio.IterationOptions{
			StartingPosition:       sel.Start(),
			Direction:              dir,
			RestrictToCurrentScope: true,
		}))
	})
}

// Search moves every selection to the next subject starting with target.
func (s *Subject) Search(target rune) { s.search(target, subjectio.Forwards) }

// SearchBackwards moves every selection to the previous subject starting
// with target.
func (s *Subject) SearchBackwards(target rune) { s.search(target, subjectio.Backwards) }

func (s *Subject) search(target rune, dir subjectio.Direction) {
	skipper, hasSkip := s.io.(subjectio.Skipper)
	s.jumpEach(func(doc buffer.Document, sel cursor.Selection) (buffer.Range, bool) {
		opts := subjectio.IterationOptions{StartingPosition: sel.Start(), Direction: dir}
		if hasSkip {
			return skipper.Skip(doc, target, opts)
		}
		return seq.Find(s.io.IterAll(doc, opts), func(r buffer.Range) bool {
			return leadingRune(doc, r) == target
		})
	})
}

// SkipOver moves every selection past the next blank line, or past the
// next skipChar when it is not zero.
func (s *Subject) SkipOver(skipChar rune, dir subjectio.Direction) {
	s.jumpEach(func(doc buffer.Document, sel cursor.Selection) (buffer.Range, bool) {
		return s.io.SkipOver(doc, skipChar, subjectio.IterationOptions{
			StartingPosition: sel.Start(),
			Direction:        dir,
		})
	})
}

// jumpEach replaces each selection with the range find returns for it.
func (s *Subject) jumpEach(find func(buffer.Document, cursor.Selection) (buffer.Range, bool)) {
	doc := s.editor.Document()
	sels := s.editor.Selections()

	out := make([]cursor.Selection, len(sels))
	var last buffer.Range
	found := false
	for i, sel := range sels {
		out[i] = sel
		if r, ok := find(doc, sel); ok {
			out[i] = cursor.NewRangeSelection(r)
			last, found = r, true
		}
	}
	if !found {
		s.log.Debug("no subject found")
		return
	}
	s.apply(out, last)
}

// FixSelection snaps every selection onto whole subjects: the union of the
// subjects at both ends, else whichever end has one, else the closest
// subject.
func (s *Subject) FixSelection() {
	doc := s.editor.Document()
	sels := s.editor.Selections()
	if len(sels) == 0 {
		return
	}

	out := make([]cursor.Selection, len(sels))
	for i, sel := range sels {
		out[i] = cursor.NewRangeSelection(s.fix(doc, sel.Range()))
	}
	s.apply(out, out[0].Range())
}

func (s *Subject) fix(doc buffer.Document, r buffer.Range) buffer.Range {
	if r.IsEmpty() {
		if obj, ok := s.io.GetContainingObjectAt(doc, r.Start); ok {
			return obj
		}
		if closest, ok := s.io.GetClosestObjectTo(doc, r.Start); ok {
			return closest
		}
		return r
	}

	first, ok := seq.First(s.io.IterAll(doc, subjectio.IterationOptions{
		StartingPosition: r.Start,
		CurrentInclusive: true,
	}))
	if ok && first.IsEqual(r) {
		return r
	}

	start, startOK := s.startObject(doc, r)
	end, endOK := s.endObject(doc, r)
	switch {
	case startOK && endOK:
		return start.Union(end)
	case startOK:
		return start
	case endOK:
		return end
	}
	if closest, ok := s.io.GetClosestObjectTo(doc, r.Start); ok {
		return closest
	}
	return r
}

// startObject returns the non-empty subject containing, or starting at, the
// start of r.
func (s *Subject) startObject(doc buffer.Document, r buffer.Range) (buffer.Range, bool) {
	if obj, ok := s.io.GetContainingObjectAt(doc, r.Start); ok && !obj.IsEmpty() {
		return obj, true
	}
	obj, ok := seq.First(s.io.IterAll(doc, subjectio.IterationOptions{
		StartingPosition: r.Start,
		CurrentInclusive: true,
	}))
	return obj, ok && obj.Start.IsEqual(r.Start)
}

// endObject returns the non-empty subject containing the last character of
// r, or ending where r ends.
func (s *Subject) endObject(doc buffer.Document, r buffer.Range) (buffer.Range, bool) {
	last := doc.PositionAt(doc.OffsetAt(r.End) - 1)
	if obj, ok := s.io.GetContainingObjectAt(doc, last); ok && !obj.IsEmpty() {
		return obj, true
	}
	obj, ok := seq.First(s.io.IterAll(doc, subjectio.IterationOptions{
		StartingPosition: r.End,
		Direction:        subjectio.Backwards,
	}))
	return obj, ok && obj.End.IsEqual(r.End)
}

// objectFor returns the subject an edit of sel applies to.
func (s *Subject) objectFor(doc buffer.Document, sel cursor.Selection) buffer.Range {
	if !sel.IsEmpty() {
		return sel.Range()
	}
	return s.fix(doc, sel.Range())
}

// apply installs new selections, highlights them and reveals focus.
func (s *Subject) apply(sels []cursor.Selection, focus buffer.Range) {
	sels = cursor.Normalize(sels)
	s.editor.SetSelections(sels)
	s.editor.SetDecorations(s.decoration, cursor.Ranges(sels))
	s.editor.RevealRange(focus)
}

// JumpTargets yields the subjects inside the visible ranges for the jump
// interface to label. In the range holding the primary selection, subjects
// nearer to it come first.
func (s *Subject) JumpTargets() iter.Seq[buffer.Range] {
	doc := s.editor.Document()
	visible := s.editor.VisibleRanges()
	var origin buffer.Position
	if sels := s.editor.Selections(); len(sels) > 0 {
		origin = sels[0].Start()
	}

	return func(yield func(buffer.Range) bool) {
		for _, v := range visible {
			targets := s.io.IterAll(doc, subjectio.IterationOptions{
				StartingPosition: v.Start,
				CurrentInclusive: true,
				Bounds:           &v,
			})
			if v.Contains(origin) {
				targets = seq.Alternate(
					s.io.IterAll(doc, subjectio.IterationOptions{
						StartingPosition: origin,
						CurrentInclusive: true,
						Bounds:           &v,
					}),
					s.io.IterAll(doc, subjectio.IterationOptions{
						StartingPosition: origin,
						Direction:        subjectio.Backwards,
						Bounds:           &v,
					}),
				)
			}
			for r := range targets {
				if !yield(r) {
					return
				}
			}
		}
	}
}

func leadingRune(doc buffer.Document, r buffer.Range) rune {
	for _, c := range doc.GetText(r) {
		return c
	}
	return 0
}
