package subject

import (
	"fmt"

	"github.com/dshills/textsubject/internal/engine/buffer"
	"github.com/dshills/textsubject/internal/engine/cursor"
	"github.com/dshills/textsubject/internal/subject/subjectio"
)

// editFunc records the edits for one object and returns where the
// selection goes afterwards. ok is false when there is nothing to do.
type editFunc func(doc buffer.Document, tx *transaction, obj buffer.Range) (p subjectio.Placement, ok bool, err error)

// SwapSubjectUp exchanges every selected subject with the one above it.
func (s *Subject) SwapSubjectUp() error {
	return s.swap(vertical, subjectio.Backwards)
}

// SwapSubjectDown exchanges every selected subject with the one below it.
func (s *Subject) SwapSubjectDown() error {
	return s.swap(vertical, subjectio.Forwards)
}

// SwapSubjectLeft exchanges every selected subject with the previous one.
func (s *Subject) SwapSubjectLeft() error {
	return s.swap(horizontal, subjectio.Backwards)
}

// SwapSubjectRight exchanges every selected subject with the next one.
func (s *Subject) SwapSubjectRight() error {
	return s.swap(horizontal, subjectio.Forwards)
}

func (s *Subject) swap(a axis, dir subjectio.Direction) error {
	op := s.io.SwapHorizontally
	if a == vertical {
		op = s.io.SwapVertically
	}
	return s.editEach("swap", s.selectedRange, func(doc buffer.Document, tx *transaction, obj buffer.Range) (subjectio.Placement, bool, error) {
		return op(doc, tx, dir, obj)
	}, nil)
}

// DeleteSubjects deletes every selected subject with its separator and
// selects the subject left at, or nearest to, the deletion point.
func (s *Subject) DeleteSubjects() error {
	return s.editEach("delete", s.selectedObject, func(doc buffer.Document, tx *transaction, obj buffer.Range) (subjectio.Placement, bool, error) {
		p, err := s.deleteObject(doc, tx, obj)
		return p, err == nil, err
	}, func(doc buffer.Document, r buffer.Range) buffer.Range {
		if obj, ok := s.io.GetContainingObjectAt(doc, r.Start); ok && !obj.IsEmpty() {
			return obj
		}
		if closest, ok := s.io.GetClosestObjectTo(doc, r.Start); ok {
			return closest
		}
		return r
	})
}

// DuplicateSubjects inserts a copy of every selected subject after it and
// selects the copies.
func (s *Subject) DuplicateSubjects() error {
	return s.editEach("duplicate", s.selectedObject, func(doc buffer.Document, tx *transaction, obj buffer.Range) (subjectio.Placement, bool, error) {
		p, err := s.io.Duplicate(doc, tx, obj)
		return p, err == nil, err
	}, nil)
}

// InsertSubject opens room for a new subject next to every selection, in
// dir, and leaves a caret there.
func (s *Subject) InsertSubject(dir subjectio.Direction) error {
	return s.editEach("insert", s.selectedObject, func(doc buffer.Document, tx *transaction, obj buffer.Range) (subjectio.Placement, bool, error) {
		p, err := s.io.InsertNew(doc, tx, obj, dir)
		return p, err == nil, err
	}, nil)
}

// deleteObject deletes obj with its separator. When an earlier selection
// already deletes the separator before obj, the one after it is taken
// instead so the result matches deleting the objects one at a time.
func (s *Subject) deleteObject(doc buffer.Document, tx *transaction, obj buffer.Range) (subjectio.Placement, error) {
	sided, ok := s.io.(subjectio.SideSeparator)
	if !ok {
		return s.io.DeleteObject(doc, tx, obj)
	}
	before, ok := sided.SeparatorBeside(doc, obj, subjectio.Backwards)
	if !ok || before.IsEmpty() || !tx.claimed(before) {
		return s.io.DeleteObject(doc, tx, obj)
	}

	r := obj
	if after, ok := sided.SeparatorBeside(doc, obj, subjectio.Forwards); ok {
		r = r.Union(after)
	}
	tx.Delete(r)
	return subjectio.Caret(doc.OffsetAt(r.Start)), nil
}

func (s *Subject) selectedRange(_ buffer.Document, sel cursor.Selection) (buffer.Range, bool) {
	return sel.Range(), true
}

func (s *Subject) selectedObject(doc buffer.Document, sel cursor.Selection) (buffer.Range, bool) {
	r := s.objectFor(doc, sel)
	return r, !r.IsEmpty()
}

// editEach runs fn for the object of every selection inside one
// transaction. Objects overlapping an earlier one are skipped, as are
// selections whose edits would collide with another selection's. If fn
// fails nothing is applied.
func (s *Subject) editEach(
	op string,
	objectOf func(buffer.Document, cursor.Selection) (buffer.Range, bool),
	fn editFunc,
	settle func(buffer.Document, buffer.Range) buffer.Range,
) error {
	before := s.editor.Document()
	sels := cursor.Normalize(s.editor.Selections())
	if len(sels) == 0 {
		return nil
	}
	tx := newTransaction(before)

	placements := make(map[int]subjectio.Placement, len(sels))
	var last buffer.Range
	haveLast := false
	for i, sel := range sels {
		obj, ok := objectOf(before, sel)
		if !ok {
			continue
		}
		if haveLast && obj.Start.Before(last.End) {
			continue
		}

		tx.owner = i
		mark := len(tx.edits)
		p, ok, err := fn(before, tx, obj)
		if err != nil {
			return fmt.Errorf("%s %s: %w", op, s.name, err)
		}
		if !ok || tx.conflicts(mark) {
			tx.rollback(mark)
			continue
		}
		placements[i] = p
		last, haveLast = obj, true
	}

	if tx.empty() {
		s.log.Debug("%s: nothing to edit", op)
		return nil
	}
	if err := s.editor.Edit(tx.replay); err != nil {
		return fmt.Errorf("%s %s: %w", op, s.name, err)
	}

	after := s.editor.Document()
	edits := tx.offsetEdits()
	out := make([]cursor.Selection, len(sels))
	for i, sel := range sels {
		p, ok := placements[i]
		if !ok {
			out[i] = cursor.NewSelection(
				mapPosition(before, after, sel.Anchor, edits),
				mapPosition(before, after, sel.Active, edits),
			)
			continue
		}
		r := tx.resolve(i, p).Resolve(after)
		if settle != nil {
			r = settle(after, r)
		}
		out[i] = cursor.NewRangeSelection(r)
	}
	s.log.Debug("%s: edited %d of %d selections", op, len(placements), len(sels))
	s.apply(out, out[0].Range())
	return nil
}

func mapPosition(before, after buffer.Document, p buffer.Position, edits []cursor.OffsetEdit) buffer.Position {
	return after.PositionAt(cursor.TransformOffset(before.OffsetAt(p), edits))
}
