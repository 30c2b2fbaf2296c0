package subject

import (
	"github.com/dshills/textsubject/internal/engine/buffer"
	"github.com/dshills/textsubject/internal/engine/cursor"
	"github.com/dshills/textsubject/internal/subject/subjectio"
)

// recordedEdit is one edit of a transaction with its pre-edit offsets.
type recordedEdit struct {
	owner   int
	edit    buffer.Edit
	start   int
	end     int
	textLen int
}

func (e recordedEdit) delta() int {
	return e.textLen - (e.end - e.start)
}

// transaction records the edits of several selections against one
// document so they can be applied together and every selection's
// placement can be mapped onto the result.
type transaction struct {
	doc   buffer.Document
	owner int
	edits []recordedEdit
}

func newTransaction(doc buffer.Document) *transaction {
	return &transaction{doc: doc}
}

func (t *transaction) Delete(r buffer.Range) {
	t.add(buffer.NewDelete(r))
}

func (t *transaction) Insert(p buffer.Position, text string) {
	t.add(buffer.NewInsert(p, text))
}

func (t *transaction) Replace(r buffer.Range, text string) {
	t.add(buffer.NewEdit(r, text))
}

func (t *transaction) add(e buffer.Edit) {
	start, end := t.doc.OffsetAt(e.Range.Start), t.doc.OffsetAt(e.Range.End)
	if e.IsDelete() {
		// Neighbouring objects can claim the same separator; the first
		// owner keeps it.
		for _, prev := range t.edits {
			if prev.owner != t.owner && prev.start < end && start < prev.end {
				start = max(start, prev.end)
			}
		}
		if start >= end {
			return
		}
		e = buffer.NewDelete(buffer.NewRange(t.doc.PositionAt(start), e.Range.End))
	}
	t.edits = append(t.edits, recordedEdit{
		owner:   t.owner,
		edit:    e,
		start:   start,
		end:     end,
		textLen: len([]rune(e.NewText)),
	})
}

// empty reports whether nothing was recorded.
func (t *transaction) empty() bool {
	return len(t.edits) == 0
}

// replay hands the recorded edits to the host transaction.
func (t *transaction) replay(eb buffer.EditBuilder) {
	for _, e := range t.edits {
		switch {
		case e.edit.IsInsert():
			eb.Insert(e.edit.Range.Start, e.edit.NewText)
		case e.edit.IsDelete():
			eb.Delete(e.edit.Range)
		default:
			eb.Replace(e.edit.Range, e.edit.NewText)
		}
	}
}

// resolve shifts a placement computed by owner alone by the edits other
// owners made before it.
func (t *transaction) resolve(owner int, p subjectio.Placement) subjectio.Placement {
	first := -1
	for _, e := range t.edits {
		if e.owner == owner && (first < 0 || e.start < first) {
			first = e.start
		}
	}
	if first < 0 {
		first = p.Start
	}

	shift := 0
	for _, e := range t.edits {
		if e.owner != owner && (e.start < first || e.start == first && e.owner < owner) {
			shift += e.delta()
		}
	}
	return p.Shift(shift)
}

// offsetEdits converts the transaction for selection transformation.
func (t *transaction) offsetEdits() []cursor.OffsetEdit {
	out := make([]cursor.OffsetEdit, len(t.edits))
	for i, e := range t.edits {
		out[i] = cursor.OffsetEdit{Start: e.start, End: e.end, TextLen: e.textLen}
	}
	return out
}

// conflicts reports whether an edit recorded since mark collides with an
// edit of another owner. Zero-width inserts collide with a deletion that
// starts at or spans their position.
func (t *transaction) conflicts(mark int) bool {
	for _, e := range t.edits[mark:] {
		for _, prev := range t.edits[:mark] {
			if prev.owner != e.owner && collide(e, prev) {
				return true
			}
		}
	}
	return false
}

func collide(a, b recordedEdit) bool {
	if a.start < b.end && b.start < a.end {
		return true
	}
	if a.start == a.end && b.start <= a.start && a.start < b.end {
		return true
	}
	return b.start == b.end && a.start <= b.start && b.start < a.end
}

// claimed reports whether another owner already edits text inside r.
func (t *transaction) claimed(r buffer.Range) bool {
	start, end := t.doc.OffsetAt(r.Start), t.doc.OffsetAt(r.End)
	for _, e := range t.edits {
		if e.owner != t.owner && e.start < end && start < e.end {
			return true
		}
	}
	return false
}

// rollback discards the edits recorded since mark.
func (t *transaction) rollback(mark int) {
	t.edits = t.edits[:mark]
}
