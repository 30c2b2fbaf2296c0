package subjectio

import (
	"slices"

	"github.com/dshills/textsubject/internal/engine/buffer"
	"github.com/dshills/textsubject/internal/subject/seq"
)

// copyPlacement is one way of putting a copy next to its original: the
// separator between them and the side the copy goes on.
type copyPlacement struct {
	sep    string
	before bool
}

// insertion returns where the copy is inserted and the inserted text.
func (c copyPlacement) insertion(obj Range, text string) (Position, string) {
	if c.before {
		return obj.Start, text + c.sep
	}
	return obj.End, c.sep + text
}

// copyAt is the placement of the copy once inserted.
func (c copyPlacement) copyAt(doc Document, obj Range, text string) Placement {
	start := doc.OffsetAt(obj.Start)
	if !c.before {
		start = doc.OffsetAt(obj.End) + runeLen(c.sep)
	}
	return Placement{Start: start, End: start + runeLen(text)}
}

// Duplicate inserts a copy of obj next to it and returns the copy.
//
// The copy goes after obj behind the separator obj already has. When that
// copy would merge into a neighbour, or deleting it again would not give
// back the original text, other separators and the other side are tried.
func (b *base) Duplicate(doc Document, edit EditBuilder, obj Range) (Placement, error) {
	text := doc.GetText(obj)
	c := b.placeCopy(doc, obj, text)
	at, ins := c.insertion(obj, text)
	edit.Insert(at, ins)
	return c.copyAt(doc, obj, text), nil
}

// copyPlacements lists the placements to try, preferred first.
func (b *base) copyPlacements(doc Document, obj Range) []copyPlacement {
	indent := indentText(doc.LineAt(obj.Start.Line))
	var seps []string
	for _, sep := range []string{
		b.separatorFor(doc, obj),
		b.defaultSeparator,
		" ",
		"\n" + indent,
		"\n\n" + indent,
		"",
	} {
		if !slices.Contains(seps, sep) {
			seps = append(seps, sep)
		}
	}

	out := make([]copyPlacement, 0, 2*len(seps))
	for _, sep := range seps {
		out = append(out, copyPlacement{sep: sep}, copyPlacement{sep: sep, before: true})
	}
	return out
}

// placeCopy picks the first placement whose copy is an object of its own
// and deletes cleanly. Failing that the first one that deletes cleanly
// wins, and failing that the preferred one.
func (b *base) placeCopy(doc Document, obj Range, text string) copyPlacement {
	candidates := b.copyPlacements(doc, obj)
	original := doc.GetText(fullRange(doc))

	clean := -1
	for i, c := range candidates {
		after, cp := preview(doc, original, obj, text, c)
		restored, err := b.deletes(after, cp, original)
		if err != nil {
			// Nothing to check against when the strategy cannot delete.
			break
		}
		if !restored {
			continue
		}
		if b.standsAlone(after, cp) {
			return c
		}
		if clean < 0 {
			clean = i
		}
	}
	if clean >= 0 {
		return candidates[clean]
	}
	return candidates[0]
}

// preview applies c to a copy of the document and returns it with the
// range of the copy.
func preview(doc Document, original string, obj Range, text string, c copyPlacement) (*buffer.Snapshot, Range) {
	at, ins := c.insertion(obj, text)
	runes := []rune(original)
	off := doc.OffsetAt(at)
	after := buffer.NewSnapshotFromString(string(slices.Concat(runes[:off], []rune(ins), runes[off:])))
	return after, c.copyAt(doc, obj, text).Resolve(after)
}

// deletes reports whether deleting cp from doc leaves want.
func (b *base) deletes(doc *buffer.Snapshot, cp Range, want string) (bool, error) {
	log := &editLog{}
	if _, err := b.self.DeleteObject(doc, log, cp); err != nil {
		return false, err
	}
	buf := buffer.NewBufferFromString(doc.Text())
	if err := buf.ApplyEdits(log.edits); err != nil {
		return false, nil
	}
	return buf.Text() == want, nil
}

// standsAlone reports whether cp is an object of doc in its own right.
func (b *base) standsAlone(doc Document, cp Range) bool {
	r, ok := seq.First(b.self.IterAll(doc, IterationOptions{
		StartingPosition: cp.Start,
		CurrentInclusive: true,
	}))
	return ok && r.IsEqual(cp)
}

// editLog records edits without applying them.
type editLog struct {
	edits []buffer.Edit
}

func (l *editLog) Delete(r Range) {
	l.edits = append(l.edits, buffer.NewDelete(r))
}

func (l *editLog) Insert(p Position, text string) {
	l.edits = append(l.edits, buffer.NewInsert(p, text))
}

func (l *editLog) Replace(r Range, text string) {
	l.edits = append(l.edits, buffer.NewEdit(r, text))
}
