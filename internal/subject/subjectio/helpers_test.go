package subjectio

import (
	"iter"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dshills/textsubject/internal/engine/buffer"
	"github.com/dshills/textsubject/internal/subject/seq"
)

func snap(text string) *buffer.Snapshot {
	return buffer.NewSnapshotFromString(text)
}

func at(line, char int) Position {
	return buffer.NewPosition(line, char)
}

func forwards(p Position) IterationOptions {
	return IterationOptions{StartingPosition: p, Direction: Forwards}
}

func backwards(p Position) IterationOptions {
	return IterationOptions{StartingPosition: p, Direction: Backwards}
}

// texts collects the text of every yielded object.
func texts(doc Document, s iter.Seq[Range]) []string {
	return seq.Collect(seq.Map(s, func(r Range) string { return doc.GetText(r) }))
}

// textAt returns the text of the object containing p, or "" if none.
func textAt(io SubjectIO, doc Document, p Position) (string, bool) {
	r, ok := io.GetContainingObjectAt(doc, p)
	if !ok {
		return "", false
	}
	return doc.GetText(r), true
}

// applyEdit runs fn against text and returns the edited text together with
// the text at the returned placement.
func applyEdit(t *testing.T, text string, fn func(doc Document, eb EditBuilder) (Placement, error)) (string, string) {
	t.Helper()
	buf := buffer.NewBufferFromString(text)
	rec := &editLog{}
	p, err := fn(buf.Snapshot(), rec)
	require.NoError(t, err)
	require.NoError(t, buf.ApplyEdits(rec.edits))

	after := buf.Snapshot()
	return after.Text(), after.GetText(p.Resolve(after))
}

// rng builds a range from coordinates.
func rng(sl, sc, el, ec int) Range {
	return buffer.NewRangeAt(sl, sc, el, ec)
}
