package subjectio

import (
	"strings"
	"testing"

	"pgregory.net/rapid"

	"github.com/dshills/textsubject/internal/engine/buffer"
)

// balancedBrackets generates text whose brackets are all properly nested
// and of matching kinds.
func balancedBrackets() *rapid.Generator[string] {
	return rapid.Custom(func(t *rapid.T) string {
		var sb strings.Builder
		var open []rune
		steps := rapid.IntRange(0, 30).Draw(t, "steps")
		for range steps {
			switch rapid.IntRange(0, 3).Draw(t, "op") {
			case 0:
				r := rapid.SampledFrom([]rune{'(', '[', '{'}).Draw(t, "opener")
				open = append(open, r)
				sb.WriteRune(r)
			case 1:
				if len(open) > 0 {
					sb.WriteRune(closers[open[len(open)-1]])
					open = open[:len(open)-1]
				}
			case 2:
				sb.WriteString(rapid.SampledFrom([]string{"a", "b", " ", "\n", ","}).Draw(t, "text"))
			}
		}
		for i := len(open) - 1; i >= 0; i-- {
			sb.WriteRune(closers[open[i]])
		}
		return sb.String()
	})
}

// checkInteriorContainment asserts that every point strictly inside an
// object yielded by IterAll is contained by the object found at it.
func checkInteriorContainment(t *rapid.T, io SubjectIO, text string) {
	doc := buffer.NewSnapshotFromString(text)
	opts := IterationOptions{CurrentInclusive: true}
	for r := range io.IterAll(doc, opts) {
		start, end := doc.OffsetAt(r.Start), doc.OffsetAt(r.End)
		for off := start + 1; off < end; off++ {
			p := doc.PositionAt(off)
			got, ok := io.GetContainingObjectAt(doc, p)
			if !ok || !got.Contains(p) {
				t.Fatalf("%q: %s lies inside %s but resolves to %s (ok=%v)", text, p, r, got, ok)
			}
		}
	}
}

func TestInteriorPointsResolveToContainingObject(t *testing.T) {
	for _, name := range []Name{Word, Subword, Interword, Line, Block, Char} {
		t.Run(string(name), func(t *testing.T) {
			io, err := New(name, DefaultOptions())
			if err != nil {
				t.Fatal(err)
			}
			rapid.Check(t, func(t *rapid.T) {
				text := rapid.StringMatching(`[a-zA-Z0-9_ +,.;:\n]{0,40}`).Draw(t, "text")
				checkInteriorContainment(t, io, text)
			})
		})
	}

	t.Run(string(Bracket), func(t *testing.T) {
		for _, inclusive := range []bool{true, false} {
			io := NewBracketIO(inclusive)
			rapid.Check(t, func(t *rapid.T) {
				checkInteriorContainment(t, io, balancedBrackets().Draw(t, "text"))
			})
		}
	})
}

func TestBracketIterAllYieldsMatchedPairs(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		text := rapid.StringMatching(`[()\[\]{}ab \n]{0,30}`).Draw(t, "text")
		doc := buffer.NewSnapshotFromString(text)
		b := NewBracketIO(true)
		for r := range b.IterAll(doc, IterationOptions{CurrentInclusive: true}) {
			got := []rune(doc.GetText(r))
			if len(got) < 2 || closers[got[0]] != got[len(got)-1] {
				t.Fatalf("%q: %q is not a matched pair", text, string(got))
			}
		}
	})
}

// joined generates one line of tokens joined by gaps.
func joined(tokens *rapid.Generator[string], gaps ...string) *rapid.Generator[string] {
	return rapid.Custom(func(t *rapid.T) string {
		parts := rapid.SliceOfN(tokens, 1, 8).Draw(t, "tokens")
		var sb strings.Builder
		for i, p := range parts {
			if i > 0 {
				sb.WriteString(rapid.SampledFrom(gaps).Draw(t, "gap"))
			}
			sb.WriteString(p)
		}
		return sb.String()
	})
}

// indentedLines generates lines of words at a few indentation levels, with
// blank and stop lines mixed in.
func indentedLines() *rapid.Generator[string] {
	return rapid.Custom(func(t *rapid.T) string {
		n := rapid.IntRange(1, 8).Draw(t, "lines")
		lines := make([]string, n)
		for i := range lines {
			indent := strings.Repeat("  ", rapid.IntRange(0, 2).Draw(t, "depth"))
			switch rapid.IntRange(0, 5).Draw(t, "kind") {
			case 0:
				lines[i] = ""
			case 1:
				lines[i] = indent + "--"
			default:
				lines[i] = indent + rapid.StringMatching(`[a-z]{1,3}( [a-z]{1,3})?:?`).Draw(t, "words")
			}
		}
		return strings.Join(lines, "\n")
	})
}

// checkDuplicateThenDelete duplicates a random object of text and deletes
// the copy again.
func checkDuplicateThenDelete(t *rapid.T, io SubjectIO, text string) {
	doc := buffer.NewSnapshotFromString(text)
	var objs []Range
	for _, r := range collectAll(io, doc) {
		if !r.IsEmpty() {
			objs = append(objs, r)
		}
	}
	if len(objs) == 0 {
		return
	}
	obj := objs[rapid.IntRange(0, len(objs)-1).Draw(t, "object")]

	buf := buffer.NewBufferFromString(text)
	rec := &editLog{}
	p, err := io.Duplicate(buf.Snapshot(), rec, obj)
	if err != nil {
		t.Fatal(err)
	}
	if err := buf.ApplyEdits(rec.edits); err != nil {
		t.Fatal(err)
	}

	after := buf.Snapshot()
	if got := after.GetText(p.Resolve(after)); got != doc.GetText(obj) {
		t.Fatalf("copy of %q in %q reads %q", doc.GetText(obj), text, got)
	}
	rec = &editLog{}
	if _, err := io.DeleteObject(after, rec, p.Resolve(after)); err != nil {
		t.Fatal(err)
	}
	if err := buf.ApplyEdits(rec.edits); err != nil {
		t.Fatal(err)
	}
	if buf.Text() != text {
		t.Fatalf("duplicate then delete of %s changed %q into %q (copy in %q)", obj, text, buf.Text(), after.Text())
	}
}

func TestDuplicateThenDeleteRestoresText(t *testing.T) {
	words := rapid.StringMatching(`[a-z]{1,5}`)
	subwords := rapid.StringMatching(`[a-z]{1,3}|[A-Z][a-z]{0,2}|[(),;.+]`)
	punctuated := rapid.StringMatching(`[a-z]{1,3}|[(),;.+]{1,2}`)

	tests := []struct {
		name string
		io   SubjectIO
		text *rapid.Generator[string]
	}{
		{"word", NewWordIO(), joined(words, " ", "\n", ", ", "; ")},
		{"char", NewCharIO(), joined(words, " ", "\n")},
		{"subword", NewSubwordIO(), joined(subwords, "", " ", "  ")},
		{"interword", NewInterwordIO(), joined(punctuated, "", " ", ", ")},
		{"bracket", NewBracketIO(true), balancedBrackets()},
		{"bracket exclusive", NewBracketIO(false), balancedBrackets()},
		{"block", NewBlockIO(), indentedLines()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rapid.Check(t, func(t *rapid.T) {
				checkDuplicateThenDelete(t, tt.io, tt.text.Draw(t, "text"))
			})
		})
	}
}

func collectAll(io SubjectIO, doc Document) []Range {
	var out []Range
	for r := range io.IterAll(doc, IterationOptions{CurrentInclusive: true}) {
		out = append(out, r)
	}
	return out
}
