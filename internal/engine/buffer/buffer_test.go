package buffer

import (
	"errors"
	"strings"
	"sync"
	"testing"
)

func TestNewBuffer(t *testing.T) {
	b := NewBuffer()

	if b.Text() != "" {
		t.Errorf("expected empty text, got %q", b.Text())
	}

	if b.LineCount() != 1 {
		t.Errorf("expected 1 line, got %d", b.LineCount())
	}
}

func TestNewBufferFromStringMultiline(t *testing.T) {
	b := NewBufferFromString("line1\nline2\nline3")
	snap := b.Snapshot()

	if snap.LineCount() != 3 {
		t.Fatalf("expected 3 lines, got %d", snap.LineCount())
	}

	for i, want := range []string{"line1", "line2", "line3"} {
		if got := snap.LineAt(i).Text; got != want {
			t.Errorf("line %d: expected %q, got %q", i, want, got)
		}
	}
}

func TestLineAt(t *testing.T) {
	snap := NewSnapshotFromString("if x:\n  a\n   \nb")

	l := snap.LineAt(1)
	if l.FirstNonWhitespaceCharacterIndex != 2 {
		t.Errorf("expected indentation 2, got %d", l.FirstNonWhitespaceCharacterIndex)
	}
	if l.IsEmptyOrWhitespace {
		t.Error("line 1 should not be blank")
	}
	if !l.Range.IsEqual(NewRangeAt(1, 0, 1, 3)) {
		t.Errorf("unexpected range %s", l.Range)
	}
	if !l.RangeIncludingLineBreak.IsEqual(NewRangeAt(1, 0, 2, 0)) {
		t.Errorf("unexpected range including break %s", l.RangeIncludingLineBreak)
	}

	blank := snap.LineAt(2)
	if !blank.IsEmptyOrWhitespace {
		t.Error("line 2 should be blank")
	}
	if blank.FirstNonWhitespaceCharacterIndex != 3 {
		t.Errorf("blank line indentation should equal its length, got %d", blank.FirstNonWhitespaceCharacterIndex)
	}

	last := snap.LineAt(3)
	if !last.RangeIncludingLineBreak.IsEqual(last.Range) {
		t.Error("last line has no line break")
	}

	missing := snap.LineAt(10)
	if !missing.IsEmptyOrWhitespace || missing.Text != "" {
		t.Error("out of range line should be empty")
	}
}

func TestOffsetConversion(t *testing.T) {
	snap := NewSnapshotFromString("héllo\nwörld")

	tests := []struct {
		pos    Position
		offset int
	}{
		{NewPosition(0, 0), 0},
		{NewPosition(0, 5), 5},
		{NewPosition(1, 0), 6},
		{NewPosition(1, 5), 11},
	}

	for _, tt := range tests {
		if got := snap.OffsetAt(tt.pos); got != tt.offset {
			t.Errorf("OffsetAt(%s) = %d, want %d", tt.pos, got, tt.offset)
		}
		if got := snap.PositionAt(tt.offset); !got.IsEqual(tt.pos) {
			t.Errorf("PositionAt(%d) = %s, want %s", tt.offset, got, tt.pos)
		}
	}

	if got := snap.PositionAt(100); !got.IsEqual(NewPosition(1, 5)) {
		t.Errorf("offset past end should clamp, got %s", got)
	}
	if snap.Len() != 11 {
		t.Errorf("expected length 11, got %d", snap.Len())
	}
}

func TestGetText(t *testing.T) {
	snap := NewSnapshotFromString("abc\ndef\nghi")

	if got := snap.GetText(NewRangeAt(0, 1, 0, 3)); got != "bc" {
		t.Errorf("expected bc, got %q", got)
	}
	if got := snap.GetText(NewRangeAt(0, 2, 2, 1)); got != "c\ndef\ng" {
		t.Errorf("expected multi-line text, got %q", got)
	}
	if got := snap.GetText(snap.FullRange()); got != "abc\ndef\nghi" {
		t.Errorf("full range mismatch: %q", got)
	}
}

func TestRuneAt(t *testing.T) {
	snap := NewSnapshotFromString("ab\nc")

	want := []struct {
		r  rune
		ok bool
	}{{'a', true}, {'b', true}, {'\n', true}, {'c', true}, {0, false}}

	for i, w := range want {
		r, ok := snap.RuneAt(i)
		if ok != w.ok || (ok && r != w.r) {
			t.Errorf("RuneAt(%d) = %q,%v want %q,%v", i, r, ok, w.r, w.ok)
		}
	}
}

func TestGetWordRangeAtPosition(t *testing.T) {
	snap := NewSnapshotFromString("foo_bar, baz-qux  x")

	tests := []struct {
		name string
		char int
		want Range
		ok   bool
	}{
		{"inside", 2, NewRangeAt(0, 0, 0, 7), true},
		{"word end", 7, NewRangeAt(0, 0, 0, 7), true},
		{"separator", 8, Range{}, false},
		{"hyphen start", 9, NewRangeAt(0, 9, 0, 12), true},
		{"after hyphen", 13, NewRangeAt(0, 13, 0, 16), true},
		{"double space", 17, Range{}, false},
		{"single letter", 18, NewRangeAt(0, 18, 0, 19), true},
		{"line end", 19, NewRangeAt(0, 18, 0, 19), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := snap.GetWordRangeAtPosition(NewPosition(0, tt.char))
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if ok && !got.IsEqual(tt.want) {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestBufferApplyEdits(t *testing.T) {
	b := NewBufferFromString("Hello World")

	err := b.ApplyEdits([]Edit{
		NewInsert(NewPosition(0, 5), ","),
		NewEdit(NewRangeAt(0, 6, 0, 11), "Go"),
	})
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}

	if b.Text() != "Hello, Go" {
		t.Errorf("expected 'Hello, Go', got %q", b.Text())
	}
}

func TestBufferApplyEditsKeepsInsertOrder(t *testing.T) {
	b := NewBufferFromString("ac")

	err := b.ApplyEdits([]Edit{
		NewInsert(NewPosition(0, 1), "b"),
		NewInsert(NewPosition(0, 1), "B"),
	})
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}
	if b.Text() != "abBc" {
		t.Errorf("expected abBc, got %q", b.Text())
	}
}

func TestBufferApplyEditsOverlap(t *testing.T) {
	b := NewBufferFromString("Hello World")

	err := b.ApplyEdits([]Edit{
		NewDelete(NewRangeAt(0, 0, 0, 5)),
		NewDelete(NewRangeAt(0, 3, 0, 8)),
	})
	if !errors.Is(err, ErrEditsOverlap) {
		t.Errorf("expected ErrEditsOverlap, got %v", err)
	}
	if b.Text() != "Hello World" {
		t.Error("buffer must be unchanged after a rejected batch")
	}
}

func TestBufferApplyEditsOutOfRange(t *testing.T) {
	b := NewBufferFromString("abc")

	err := b.Insert(NewPosition(0, 10), "x")
	if !errors.Is(err, ErrPositionOutOfRange) {
		t.Errorf("expected ErrPositionOutOfRange, got %v", err)
	}
}

func TestBufferMultilineEdit(t *testing.T) {
	b := NewBufferFromString("one\ntwo\nthree")

	if err := b.Delete(NewRangeAt(0, 3, 1, 3)); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if b.Text() != "one\nthree" {
		t.Errorf("unexpected text %q", b.Text())
	}

	if err := b.Replace(NewRangeAt(1, 0, 1, 5), "2\n3"); err != nil {
		t.Fatalf("replace failed: %v", err)
	}
	if b.LineCount() != 3 {
		t.Errorf("expected 3 lines, got %d", b.LineCount())
	}
}

func TestBufferSnapshotIsolation(t *testing.T) {
	b := NewBufferFromString("Hello")
	snap := b.Snapshot()

	if err := b.Insert(NewPosition(0, 5), " World"); err != nil {
		t.Fatalf("insert failed: %v", err)
	}

	if snap.Text() != "Hello" {
		t.Errorf("snapshot should not change, got %q", snap.Text())
	}
	if snap.RevisionID() == b.RevisionID() {
		t.Error("revision should advance after an edit")
	}
}

func TestBufferLineEndingNormalization(t *testing.T) {
	b, err := NewBufferFromReader(strings.NewReader("a\r\nb\r\nc"))
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}

	if b.Text() != "a\nb\nc" {
		t.Errorf("expected LF text, got %q", b.Text())
	}
	if b.LineEnding() != LineEndingCRLF {
		t.Errorf("expected CRLF detection, got %s", b.LineEnding())
	}
	if b.Export() != "a\r\nb\r\nc" {
		t.Errorf("export should restore CRLF, got %q", b.Export())
	}
}

func TestDetectLineEnding(t *testing.T) {
	tests := []struct {
		text string
		want LineEnding
	}{
		{"no breaks", LineEndingLF},
		{"a\nb\n", LineEndingLF},
		{"a\r\nb\r\n", LineEndingCRLF},
		{"a\rb\r", LineEndingCR},
	}

	for _, tt := range tests {
		if got := DetectLineEnding(tt.text); got != tt.want {
			t.Errorf("DetectLineEnding(%q) = %s, want %s", tt.text, got, tt.want)
		}
	}
}

func TestBufferConcurrentRead(t *testing.T) {
	b := NewBufferFromString(strings.Repeat("line\n", 100))

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			snap := b.Snapshot()
			for j := 0; j < snap.LineCount(); j++ {
				_ = snap.LineAt(j)
			}
		}()
	}
	wg.Wait()
}

func TestRangeOperations(t *testing.T) {
	r := NewRange(NewPosition(1, 4), NewPosition(0, 2))
	if !r.Start.IsEqual(NewPosition(0, 2)) {
		t.Error("NewRange should order its arguments")
	}

	if !r.Contains(NewPosition(1, 4)) {
		t.Error("Contains should include the end boundary")
	}
	if r.ContainsStrict(NewPosition(1, 4)) {
		t.Error("ContainsStrict should exclude the end boundary")
	}

	u := r.Union(NewRangeAt(1, 0, 2, 0))
	if !u.IsEqual(NewRangeAt(0, 2, 2, 0)) {
		t.Errorf("unexpected union %s", u)
	}

	if _, ok := NewRangeAt(0, 0, 0, 1).Intersection(NewRangeAt(0, 3, 0, 4)); ok {
		t.Error("disjoint ranges should not intersect")
	}
}

func TestBufferApplyEditsAtStaleRevision(t *testing.T) {
	b := NewBufferFromString("abc")
	rev := b.RevisionID()

	if err := b.Insert(NewPosition(0, 0), "x"); err != nil {
		t.Fatalf("insert failed: %v", err)
	}

	err := b.ApplyEditsAt(rev, []Edit{NewDelete(NewRangeAt(0, 0, 0, 1))})
	if !errors.Is(err, ErrStaleRevision) {
		t.Errorf("expected ErrStaleRevision, got %v", err)
	}
	if b.Text() != "xabc" {
		t.Errorf("stale batch must not apply, got %q", b.Text())
	}
}
