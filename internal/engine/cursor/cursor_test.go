package cursor

import (
	"testing"

	"github.com/dshills/textsubject/internal/engine/buffer"
)

func pos(line, char int) Position {
	return buffer.NewPosition(line, char)
}

func TestNewCaret(t *testing.T) {
	sel := NewCaret(pos(1, 2))
	if !sel.IsEmpty() {
		t.Error("caret should be empty")
	}
	if !sel.Start().IsEqual(pos(1, 2)) || !sel.End().IsEqual(pos(1, 2)) {
		t.Errorf("unexpected caret bounds %s", sel)
	}
}

func TestSelectionRange(t *testing.T) {
	tests := []struct {
		name string
		sel  Selection
		want Range
	}{
		{"forward", NewSelection(pos(0, 1), pos(0, 4)), buffer.NewRangeAt(0, 1, 0, 4)},
		{"reversed", NewSelection(pos(2, 0), pos(0, 4)), buffer.NewRangeAt(0, 4, 2, 0)},
		{"caret", NewCaret(pos(3, 3)), buffer.NewRangeAt(3, 3, 3, 3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.sel.Range(); !got.IsEqual(tt.want) {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestSelectionDirection(t *testing.T) {
	fwd := NewSelection(pos(0, 0), pos(0, 5))
	if fwd.IsReversed() {
		t.Error("forward selection reported as reversed")
	}

	back := fwd.Flip()
	if !back.IsReversed() {
		t.Error("flipped selection should be reversed")
	}
	if !back.Normalize().Equals(fwd) {
		t.Error("normalize should restore the forward selection")
	}
	if !back.SameRange(fwd) {
		t.Error("flipped selection covers the same range")
	}
}

func TestSelectionOverlaps(t *testing.T) {
	a := NewSelection(pos(0, 0), pos(0, 5))

	tests := []struct {
		name  string
		other Selection
		want  bool
	}{
		{"inside", NewSelection(pos(0, 1), pos(0, 2)), true},
		{"touching", NewSelection(pos(0, 5), pos(0, 8)), false},
		{"disjoint", NewSelection(pos(1, 0), pos(1, 2)), false},
		{"identical", a.Flip(), true},
	}

	for _, tt := range tests {
		if got := a.Overlaps(tt.other); got != tt.want {
			t.Errorf("%s: Overlaps = %v, want %v", tt.name, got, tt.want)
		}
	}

	if !NewCaret(pos(0, 3)).Overlaps(NewCaret(pos(0, 3))) {
		t.Error("identical carets should overlap")
	}
}

func TestNormalize(t *testing.T) {
	sels := []Selection{
		NewSelection(pos(2, 0), pos(2, 3)),
		NewSelection(pos(0, 0), pos(0, 3)),
		NewSelection(pos(0, 2), pos(0, 6)),
		NewSelection(pos(0, 6), pos(0, 9)),
	}

	got := Normalize(sels)
	want := []Selection{
		NewSelection(pos(0, 0), pos(0, 6)),
		NewSelection(pos(0, 6), pos(0, 9)),
		NewSelection(pos(2, 0), pos(2, 3)),
	}

	if !EqualSets(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if !sels[0].Equals(NewSelection(pos(2, 0), pos(2, 3))) {
		t.Error("Normalize must not modify its input")
	}
}

func TestAppendDropsDuplicates(t *testing.T) {
	sels := []Selection{NewSelection(pos(0, 0), pos(0, 3))}
	got := Append(sels, NewSelection(pos(0, 0), pos(0, 3)), NewSelection(pos(1, 0), pos(1, 1)))

	if len(got) != 2 {
		t.Fatalf("expected 2 selections, got %d", len(got))
	}
	if len(sels) != 1 {
		t.Error("Append must not modify its input")
	}
}

func TestTransformOffset(t *testing.T) {
	tests := []struct {
		name   string
		offset int
		edits  []OffsetEdit
		want   int
	}{
		{"insert before", 10, []OffsetEdit{{Start: 2, End: 2, TextLen: 3}}, 13},
		{"insert at", 10, []OffsetEdit{{Start: 10, End: 10, TextLen: 3}}, 10},
		{"insert after", 10, []OffsetEdit{{Start: 12, End: 12, TextLen: 3}}, 10},
		{"delete before", 10, []OffsetEdit{{Start: 2, End: 5}}, 7},
		{"delete ending at", 10, []OffsetEdit{{Start: 6, End: 10}}, 6},
		{"delete spanning", 10, []OffsetEdit{{Start: 8, End: 12}}, 8},
		{"replace spanning", 10, []OffsetEdit{{Start: 8, End: 12, TextLen: 1}}, 9},
		{"batch", 10, []OffsetEdit{{Start: 0, End: 1}, {Start: 5, End: 5, TextLen: 4}, {Start: 20, End: 25}}, 13},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TransformOffset(tt.offset, tt.edits); got != tt.want {
				t.Errorf("got %d, want %d", got, tt.want)
			}
		})
	}
}
