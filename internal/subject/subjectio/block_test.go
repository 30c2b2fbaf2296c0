package subjectio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/textsubject/internal/engine/buffer"
)

func TestBlockContainingObject(t *testing.T) {
	b := NewBlockIO()

	tests := []struct {
		name string
		text string
		pos  Position
		want string
		ok   bool
	}{
		{"body line", "if x:\n  a\n  b\ny", at(1, 2), "if x:\n  a\n  b", true},
		{"header line", "if x:\n  a\n  b\ny", at(0, 1), "if x:\n  a\n  b", true},
		{"nested", "def f():\n  if x:\n    y\n  z", at(2, 4), "if x:\n    y", true},
		{"outer from nested indentation", "def f():\n  if x:\n    y\n  z", at(1, 0), "def f():\n  if x:\n    y\n  z", true},
		{"closing stop line ends block", "func f() {\n  x\n}\ng()", at(1, 2), "func f() {\n  x", true},
		{"paragraph", "foo()\nbar()\n\nbaz()", at(1, 0), "foo()\nbar()", true},
		{"stop line outside blocks", "a:\n  b\n---", at(2, 1), "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := snap(tt.text)
			got, ok := textAt(b, doc, tt.pos)
			require.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBlockContainingRange(t *testing.T) {
	doc := snap("if x:\n  a\n  b\ny")

	r, ok := NewBlockIO().GetContainingObjectAt(doc, at(1, 2))
	require.True(t, ok)
	assert.Equal(t, rng(0, 0, 2, 3), r)
}

func TestLineIsBlockStart(t *testing.T) {
	line := func(text string) buffer.Line {
		return snap(text).LineAt(0)
	}
	ptr := func(l buffer.Line) *buffer.Line { return &l }

	assert.True(t, lineIsBlockStart(nil, line("a")))
	assert.True(t, lineIsBlockStart(ptr(line("}")), line("b")))
	assert.True(t, lineIsBlockStart(ptr(line("a")), line("  b")))
	assert.False(t, lineIsBlockStart(ptr(line("a")), line("b")))
	assert.False(t, lineIsBlockStart(nil, line("  )")))
}

func TestBlockIterVertically(t *testing.T) {
	b := NewBlockIO()
	doc := snap("if x:\n  a\nelse:\n  b\n\nz")

	assert.Equal(t,
		[]string{"else:\n  b", "z"},
		texts(doc, b.IterVertically(doc, forwards(at(0, 0)))),
	)
	assert.Equal(t,
		[]string{"else:\n  b", "if x:\n  a"},
		texts(doc, b.IterVertically(doc, backwards(at(5, 0)))),
	)
}

func TestBlockIterHorizontally(t *testing.T) {
	b := NewBlockIO()
	doc := snap("def f():\n  if x:\n    y\n  z")

	assert.Equal(t,
		[]string{"if x:\n    y"},
		texts(doc, b.IterHorizontally(doc, forwards(at(0, 0)))),
	)
	assert.Equal(t,
		[]string{"def f():\n  if x:\n    y\n  z"},
		texts(doc, b.IterHorizontally(doc, backwards(at(2, 4)))),
	)
}

func TestBlockDelete(t *testing.T) {
	b := NewBlockIO()
	text := "a:\n  x\n\nb:\n  y"

	t.Run("through to next sibling", func(t *testing.T) {
		got, _ := applyEdit(t, text, func(doc Document, eb EditBuilder) (Placement, error) {
			return b.DeleteObject(doc, eb, rng(0, 0, 1, 3))
		})
		assert.Equal(t, "b:\n  y", got)
	})

	t.Run("from previous sibling", func(t *testing.T) {
		got, _ := applyEdit(t, text, func(doc Document, eb EditBuilder) (Placement, error) {
			return b.DeleteObject(doc, eb, rng(3, 0, 4, 3))
		})
		assert.Equal(t, "a:\n  x", got)
	})

	t.Run("only block", func(t *testing.T) {
		got, _ := applyEdit(t, "a:\n  x", func(doc Document, eb EditBuilder) (Placement, error) {
			return b.DeleteObject(doc, eb, rng(0, 0, 1, 3))
		})
		assert.Equal(t, "", got)
	})
}

func TestBlockDuplicateThenDelete(t *testing.T) {
	b := NewBlockIO()

	tests := []struct {
		name   string
		text   string
		obj    Range
		copied string
	}{
		{"single line", "foo bar", rng(0, 0, 0, 7), "foo bar\n\nfoo bar"},
		{"with sibling", "if x:\n  a\ny:\n  b", rng(0, 0, 1, 3), "if x:\n  a\nif x:\n  a\ny:\n  b"},
		{"nested", "a:\n  b:\n    x\nc", rng(1, 2, 2, 5), "a:\n  b:\n    x\n\n  b:\n    x\nc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cp Placement
			text, copied := applyEdit(t, tt.text, func(doc Document, eb EditBuilder) (Placement, error) {
				p, err := b.Duplicate(doc, eb, tt.obj)
				cp = p
				return p, err
			})
			assert.Equal(t, tt.copied, text)
			assert.Equal(t, snap(tt.text).GetText(tt.obj), copied)

			doc := snap(text)
			obj, ok := b.GetContainingObjectAt(doc, cp.Resolve(doc).Start)
			require.True(t, ok)
			assert.Equal(t, cp.Resolve(doc), obj, "copy is a block of its own")

			restored, _ := applyEdit(t, text, func(doc Document, eb EditBuilder) (Placement, error) {
				return b.DeleteObject(doc, eb, cp.Resolve(doc))
			})
			assert.Equal(t, tt.text, restored)
		})
	}
}
