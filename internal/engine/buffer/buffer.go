package buffer

import (
	"errors"
	"io"
	"slices"
	"strings"
	"sync"
)

// Errors returned by buffer operations.
var (
	ErrPositionOutOfRange = errors.New("position out of range")
	ErrRangeInvalid       = errors.New("invalid range")
	ErrEditsOverlap       = errors.New("edits overlap")
	ErrStaleRevision      = errors.New("buffer changed since the edits were computed")
)

// LineEnding specifies the line ending style.
type LineEnding uint8

const (
	LineEndingLF   LineEnding = iota // Unix: \n
	LineEndingCRLF                   // Windows: \r\n
	LineEndingCR                     // Old Mac: \r
)

// String returns the string representation of the line ending.
func (le LineEnding) String() string {
	switch le {
	case LineEndingCRLF:
		return "\\r\\n"
	case LineEndingCR:
		return "\\r"
	default:
		return "\\n"
	}
}

// Sequence returns the actual line ending characters.
func (le LineEnding) Sequence() string {
	switch le {
	case LineEndingCRLF:
		return "\r\n"
	case LineEndingCR:
		return "\r"
	default:
		return "\n"
	}
}

// Buffer is a mutable text document.
// Text is held as immutable line slices so snapshots can share them.
// All methods are thread-safe.
type Buffer struct {
	mu         sync.RWMutex
	snap       *Snapshot
	lineEnding LineEnding
}

// NewBuffer creates a new empty buffer.
func NewBuffer(opts ...Option) *Buffer {
	b := &Buffer{
		snap:       &Snapshot{lines: [][]rune{{}}, revisionID: NewRevisionID()},
		lineEnding: LineEndingLF,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// NewBufferFromString creates a buffer with initial content.
// Line endings are normalized to LF internally; the buffer remembers its
// configured style for Export.
func NewBufferFromString(s string, opts ...Option) *Buffer {
	b := NewBuffer(opts...)
	b.snap = &Snapshot{
		lines:      splitLines(normalizeLineEndings(s, LineEndingLF)),
		revisionID: NewRevisionID(),
	}
	return b
}

// NewBufferFromReader creates a buffer from an io.Reader.
// The line ending style is detected from the content.
func NewBufferFromReader(r io.Reader, opts ...Option) (*Buffer, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	text := string(data)
	opts = append([]Option{WithDetectedLineEnding(text)}, opts...)
	return NewBufferFromString(text, opts...), nil
}

// normalizeLineEndings converts all line endings to the given style.
func normalizeLineEndings(s string, le LineEnding) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	if le != LineEndingLF {
		s = strings.ReplaceAll(s, "\n", le.Sequence())
	}
	return s
}

// Snapshot returns a read-only snapshot of the current buffer state.
func (b *Buffer) Snapshot() *Snapshot {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.snap
}

// Text returns the full buffer content with LF line breaks.
func (b *Buffer) Text() string {
	return b.Snapshot().Text()
}

// Export returns the buffer content using the buffer's line ending style.
func (b *Buffer) Export() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return normalizeLineEndings(b.snap.Text(), b.lineEnding)
}

// LineCount returns the number of lines.
func (b *Buffer) LineCount() int {
	return b.Snapshot().LineCount()
}

// RevisionID returns the current revision ID.
func (b *Buffer) RevisionID() RevisionID {
	return b.Snapshot().RevisionID()
}

// LineEnding returns the buffer's line ending style.
func (b *Buffer) LineEnding() LineEnding {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.lineEnding
}

// ApplyEdit applies a single edit to the buffer.
func (b *Buffer) ApplyEdit(edit Edit) error {
	return b.ApplyEdits([]Edit{edit})
}

// ApplyEdits applies multiple edits atomically.
// All ranges refer to the text before any of the edits is applied. Edits
// must not overlap; several insertions at the same position keep the order
// in which they were given.
func (b *Buffer) ApplyEdits(edits []Edit) error {
	return b.ApplyEditsAt(0, edits)
}

// ApplyEditsAt is ApplyEdits guarded by a revision check: when rev is
// non-zero and the buffer has moved past it, ErrStaleRevision is returned
// and nothing is applied.
func (b *Buffer) ApplyEditsAt(rev RevisionID, edits []Edit) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	snap := b.snap
	if rev != 0 && rev != snap.revisionID {
		return ErrStaleRevision
	}
	if len(edits) == 0 {
		return nil
	}
	resolved := make([]offsetEdit, 0, len(edits))
	for i, e := range edits {
		if !e.Range.IsValid() {
			return ErrRangeInvalid
		}
		if !snap.ValidatePosition(e.Range.Start).IsEqual(e.Range.Start) ||
			!snap.ValidatePosition(e.Range.End).IsEqual(e.Range.End) {
			return ErrPositionOutOfRange
		}
		if e.IsNoOp() {
			continue
		}
		resolved = append(resolved, offsetEdit{
			start: snap.OffsetAt(e.Range.Start),
			end:   snap.OffsetAt(e.Range.End),
			text:  []rune(normalizeLineEndings(e.NewText, LineEndingLF)),
			seq:   i,
		})
	}

	// Highest offset first; later insertions at a shared offset go first so
	// that the earlier one ends up in front.
	slices.SortFunc(resolved, func(x, y offsetEdit) int {
		if x.start != y.start {
			return y.start - x.start
		}
		return y.seq - x.seq
	})
	for i := 1; i < len(resolved); i++ {
		if resolved[i].end > resolved[i-1].start {
			return ErrEditsOverlap
		}
	}

	text := []rune(snap.Text())
	for _, e := range resolved {
		text = slices.Concat(text[:e.start], e.text, text[e.end:])
	}

	b.snap = &Snapshot{
		lines:      splitLines(string(text)),
		revisionID: NewRevisionID(),
	}
	return nil
}

// Insert inserts text at the given position.
func (b *Buffer) Insert(p Position, text string) error {
	return b.ApplyEdit(NewInsert(p, text))
}

// Delete removes the text in r.
func (b *Buffer) Delete(r Range) error {
	return b.ApplyEdit(NewDelete(r))
}

// Replace replaces the text in r.
func (b *Buffer) Replace(r Range, text string) error {
	return b.ApplyEdit(NewEdit(r, text))
}
