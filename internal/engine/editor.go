package engine

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/dshills/textsubject/internal/engine/buffer"
	"github.com/dshills/textsubject/internal/engine/cursor"
	"github.com/dshills/textsubject/internal/logging"
)

// Re-export commonly used types for convenience.
type (
	// Position is a line/character location.
	Position = buffer.Position

	// Range is a start-ordered span.
	Range = buffer.Range

	// Selection is an anchor/active pair.
	Selection = cursor.Selection
)

// DecorationType identifies one family of decorations, for example the
// highlight of the current subject. ID is unique per created type.
type DecorationType struct {
	ID   string
	Name string
}

// Editor is an in-memory text editor.
// All operations are thread-safe.
type Editor struct {
	mu sync.RWMutex

	buf        *buffer.Buffer
	selections []Selection

	decorationTypes map[string]DecorationType
	decorations     map[string][]Range

	viewportTop    int
	viewportHeight int
	readOnly       bool

	log *logging.Logger
}

// New creates a new Editor with the given options.
// The editor starts with a single caret at the beginning of the document.
func New(opts ...Option) *Editor {
	e := &Editor{
		buf:             buffer.NewBuffer(),
		selections:      []Selection{cursor.NewCaret(Position{})},
		decorationTypes: make(map[string]DecorationType),
		decorations:     make(map[string][]Range),
		viewportHeight:  DefaultViewportHeight,
		log:             logging.Null(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Buffer returns the underlying buffer.
func (e *Editor) Buffer() *buffer.Buffer {
	return e.buf
}

// Document returns a snapshot of the current document.
func (e *Editor) Document() buffer.Document {
	return e.buf.Snapshot()
}

// Snapshot returns the current snapshot with its concrete type.
func (e *Editor) Snapshot() *buffer.Snapshot {
	return e.buf.Snapshot()
}

// Text returns the full document text.
func (e *Editor) Text() string {
	return e.buf.Text()
}

// Selections returns a copy of the current selections.
func (e *Editor) Selections() []Selection {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return slices.Clone(e.selections)
}

// Selection returns the primary selection.
func (e *Editor) Selection() Selection {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.selections[0]
}

// SetSelections replaces all selections. Positions are clamped into the
// document; an empty slice leaves a caret at the document start.
func (e *Editor) SetSelections(sels []Selection) {
	snap := e.buf.Snapshot()

	clamped := make([]Selection, 0, len(sels))
	for _, sel := range sels {
		clamped = append(clamped, cursor.NewSelection(
			snap.ValidatePosition(sel.Anchor),
			snap.ValidatePosition(sel.Active),
		))
	}
	if len(clamped) == 0 {
		clamped = []Selection{cursor.NewCaret(Position{})}
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.selections = clamped
}

// CreateDecorationType registers a new decoration family.
func (e *Editor) CreateDecorationType(name string) DecorationType {
	dt := DecorationType{ID: uuid.NewString(), Name: name}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.decorationTypes[dt.ID] = dt
	return dt
}

// SetDecorations replaces the ranges shown for a decoration type.
func (e *Editor) SetDecorations(dt DecorationType, ranges []Range) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if _, ok := e.decorationTypes[dt.ID]; !ok {
		e.decorationTypes[dt.ID] = dt
	}
	e.decorations[dt.ID] = slices.Clone(ranges)
}

// Decorations returns the ranges currently shown for a decoration type.
func (e *Editor) Decorations(dt DecorationType) []Range {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return slices.Clone(e.decorations[dt.ID])
}

// RevealRange scrolls the viewport the minimum amount needed to show the
// start of r.
func (e *Editor) RevealRange(r Range) {
	e.mu.Lock()
	defer e.mu.Unlock()

	line := r.Start.Line
	switch {
	case line < e.viewportTop:
		e.viewportTop = line
	case line >= e.viewportTop+e.viewportHeight:
		e.viewportTop = line - e.viewportHeight + 1
	}
}

// VisibleRanges returns the lines currently in the viewport.
func (e *Editor) VisibleRanges() []Range {
	snap := e.buf.Snapshot()

	e.mu.RLock()
	top, height := e.viewportTop, e.viewportHeight
	e.mu.RUnlock()

	last := min(top+height, snap.LineCount()) - 1
	if last < top {
		return nil
	}
	return []Range{buffer.NewRange(
		Position{Line: top},
		snap.LineAt(last).Range.End,
	)}
}

// Edit runs fn to collect edits and applies them atomically.
// Existing selections are transformed through the applied edits.
func (e *Editor) Edit(fn func(buffer.EditBuilder)) error {
	if e.readOnly {
		return ErrReadOnly
	}

	snap := e.buf.Snapshot()
	b := &editBuilder{}
	fn(b)
	if len(b.edits) == 0 {
		return nil
	}

	if err := e.buf.ApplyEditsAt(snap.RevisionID(), b.edits); err != nil {
		if errors.Is(err, buffer.ErrStaleRevision) {
			return ErrStaleEdit
		}
		return fmt.Errorf("applying %d edits: %w", len(b.edits), err)
	}
	e.log.Debug("applied %d edits", len(b.edits))

	e.transformSelections(snap, b.edits)
	return nil
}

// transformSelections maps every selection from the pre-edit snapshot onto
// the current document.
func (e *Editor) transformSelections(before *buffer.Snapshot, edits []buffer.Edit) {
	offsetEdits := make([]cursor.OffsetEdit, len(edits))
	for i, ed := range edits {
		offsetEdits[i] = cursor.OffsetEdit{
			Start:   before.OffsetAt(ed.Range.Start),
			End:     before.OffsetAt(ed.Range.End),
			TextLen: len([]rune(ed.NewText)),
		}
	}

	after := e.buf.Snapshot()
	mapPos := func(p Position) Position {
		return after.PositionAt(cursor.TransformOffset(before.OffsetAt(p), offsetEdits))
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	for i, sel := range e.selections {
		e.selections[i] = cursor.NewSelection(mapPos(sel.Anchor), mapPos(sel.Active))
	}
}

// editBuilder records the edits of one transaction.
type editBuilder struct {
	edits []buffer.Edit
}

func (b *editBuilder) Delete(r Range) {
	b.edits = append(b.edits, buffer.NewDelete(r))
}

func (b *editBuilder) Insert(p Position, text string) {
	b.edits = append(b.edits, buffer.NewInsert(p, text))
}

func (b *editBuilder) Replace(r Range, text string) {
	b.edits = append(b.edits, buffer.NewEdit(r, text))
}
