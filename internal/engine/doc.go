// Package engine provides an in-memory text editor for the subject model.
//
// The Editor combines a buffer, a selection set, decoration storage and a
// viewport into the surface the subject layer drives: it hands out
// document snapshots, reads and replaces selections, and applies edit
// transactions atomically.
//
// # Architecture
//
// The editor is built on two sub-packages:
//
//   - buffer: position vocabulary, immutable snapshots, atomic edit batches
//   - cursor: selection values, multi-selection normalization and offset
//     transformation
//
// # Edit Transactions
//
// Edit runs a callback with an EditBuilder. Every range given to the
// builder refers to the document as it was when Edit was called. The
// collected edits are applied in one batch; if another writer changed the
// buffer in between, the transaction fails with ErrStaleEdit and nothing is
// applied. Selections that are not replaced by the caller are carried
// through the edit.
//
// # Basic Usage
//
//	e := engine.New(engine.WithContent("foo bar"))
//	e.SetSelections([]cursor.Selection{cursor.NewCaret(buffer.NewPosition(0, 4))})
//
//	err := e.Edit(func(b buffer.EditBuilder) {
//	    b.Insert(buffer.NewPosition(0, 0), "// ")
//	})
//
// # Thread Safety
//
// All Editor methods are thread-safe. Snapshots returned by Document never
// change; positions computed from one are stale after the next edit.
package engine
