// Package buffer provides the text document the subject model runs against.
//
// The buffer package provides:
//
//   - Position and Range, the line/character vocabulary shared by every
//     other package (characters are counted in runes)
//   - Snapshot, an immutable view of one revision that answers line
//     queries, offset conversion and word-range lookups
//   - Buffer, a thread-safe mutable document that applies batches of
//     edits atomically and hands out snapshots
//   - Line ending detection and normalization
//
// Basic usage:
//
//	buf := buffer.NewBufferFromString("if x:\n  a\n")
//	snap := buf.Snapshot()
//	line := snap.LineAt(1) // line.FirstNonWhitespaceCharacterIndex == 2
//
//	err := buf.ApplyEdits([]buffer.Edit{
//	    buffer.NewInsert(buffer.NewPosition(1, 3), "b"),
//	})
//
// Offsets:
//
// Document offsets count runes and treat the line break as a single
// character. Input text is normalized to LF on load; Export restores the
// detected or configured style.
//
// Words:
//
// GetWordRangeAtPosition segments a line with Unicode word boundaries
// (github.com/rivo/uniseg) and keeps segments that contain a letter, digit
// or underscore.
package buffer
