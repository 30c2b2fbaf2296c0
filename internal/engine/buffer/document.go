package buffer

// Document is the read-only query surface of a text document.
// Snapshot implements it; hosts embedding the subject model can supply
// their own implementation.
type Document interface {
	LineAt(n int) Line
	LineCount() int
	GetText(r Range) string
	OffsetAt(p Position) int
	PositionAt(offset int) Position
	GetWordRangeAtPosition(p Position) (Range, bool)
}

// EditBuilder collects the edits of one transaction. All ranges refer to
// the document as it was when the transaction started; the host applies
// the collected edits atomically.
type EditBuilder interface {
	Delete(r Range)
	Insert(p Position, text string)
	Replace(r Range, text string)
}

var _ Document = (*Snapshot)(nil)
