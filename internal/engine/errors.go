package engine

import "errors"

// Errors returned by editor operations.
var (
	// ErrStaleEdit indicates the buffer changed while a transaction was being built.
	ErrStaleEdit = errors.New("edit computed against a stale document")

	// ErrReadOnly indicates an edit was attempted on a read-only editor.
	ErrReadOnly = errors.New("editor is read-only")
)
