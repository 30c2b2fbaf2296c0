// Package cursor provides selection values for text editing.
//
// Selections use an anchor/active model where:
//   - Anchor: the position where the selection started
//   - Active: the moving end (where the caret is drawn)
//
// When Anchor == Active the selection is a caret. Selections may be
// reversed (active before anchor); Range always reports a start-ordered span.
//
// Multi-selection helpers keep a slice of selections sorted and merge the
// ones that overlap, which is how additive movement accumulates selections
// without duplicates. TransformOffset maps offsets through a batch of edits
// so an editor can keep unrelated selections in place after a transaction.
//
// Selection is an immutable value type and safe for concurrent use.
package cursor
