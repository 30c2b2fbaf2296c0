// Package subjectio implements the text-object strategies behind subjects.
//
// A strategy answers two questions about a document: which object contains
// a position, and which objects follow it in a direction. Seven strategies
// are provided:
//
//   - WordIO: words as reported by the document's word-range query
//   - SubwordIO: camel-case and operator runs inside a line
//   - InterwordIO: the punctuation and whitespace runs between words
//   - LineIO: lines without their indentation
//   - BlockIO: a header line plus the more-indented lines beneath it
//   - BracketIO: matched (), [] and {} pairs
//   - CharIO: single characters
//
// Every strategy implements four primitives (GetContainingObjectAt,
// IterAll, IterHorizontally, IterVertically) plus IterScope. The shared
// base builds closest-object lookup, separator detection, skipping and the
// delete, duplicate, insert and swap edits on top of them, so a strategy
// only overrides what its structure demands.
//
// Iteration:
//
// Iterators are lazy iter.Seq values computed against the document they
// were created with. Callers usually take the first result and abandon the
// rest. A forwards iteration never yields an object starting at the
// starting position (or before it) unless CurrentInclusive is set;
// backwards iteration mirrors this.
//
// Edits:
//
// Editing methods describe their changes to an EditBuilder in pre-edit
// coordinates and return a Placement in post-edit rune offsets, resolved by
// the caller once the host has applied the transaction.
package subjectio
