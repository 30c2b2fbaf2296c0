package subjectio

import (
	"iter"

	"github.com/dshills/textsubject/internal/engine/buffer"
)

// wordStride is how far the word probe advances. Every word touches at
// least two consecutive positions (its start and its end), so probing every
// other position finds all of them.
const wordStride = 2

// WordIO treats the document's words as objects.
type WordIO struct {
	base
}

// NewWordIO creates a word strategy.
func NewWordIO() *WordIO {
	w := &WordIO{}
	w.base = newBase(w, `[\s,;]+`, " ")
	return w
}

// GetContainingObjectAt returns the word at pos.
func (w *WordIO) GetContainingObjectAt(doc Document, pos Position) (Range, bool) {
	return doc.GetWordRangeAtPosition(pos)
}

// IterAll yields words in document order.
func (w *WordIO) IterAll(doc Document, opts IterationOptions) iter.Seq[Range] {
	return iterByLine(doc, opts, wordsOnLine)
}

// IterHorizontally is IterAll.
func (w *WordIO) IterHorizontally(doc Document, opts IterationOptions) iter.Seq[Range] {
	return w.IterAll(doc, opts)
}

// IterVertically yields, for each following line that has words, the word
// closest to the starting column.
func (w *WordIO) IterVertically(doc Document, opts IterationOptions) iter.Seq[Range] {
	return iterByColumn(doc, opts, wordsOnLine)
}

// IterScope yields the words of the starting line.
func (w *WordIO) IterScope(doc Document, opts IterationOptions) iter.Seq[Range] {
	return objectsOnLine(doc, opts, wordsOnLine)
}

// wordsOnLine probes the line with the document's word query.
func wordsOnLine(doc Document, n int) []Range {
	l := doc.LineAt(n)
	if isStopLine(l) {
		return nil
	}

	var words []Range
	for col := 0; col <= l.Len(); col += wordStride {
		r, ok := doc.GetWordRangeAtPosition(buffer.NewPosition(n, col))
		if !ok {
			continue
		}
		if len(words) > 0 && words[len(words)-1].IsEqual(r) {
			continue
		}
		words = append(words, r)
	}
	return words
}
