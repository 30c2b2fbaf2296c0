package subjectio

import (
	"iter"
	"unicode"

	"github.com/dshills/textsubject/internal/engine/buffer"
)

// charClass tags one character for run splitting.
type charClass uint8

const (
	classWhitespace charClass = iota
	classWordStart
	classWordCont
	classOperator
	classWord
)

// subwordClass splits camel case: an upper case letter starts a word and
// lower case letters, digits and underscores continue it.
func subwordClass(r rune) charClass {
	switch {
	case unicode.IsSpace(r):
		return classWhitespace
	case unicode.IsUpper(r):
		return classWordStart
	case r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r):
		return classWordCont
	default:
		return classOperator
	}
}

// interwordClass only tells words from everything else.
func interwordClass(r rune) charClass {
	if r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) {
		return classWord
	}
	return classOperator
}

// splitRuns splits text into runs of equal class, starting at column from.
// A run continues across a class change only when join allows it.
func splitRuns(text string, from int, class func(rune) charClass, join func(prev, cur charClass) bool) []SubTextRange {
	runes := []rune(text)
	var runs []SubTextRange
	start := from
	for i := from + 1; i <= len(runes); i++ {
		if i < len(runes) {
			prev, cur := class(runes[i-1]), class(runes[i])
			if prev == cur || join(prev, cur) {
				continue
			}
		}
		if start < i {
			runs = append(runs, SubTextRange{
				Text:  string(runes[start:i]),
				Range: Span{Start: start, End: i},
			})
		}
		start = i
	}
	return runs
}

// runIO is a strategy whose objects are class runs within single lines.
type runIO struct {
	base
	runs   func(l buffer.Line) []SubTextRange
	strict bool
}

func (s *runIO) objects(doc Document, n int) []Range {
	runs := s.runs(doc.LineAt(n))
	objs := make([]Range, len(runs))
	for i, r := range runs {
		objs[i] = spanRange(n, r.Range)
	}
	return objs
}

// GetContainingObjectAt returns the run containing pos.
func (s *runIO) GetContainingObjectAt(doc Document, pos Position) (Range, bool) {
	for _, r := range s.objects(doc, pos.Line) {
		if s.strict && r.ContainsStrict(pos) || !s.strict && r.Contains(pos) {
			return r, true
		}
	}
	return Range{}, false
}

// IterAll yields runs in document order.
func (s *runIO) IterAll(doc Document, opts IterationOptions) iter.Seq[Range] {
	return iterByLine(doc, opts, s.objects)
}

// IterHorizontally is IterAll.
func (s *runIO) IterHorizontally(doc Document, opts IterationOptions) iter.Seq[Range] {
	return s.IterAll(doc, opts)
}

// IterVertically yields the run closest to the starting column on each
// following line that has runs.
func (s *runIO) IterVertically(doc Document, opts IterationOptions) iter.Seq[Range] {
	return iterByColumn(doc, opts, s.objects)
}

// IterScope yields the runs of the starting line.
func (s *runIO) IterScope(doc Document, opts IterationOptions) iter.Seq[Range] {
	return objectsOnLine(doc, opts, s.objects)
}

// SubwordIO splits lines into camel-case words and operator runs.
// Only positions strictly inside a run are contained by it.
type SubwordIO struct {
	runIO
}

// NewSubwordIO creates a subword strategy.
func NewSubwordIO() *SubwordIO {
	s := &SubwordIO{}
	s.runIO = runIO{runs: subwordRuns, strict: true}
	s.base = newBase(s, `[\s,;]*`, "")
	return s
}

// subwordRuns splits the line after its indentation. Whitespace runs are
// not objects.
func subwordRuns(l buffer.Line) []SubTextRange {
	all := splitRuns(l.Text, indentOf(l), subwordClass, func(prev, cur charClass) bool {
		return prev == classWordStart && cur == classWordCont
	})
	runs := all[:0:0]
	for _, r := range all {
		if subwordClass([]rune(r.Text)[0]) != classWhitespace {
			runs = append(runs, r)
		}
	}
	return runs
}

// InterwordIO treats the runs between words as objects. A run contains
// both of its boundaries.
type InterwordIO struct {
	runIO
}

// NewInterwordIO creates an inter-word strategy.
func NewInterwordIO() *InterwordIO {
	s := &InterwordIO{}
	s.runIO = runIO{runs: interwordRuns}
	s.base = newBase(s, ``, "")
	return s
}

// interwordRuns returns the non-word runs after the indentation.
func interwordRuns(l buffer.Line) []SubTextRange {
	all := splitRuns(l.Text, indentOf(l), interwordClass, func(charClass, charClass) bool {
		return false
	})
	runs := all[:0:0]
	for _, r := range all {
		if interwordClass([]rune(r.Text)[0]) != classWord {
			runs = append(runs, r)
		}
	}
	return runs
}
