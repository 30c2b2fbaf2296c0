package buffer

import (
	"strings"
	"unicode"

	"github.com/rivo/uniseg"
)

// Line describes one line of a snapshot.
type Line struct {
	LineNumber int
	Text       string

	// FirstNonWhitespaceCharacterIndex is the rune column of the first
	// non-whitespace character, or the line length for blank lines.
	FirstNonWhitespaceCharacterIndex int
	IsEmptyOrWhitespace              bool

	// Range covers the line without its line break.
	Range Range
	// RangeIncludingLineBreak extends Range to the start of the next line.
	RangeIncludingLineBreak Range
}

// Len returns the rune length of the line.
func (l Line) Len() int {
	return l.Range.End.Character
}

// Snapshot provides a read-only view of a buffer at a specific point in time.
// It is safe for concurrent access and will not change even if the original
// buffer is modified. Positions computed against a snapshot are stale once
// the buffer has moved to a newer revision.
type Snapshot struct {
	lines      [][]rune
	revisionID RevisionID
}

// NewSnapshotFromString builds a standalone snapshot, mostly useful in tests.
func NewSnapshotFromString(s string) *Snapshot {
	return &Snapshot{
		lines:      splitLines(normalizeLineEndings(s, LineEndingLF)),
		revisionID: NewRevisionID(),
	}
}

// RevisionID returns the revision this snapshot was taken at.
func (s *Snapshot) RevisionID() RevisionID {
	return s.revisionID
}

// LineCount returns the number of lines. An empty document has one line.
func (s *Snapshot) LineCount() int {
	return len(s.lines)
}

// LineAt returns the line with the given number.
// Out of range line numbers yield an empty line positioned at n.
func (s *Snapshot) LineAt(n int) Line {
	if n < 0 || n >= len(s.lines) {
		p := Position{Line: n}
		return Line{
			LineNumber:          n,
			IsEmptyOrWhitespace: true,
			Range:               EmptyRange(p),
			RangeIncludingLineBreak: EmptyRange(p),
		}
	}

	runes := s.lines[n]
	first := len(runes)
	for i, r := range runes {
		if !unicode.IsSpace(r) {
			first = i
			break
		}
	}

	end := Position{Line: n, Character: len(runes)}
	withBreak := end
	if n+1 < len(s.lines) {
		withBreak = Position{Line: n + 1}
	}

	return Line{
		LineNumber:                       n,
		Text:                             string(runes),
		FirstNonWhitespaceCharacterIndex: first,
		IsEmptyOrWhitespace:              first == len(runes),
		Range:                            Range{Start: Position{Line: n}, End: end},
		RangeIncludingLineBreak:          Range{Start: Position{Line: n}, End: withBreak},
	}
}

// Text returns the full snapshot content as a string.
func (s *Snapshot) Text() string {
	var sb strings.Builder
	for i, l := range s.lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(string(l))
	}
	return sb.String()
}

// Len returns the rune length of the document, line breaks included.
func (s *Snapshot) Len() int {
	n := 0
	for _, l := range s.lines {
		n += len(l)
	}
	return n + len(s.lines) - 1
}

// End returns the position just past the last character.
func (s *Snapshot) End() Position {
	last := len(s.lines) - 1
	return Position{Line: last, Character: len(s.lines[last])}
}

// FullRange covers the whole document.
func (s *Snapshot) FullRange() Range {
	return Range{End: s.End()}
}

// ValidatePosition clamps p into the document.
func (s *Snapshot) ValidatePosition(p Position) Position {
	if p.Line < 0 {
		return Position{}
	}
	if p.Line >= len(s.lines) {
		return s.End()
	}
	return Position{Line: p.Line, Character: min(max(p.Character, 0), len(s.lines[p.Line]))}
}

// ValidateRange clamps both ends of r into the document.
func (s *Snapshot) ValidateRange(r Range) Range {
	return NewRange(s.ValidatePosition(r.Start), s.ValidatePosition(r.End))
}

// OffsetAt converts a position to a rune offset. Line breaks count as one.
func (s *Snapshot) OffsetAt(p Position) int {
	p = s.ValidatePosition(p)
	offset := 0
	for i := 0; i < p.Line; i++ {
		offset += len(s.lines[i]) + 1
	}
	return offset + p.Character
}

// PositionAt converts a rune offset to a position, clamping out of range
// offsets to the document bounds.
func (s *Snapshot) PositionAt(offset int) Position {
	if offset <= 0 {
		return Position{}
	}
	for i, l := range s.lines {
		if offset <= len(l) {
			return Position{Line: i, Character: offset}
		}
		offset -= len(l) + 1
	}
	return s.End()
}

// GetText returns the text covered by r.
func (s *Snapshot) GetText(r Range) string {
	r = s.ValidateRange(r)
	if r.IsSingleLine() {
		return string(s.lines[r.Start.Line][r.Start.Character:r.End.Character])
	}

	var sb strings.Builder
	sb.WriteString(string(s.lines[r.Start.Line][r.Start.Character:]))
	for i := r.Start.Line + 1; i < r.End.Line; i++ {
		sb.WriteByte('\n')
		sb.WriteString(string(s.lines[i]))
	}
	sb.WriteByte('\n')
	sb.WriteString(string(s.lines[r.End.Line][:r.End.Character]))
	return sb.String()
}

// GetWordRangeAtPosition returns the word touching p.
// Words are Unicode word segments containing a letter, digit or underscore.
// A position directly after a word resolves to that word, as in most hosts.
func (s *Snapshot) GetWordRangeAtPosition(p Position) (Range, bool) {
	if p.Line < 0 || p.Line >= len(s.lines) {
		return Range{}, false
	}
	line := s.lines[p.Line]
	if p.Character < 0 || p.Character > len(line) {
		return Range{}, false
	}

	var ending *Range
	col := 0
	rest := string(line)
	state := -1
	for len(rest) > 0 {
		var seg string
		seg, rest, state = uniseg.FirstWordInString(rest, state)
		n := len([]rune(seg))
		start, end := col, col+n
		col = end

		if !isWordSegment(seg) {
			continue
		}
		r := NewRangeAt(p.Line, start, p.Line, end)
		if start <= p.Character && p.Character < end {
			return r, true
		}
		if end == p.Character {
			ending = &r
		}
		if start > p.Character {
			break
		}
	}
	if ending != nil {
		return *ending, true
	}
	return Range{}, false
}

// RuneAt returns the rune at the given offset.
// ok is false for offsets outside the document.
func (s *Snapshot) RuneAt(offset int) (rune, bool) {
	if offset < 0 {
		return 0, false
	}
	for i, l := range s.lines {
		if offset < len(l) {
			return l[offset], true
		}
		if offset == len(l) {
			return '\n', i+1 < len(s.lines)
		}
		offset -= len(l) + 1
	}
	return 0, false
}

func isWordSegment(seg string) bool {
	for _, r := range seg {
		if r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

func splitLines(s string) [][]rune {
	parts := strings.Split(s, "\n")
	lines := make([][]rune, len(parts))
	for i, p := range parts {
		lines[i] = []rune(p)
	}
	return lines
}
