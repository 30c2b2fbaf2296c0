package subjectio

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Name identifies a strategy.
type Name string

// Strategy names.
const (
	Word      Name = "word"
	Subword   Name = "subword"
	Interword Name = "interword"
	Line      Name = "line"
	Block     Name = "block"
	Bracket   Name = "bracket"
	Char      Name = "char"
)

// ErrInvalidSeparators is returned when a separator pattern does not compile.
var ErrInvalidSeparators = errors.New("invalid separator pattern")

// Names returns every strategy name.
func Names() []Name {
	return []Name{Word, Subword, Interword, Line, Block, Bracket, Char}
}

// ParseName looks up a strategy name, ignoring case.
func ParseName(s string) (Name, error) {
	n := Name(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Names() {
		if n == known {
			return n, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSubject, s)
}

// Options tunes a strategy created by New.
type Options struct {
	// Separators replaces the strategy's deletable separator pattern. It
	// must match a separating text completely.
	Separators string

	// Inclusive makes bracket objects include the brackets.
	Inclusive bool
}

// DefaultOptions returns the options New uses when none are configured.
func DefaultOptions() Options {
	return Options{Inclusive: true}
}

// New creates the strategy registered under name.
func New(name Name, opts Options) (SubjectIO, error) {
	var (
		io SubjectIO
		b  *base
	)
	switch name {
	case Word:
		s := NewWordIO()
		io, b = s, &s.base
	case Subword:
		s := NewSubwordIO()
		io, b = s, &s.base
	case Interword:
		s := NewInterwordIO()
		io, b = s, &s.base
	case Line:
		s := NewLineIO()
		io, b = s, &s.base
	case Block:
		s := NewBlockIO()
		io, b = s, &s.base
	case Bracket:
		s := NewBracketIO(opts.Inclusive)
		io, b = s, &s.base
	case Char:
		s := NewCharIO()
		io, b = s, &s.base
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSubject, name)
	}

	if opts.Separators != "" {
		re, err := regexp.Compile(anchor(opts.Separators))
		if err != nil {
			return nil, fmt.Errorf("%w for %s: %w", ErrInvalidSeparators, name, err)
		}
		b.setSeparators(re)
	}
	return io, nil
}
