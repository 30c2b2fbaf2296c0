package subject

import (
	"fmt"

	"github.com/dshills/textsubject/internal/engine"
	"github.com/dshills/textsubject/internal/engine/buffer"
	"github.com/dshills/textsubject/internal/engine/cursor"
	"github.com/dshills/textsubject/internal/logging"
	"github.com/dshills/textsubject/internal/subject/subjectio"
)

// Editor is the part of a host editor a Subject drives.
type Editor interface {
	Document() buffer.Document
	Selections() []cursor.Selection
	SetSelections(sels []cursor.Selection)
	SetDecorations(dt engine.DecorationType, ranges []buffer.Range)
	Edit(fn func(buffer.EditBuilder)) error
	RevealRange(r buffer.Range)
	VisibleRanges() []buffer.Range
}

// decorationCreator is implemented by editors that mint decoration types.
type decorationCreator interface {
	CreateDecorationType(name string) engine.DecorationType
}

var _ Editor = (*engine.Editor)(nil)

// JumpPhaseType tells the jump interface how many keystrokes it needs to
// pick an object of this subject.
type JumpPhaseType uint8

const (
	// SinglePhase jumps pick a label directly.
	SinglePhase JumpPhaseType = iota
	// DualPhase jumps first narrow by a typed character, then pick a label.
	DualPhase
)

func (j JumpPhaseType) String() string {
	if j == DualPhase {
		return "dual-phase"
	}
	return "single-phase"
}

// ParseJumpPhaseType parses "single" or "dual".
func ParseJumpPhaseType(s string) (JumpPhaseType, error) {
	switch s {
	case "single", "single-phase":
		return SinglePhase, nil
	case "dual", "dual-phase":
		return DualPhase, nil
	default:
		return SinglePhase, fmt.Errorf("unknown jump phase type %q", s)
	}
}

// DefaultJumpPhaseType returns the jump phase type used for name.
// Subjects dense enough that labels alone would be unreadable use two
// phases.
func DefaultJumpPhaseType(name subjectio.Name) JumpPhaseType {
	switch name {
	case subjectio.Char, subjectio.Interword:
		return DualPhase
	default:
		return SinglePhase
	}
}

// Subject binds one strategy to the live selections of an editor.
type Subject struct {
	editor Editor
	io     subjectio.SubjectIO
	name   subjectio.Name

	jumpPhase  JumpPhaseType
	decoration engine.DecorationType
	log        *logging.Logger
}

// Option configures a Subject.
type Option func(*Subject)

// WithJumpPhaseType overrides the default jump phase type.
func WithJumpPhaseType(j JumpPhaseType) Option {
	return func(s *Subject) {
		s.jumpPhase = j
	}
}

// WithDecoration sets the decoration used to highlight selected subjects.
func WithDecoration(dt engine.DecorationType) Option {
	return func(s *Subject) {
		s.decoration = dt
	}
}

// WithLogger sets the logger.
func WithLogger(l *logging.Logger) Option {
	return func(s *Subject) {
		if l != nil {
			s.log = l
		}
	}
}

// New creates a subject using the strategy registered under name.
func New(editor Editor, name subjectio.Name, ioOpts subjectio.Options, opts ...Option) (*Subject, error) {
	io, err := subjectio.New(name, ioOpts)
	if err != nil {
		return nil, err
	}
	return NewWithIO(editor, name, io, opts...), nil
}

// NewWithIO creates a subject around an existing strategy.
func NewWithIO(editor Editor, name subjectio.Name, io subjectio.SubjectIO, opts ...Option) *Subject {
	s := &Subject{
		editor:    editor,
		io:        io,
		name:      name,
		jumpPhase: DefaultJumpPhaseType(name),
		log:       logging.Null(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.log = s.log.WithComponent("subject").WithField("subject", string(name))
	if s.decoration.ID == "" {
		if dc, ok := editor.(decorationCreator); ok {
			s.decoration = dc.CreateDecorationType("subject." + string(name))
		} else {
			s.decoration = engine.DecorationType{ID: "subject." + string(name), Name: string(name)}
		}
	}
	return s
}

// Name returns the strategy name.
func (s *Subject) Name() subjectio.Name {
	return s.name
}

// IO returns the strategy.
func (s *Subject) IO() subjectio.SubjectIO {
	return s.io
}

// JumpPhaseType returns how jumps to this subject are picked.
func (s *Subject) JumpPhaseType() JumpPhaseType {
	return s.jumpPhase
}

// Decoration returns the decoration type used to highlight selections.
func (s *Subject) Decoration() engine.DecorationType {
	return s.decoration
}
