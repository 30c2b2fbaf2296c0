package config

import (
	"fmt"

	"github.com/dshills/textsubject/internal/logging"
	"github.com/dshills/textsubject/internal/subject"
	"github.com/dshills/textsubject/internal/subject/subjectio"
)

// Config is the full textsubject configuration.
type Config struct {
	Logging  LoggingConfig  `toml:"logging"`
	Subjects SubjectsConfig `toml:"subjects"`
}

// LoggingConfig holds the [logging] section.
type LoggingConfig struct {
	Level string `toml:"level"`
}

// SubjectsConfig holds the [subjects] section and its per-subject tables.
type SubjectsConfig struct {
	// Default names the subject bound when none is requested.
	Default string `toml:"default"`

	Word      SubjectConfig `toml:"word,omitempty"`
	Subword   SubjectConfig `toml:"subword,omitempty"`
	Interword SubjectConfig `toml:"interword,omitempty"`
	Line      SubjectConfig `toml:"line,omitempty"`
	Block     SubjectConfig `toml:"block,omitempty"`
	Bracket   SubjectConfig `toml:"bracket,omitempty"`
	Char      SubjectConfig `toml:"char,omitempty"`
}

// SubjectConfig tunes one subject. Zero values keep the built-in behaviour.
type SubjectConfig struct {
	// Separators replaces the deletable separator pattern.
	Separators string `toml:"separators,omitempty"`

	// Inclusive controls whether bracket objects include their brackets.
	// Only the bracket subject reads it.
	Inclusive *bool `toml:"inclusive,omitempty"`

	// JumpPhases is "single" or "dual".
	JumpPhases string `toml:"jump_phases,omitempty"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Logging:  LoggingConfig{Level: "info"},
		Subjects: SubjectsConfig{Default: string(subjectio.Word)},
	}
}

// Subject returns the table for name.
func (c *Config) Subject(name subjectio.Name) SubjectConfig {
	s := &c.Subjects
	switch name {
	case subjectio.Word:
		return s.Word
	case subjectio.Subword:
		return s.Subword
	case subjectio.Interword:
		return s.Interword
	case subjectio.Line:
		return s.Line
	case subjectio.Block:
		return s.Block
	case subjectio.Bracket:
		return s.Bracket
	case subjectio.Char:
		return s.Char
	default:
		return SubjectConfig{}
	}
}

// DefaultSubject returns the configured default subject.
func (c *Config) DefaultSubject() (subjectio.Name, error) {
	return subjectio.ParseName(c.Subjects.Default)
}

// LogLevel returns the configured log level.
func (c *Config) LogLevel() (logging.Level, error) {
	level, ok := logging.ParseLevel(c.Logging.Level)
	if !ok {
		return level, fmt.Errorf("%w: logging.level %q", ErrInvalidValue, c.Logging.Level)
	}
	return level, nil
}

// Options returns the strategy options for name.
func (c *Config) Options(name subjectio.Name) subjectio.Options {
	opts := subjectio.DefaultOptions()
	sc := c.Subject(name)
	opts.Separators = sc.Separators
	if sc.Inclusive != nil {
		opts.Inclusive = *sc.Inclusive
	}
	return opts
}

// JumpPhaseType returns the jump phase type for name.
func (c *Config) JumpPhaseType(name subjectio.Name) (subject.JumpPhaseType, error) {
	sc := c.Subject(name)
	if sc.JumpPhases == "" {
		return subject.DefaultJumpPhaseType(name), nil
	}
	j, err := subject.ParseJumpPhaseType(sc.JumpPhases)
	if err != nil {
		return j, fmt.Errorf("%w: subjects.%s.jump_phases: %w", ErrInvalidValue, name, err)
	}
	return j, nil
}

// SubjectOptions returns the subject options for name.
func (c *Config) SubjectOptions(name subjectio.Name) ([]subject.Option, error) {
	j, err := c.JumpPhaseType(name)
	if err != nil {
		return nil, err
	}
	return []subject.Option{subject.WithJumpPhaseType(j)}, nil
}

// Validate checks every setting.
func (c *Config) Validate() error {
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	if _, err := c.DefaultSubject(); err != nil {
		return fmt.Errorf("subjects.default: %w", err)
	}
	for _, name := range subjectio.Names() {
		if _, err := subjectio.New(name, c.Options(name)); err != nil {
			return fmt.Errorf("%w: subjects.%s.separators: %w", ErrInvalidPattern, name, err)
		}
		if _, err := c.JumpPhaseType(name); err != nil {
			return err
		}
	}
	return nil
}
