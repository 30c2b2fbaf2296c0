package main

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/dshills/textsubject/internal/subject"
	"github.com/dshills/textsubject/internal/subject/subjectio"
)

// action is one parsed command line action.
type action struct {
	apply func(s *subject.Subject) error
}

// move adapts an action that cannot fail.
func move(fn func(*subject.Subject)) func(*subject.Subject, rune) error {
	return func(s *subject.Subject, _ rune) error {
		fn(s)
		return nil
	}
}

var actions = map[string]func(*subject.Subject, rune) error{
	"up":    move((*subject.Subject).NextSubjectUp),
	"down":  move((*subject.Subject).NextSubjectDown),
	"left":  move((*subject.Subject).NextSubjectLeft),
	"right": move((*subject.Subject).NextSubjectRight),

	"add-up":    move((*subject.Subject).AddSubjectUp),
	"add-down":  move((*subject.Subject).AddSubjectDown),
	"add-left":  move((*subject.Subject).AddSubjectLeft),
	"add-right": move((*subject.Subject).AddSubjectRight),

	"swap-up":    func(s *subject.Subject, _ rune) error { return s.SwapSubjectUp() },
	"swap-down":  func(s *subject.Subject, _ rune) error { return s.SwapSubjectDown() },
	"swap-left":  func(s *subject.Subject, _ rune) error { return s.SwapSubjectLeft() },
	"swap-right": func(s *subject.Subject, _ rune) error { return s.SwapSubjectRight() },

	"first": move((*subject.Subject).FirstSubjectInScope),
	"last":  move((*subject.Subject).LastSubjectInScope),
	"fix":   move((*subject.Subject).FixSelection),

	"delete":        func(s *subject.Subject, _ rune) error { return s.DeleteSubjects() },
	"duplicate":     func(s *subject.Subject, _ rune) error { return s.DuplicateSubjects() },
	"insert-before": func(s *subject.Subject, _ rune) error { return s.InsertSubject(subjectio.Backwards) },
	"insert-after":  func(s *subject.Subject, _ rune) error { return s.InsertSubject(subjectio.Forwards) },

	"search":      func(s *subject.Subject, r rune) error { s.Search(r); return nil },
	"search-back": func(s *subject.Subject, r rune) error { s.SearchBackwards(r); return nil },
	"skip":        func(s *subject.Subject, r rune) error { s.SkipOver(r, subjectio.Forwards); return nil },
	"skip-back":   func(s *subject.Subject, r rune) error { s.SkipOver(r, subjectio.Backwards); return nil },
}

// needsArg lists the actions that require a character argument.
var needsArg = []string{"search", "search-back"}

func actionNames() []string {
	names := make([]string, 0, len(actions))
	for name := range actions {
		if slices.Contains(needsArg, name) {
			name += ":<char>"
		}
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// parseAction parses "name" or "name:char".
func parseAction(s string) (action, error) {
	name, arg, hasArg := strings.Cut(s, ":")
	fn, ok := actions[name]
	if !ok {
		return action{}, fmt.Errorf("unknown action %q", s)
	}

	var r rune
	if hasArg {
		if utf8.RuneCountInString(arg) != 1 {
			return action{}, fmt.Errorf("action %q: argument must be a single character", s)
		}
		r, _ = utf8.DecodeRuneInString(arg)
	} else if slices.Contains(needsArg, name) {
		return action{}, fmt.Errorf("action %q needs a character argument", s)
	}

	return action{apply: func(subj *subject.Subject) error { return fn(subj, r) }}, nil
}
