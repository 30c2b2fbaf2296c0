// Package subject binds a text-object strategy to the selections of an
// editor.
//
// A Subject is the unit the modal layer talks to: "move to the next word
// down", "add the next bracket pair to the selection", "swap this line with
// the one it is nested in", "delete these blocks". Every action reads the
// editor's current document, asks the strategy for target ranges, and
// either replaces the selections or applies one edit transaction.
//
// Actions that find nothing leave the selections unchanged.
//
// Basic usage:
//
//	ed := engine.New(engine.WithContent("foo bar baz"))
//	s, err := subject.New(ed, subjectio.Word, subjectio.DefaultOptions())
//	s.FixSelection()       // select "foo"
//	s.NextSubjectRight()   // select "bar"
//	err = s.DeleteSubjects() // "foo baz"
package subject
