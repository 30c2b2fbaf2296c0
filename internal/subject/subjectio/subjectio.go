package subjectio

import (
	"errors"
	"iter"
)

// Errors returned by strategies.
var (
	// ErrUseHostLineCommand is returned by line operations the host editor
	// implements better itself.
	ErrUseHostLineCommand = errors.New("not supported for lines, use the editor's line command")

	// ErrUnknownSubject is returned by New for an unregistered name.
	ErrUnknownSubject = errors.New("unknown subject")
)

// SubjectIO is one text-object strategy.
//
// Methods returning a bool use false for "no object"; callers treat that
// as a no-op. Iterators are lazy and may be abandoned at any point.
type SubjectIO interface {
	// GetContainingObjectAt returns the object that contains pos.
	GetContainingObjectAt(doc Document, pos Position) (Range, bool)

	// GetClosestObjectTo returns the object nearest to pos.
	GetClosestObjectTo(doc Document, pos Position) (Range, bool)

	// IterAll yields every object in the iteration direction.
	IterAll(doc Document, opts IterationOptions) iter.Seq[Range]

	// IterHorizontally yields the objects reached by moving left or right.
	IterHorizontally(doc Document, opts IterationOptions) iter.Seq[Range]

	// IterVertically yields the objects reached by moving up or down.
	IterVertically(doc Document, opts IterationOptions) iter.Seq[Range]

	// IterScope yields the siblings of the object at the starting position.
	IterScope(doc Document, opts IterationOptions) iter.Seq[Range]

	// GetSeparatingText returns the separator between obj and a neighbour.
	GetSeparatingText(doc Document, obj Range) (Range, bool)

	// SkipOver moves past the next blank line, or past skipChar when it is
	// not zero, and returns the first object beyond it.
	SkipOver(doc Document, skipChar rune, opts IterationOptions) (Range, bool)

	// DeleteObject removes obj with its separator and returns the caret.
	DeleteObject(doc Document, edit EditBuilder, obj Range) (Placement, error)

	// Duplicate inserts a copy of obj next to it and returns the copy.
	Duplicate(doc Document, edit EditBuilder, obj Range) (Placement, error)

	// InsertNew opens room for a new object next to obj in dir and returns
	// the caret where it goes.
	InsertNew(doc Document, edit EditBuilder, obj Range, dir Direction) (Placement, error)

	// SwapHorizontally exchanges the object at r with its horizontal
	// neighbour in dir and returns where the object at r ended up.
	SwapHorizontally(doc Document, edit EditBuilder, dir Direction, r Range) (Placement, bool, error)

	// SwapVertically is SwapHorizontally for the vertical neighbour.
	SwapVertically(doc Document, edit EditBuilder, dir Direction, r Range) (Placement, bool, error)
}

// Skipper is implemented by strategies with their own character search.
type Skipper interface {
	// Skip returns the first object whose leading character matches target.
	Skip(doc Document, target rune, opts IterationOptions) (Range, bool)
}

// SideSeparator is implemented by strategies that can report the separator
// on one side of an object.
type SideSeparator interface {
	// SeparatorBeside returns the deletable text between obj and its
	// neighbour in dir.
	SeparatorBeside(doc Document, obj Range, dir Direction) (Range, bool)
}
