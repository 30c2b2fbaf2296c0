// Package seq holds the lazy sequence helpers the subject strategies are
// written with. Every helper consumes and produces iter.Seq values, pulls
// only as many elements as its consumer asks for, and can be abandoned at
// any point without side effects.
package seq

import "iter"

// First returns the first element of s.
func First[T any](s iter.Seq[T]) (T, bool) {
	for v := range s {
		return v, true
	}
	var zero T
	return zero, false
}

// Last drains s and returns its final element.
func Last[T any](s iter.Seq[T]) (T, bool) {
	var (
		last T
		ok   bool
	)
	for v := range s {
		last, ok = v, true
	}
	return last, ok
}

// Find returns the first element of s that satisfies pred.
func Find[T any](s iter.Seq[T], pred func(T) bool) (T, bool) {
	return First(Filter(s, pred))
}

// Collect drains s into a slice.
func Collect[T any](s iter.Seq[T]) []T {
	var out []T
	for v := range s {
		out = append(out, v)
	}
	return out
}

// Take yields at most n elements of s.
func Take[T any](s iter.Seq[T], n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		if n <= 0 {
			return
		}
		i := 0
		for v := range s {
			if !yield(v) {
				return
			}
			i++
			if i >= n {
				return
			}
		}
	}
}

// Map yields f applied to every element of s.
func Map[T, U any](s iter.Seq[T], f func(T) U) iter.Seq[U] {
	return func(yield func(U) bool) {
		for v := range s {
			if !yield(f(v)) {
				return
			}
		}
	}
}

// Filter yields the elements of s that satisfy pred.
func Filter[T any](s iter.Seq[T], pred func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range s {
			if pred(v) && !yield(v) {
				return
			}
		}
	}
}

// TakeWhile yields elements of s until pred first fails.
func TakeWhile[T any](s iter.Seq[T], pred func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range s {
			if !pred(v) || !yield(v) {
				return
			}
		}
	}
}

// Pair is one element of a zipped sequence.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Zip yields pairs of elements from a and b, stopping with the shorter one.
func Zip[A, B any](a iter.Seq[A], b iter.Seq[B]) iter.Seq[Pair[A, B]] {
	return func(yield func(Pair[A, B]) bool) {
		nextB, stop := iter.Pull(b)
		defer stop()
		for va := range a {
			vb, ok := nextB()
			if !ok || !yield(Pair[A, B]{First: va, Second: vb}) {
				return
			}
		}
	}
}

// Alternate yields one element from each sequence in turn, continuing
// with the longer one once the other is exhausted.
func Alternate[T any](a, b iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		nextA, stopA := iter.Pull(a)
		defer stopA()
		nextB, stopB := iter.Pull(b)
		defer stopB()

		aDone, bDone := false, false
		for !aDone || !bDone {
			if !aDone {
				v, ok := nextA()
				if !ok {
					aDone = true
				} else if !yield(v) {
					return
				}
			}
			if !bDone {
				v, ok := nextB()
				if !ok {
					bDone = true
				} else if !yield(v) {
					return
				}
			}
		}
	}
}

// Of yields the given values.
func Of[T any](vs ...T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range vs {
			if !yield(v) {
				return
			}
		}
	}
}
