package list

import "iter"

// Enumerable is the read surface satisfied by [List][T].
//
// Accept Enumerable in your own functions and interfaces so that consumers
// can substitute alternative implementations without depending on the
// concrete *List type.
//
// A minimal implementation only needs to provide these methods; all higher-
// level List helpers are built on top of this surface.
type Enumerable[T any] interface {
	// All returns a copy of every element as a plain Go slice.
	All() []T

	// Size returns the number of elements.
	Size() int

	// IsEmpty reports whether there are no elements.
	IsEmpty() bool

	// IsNotEmpty reports whether there is at least one element.
	IsNotEmpty() bool

	// Each calls fn(item, index) for every element in order.
	Each(fn func(T, int))

	// Values returns a restartable, in-order sequence of the elements.
	Values() iter.Seq[T]

	// Filter returns a new list containing only elements for which
	// fn(item, index) returns true.
	Filter(fn func(T, int) bool) *List[T]

	// ToSlice is an alias for All.
	ToSlice() []T
}
