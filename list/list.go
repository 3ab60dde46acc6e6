package list

import (
	"encoding/json"
	"fmt"
	"iter"
	"strings"

	"golang.org/x/exp/constraints"

	"github.com/hasbyte1/go-immutable-list/optional"
)

// List is a generic, immutable wrapper around an ordered backing slice of T.
//
// Every method that transforms the list returns a *new* List, leaving the
// receiver unchanged. The backing slice is never exposed for mutation and is
// copied at every boundary, so List values are safe to read from multiple
// goroutines concurrently and never alias mutable storage with each other.
//
// # Creating a list
//
//	l := list.Of(1, 2, 3, 4, 5)
//	l := list.From([]string{"a", "b", "c"})
//	l := list.Empty[int]()
//	l, _ := list.Range(0, 10, 2)
//
// # Method chaining
//
//	result := list.Of(1, 2, 3, 4, 5, 6).
//	    Filter(func(n, _ int) bool { return n%2 == 0 }).
//	    Reverse().
//	    Prepend(0)
//
// # Absence as a value
//
// Accessors that may fail to locate an element (At, First, Last, Random,
// Find, …) return an [optional.Option] instead of a sentinel:
//
//	list.Of(1, 2, 3).At(-1).GetOr(0) // 3
//	list.Empty[int]().First().IsAbsent() // true
//
// # Type-transforming operations
//
// Go generics do not allow methods to introduce new type parameters.
// Methods such as [List.Map] and [List.FlatMap] therefore produce a
// *List[any]; for fully typed transformations use the package-level
// functions [Map], [FlatMap], [CompactMap], [Reduce], [Zip] and friends:
//
//	doubled := list.Map(l, func(n, _ int) string {
//	    return strconv.Itoa(n * 2)
//	})
//
// # Index conventions
//
// Every index argument accepts negative values counting back from the end
// (-1 is the last element). Structural edits (InsertAt, RemoveAt, Swap,
// Move, …) treat an out-of-range resolved index as a silent no-op and return
// an unchanged copy; only argument-shape violations (non-positive step,
// count, or chunk size) surface as errors.
type List[T any] struct {
	items []T
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// Empty creates a zero-element List of type T.
func Empty[T any]() *List[T] {
	return &List[T]{items: []T{}}
}

// Of creates a List from a variadic sequence of items (copied), preserving
// the given order.
func Of[T any](items ...T) *List[T] {
	dst := make([]T, len(items))
	copy(dst, items)
	return &List[T]{items: dst}
}

// From creates a List from a slice (the slice is copied).
func From[T any](items []T) *List[T] {
	dst := make([]T, len(items))
	copy(dst, items)
	return &List[T]{items: dst}
}

// FromSeq materializes a finite sequence into a new List, preserving its
// traversal order. The sequence is consumed exactly once.
func FromSeq[T any](seq iter.Seq[T]) *List[T] {
	out := []T{}
	for v := range seq {
		out = append(out, v)
	}
	return &List[T]{items: out}
}

// Range generates from, from+step, from+2*step, … while strictly less than
// to (to is exclusive). The step defaults to 1 when omitted.
// Returns [ErrInvalidStep] if step <= 0, and an empty list when from >= to.
func Range[N constraints.Integer | constraints.Float](from, to N, step ...N) (*List[N], error) {
	s := N(1)
	if len(step) > 0 {
		s = step[0]
	}
	if s <= 0 {
		return nil, ErrInvalidStep
	}
	out := []N{}
	for v := from; v < to; v += s {
		out = append(out, v)
	}
	return &List[N]{items: out}, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Element access
// ─────────────────────────────────────────────────────────────────────────────

// norm resolves a possibly negative index against the current size.
// The result may still be out of range; callers bounds-check it.
func (l *List[T]) norm(index int) int {
	if index < 0 {
		index += len(l.items)
	}
	return index
}

// At returns the element at index. Negative indices count back from the end
// (-1 is the last element). Absent when the resolved index falls outside
// [0, Size()).
func (l *List[T]) At(index int) optional.Option[T] {
	i := l.norm(index)
	if i < 0 || i >= len(l.items) {
		return optional.None[T]()
	}
	return optional.Some(l.items[i])
}

// First returns the first element; absent when the list is empty.
func (l *List[T]) First() optional.Option[T] { return l.At(0) }

// Last returns the last element; absent when the list is empty.
func (l *List[T]) Last() optional.Option[T] { return l.At(-1) }

// ─────────────────────────────────────────────────────────────────────────────
// Inspection & conversion
// ─────────────────────────────────────────────────────────────────────────────

// Size returns the number of elements in the list.
func (l *List[T]) Size() int { return len(l.items) }

// IsEmpty reports whether the list contains no elements.
func (l *List[T]) IsEmpty() bool { return len(l.items) == 0 }

// IsNotEmpty reports whether the list has at least one element.
func (l *List[T]) IsNotEmpty() bool { return len(l.items) > 0 }

// All returns a copy of the backing slice.
func (l *List[T]) All() []T {
	out := make([]T, len(l.items))
	copy(out, l.items)
	return out
}

// ToSlice is an alias for [List.All].
func (l *List[T]) ToSlice() []T { return l.All() }

// ToSet returns the element value set, keyed by each element's interface
// value (Go's default equality). Duplicates collapse; elements whose dynamic
// type is not comparable panic, as with any map key.
//
// For a typed set, use the package-level [ToSet].
func (l *List[T]) ToSet() map[any]struct{} {
	out := make(map[any]struct{}, len(l.items))
	for _, item := range l.items {
		out[any(item)] = struct{}{}
	}
	return out
}

// ToJSON serialises the list elements to a JSON array.
func (l *List[T]) ToJSON() ([]byte, error) {
	return json.Marshal(l.items)
}

// MarshalJSON implements [json.Marshaler]: a List serialises as a plain JSON
// array of its elements.
func (l *List[T]) MarshalJSON() ([]byte, error) { return l.ToJSON() }

// String returns the comma-joined stringification of the elements.
// It implements [fmt.Stringer].
func (l *List[T]) String() string {
	return l.Implode(",", func(item T) string { return fmt.Sprint(item) })
}

// Implode joins all elements into a string using sep, converting each
// element with fn.
func (l *List[T]) Implode(sep string, fn func(T) string) string {
	parts := make([]string, len(l.items))
	for i, item := range l.items {
		parts[i] = fn(item)
	}
	return strings.Join(parts, sep)
}

// ─────────────────────────────────────────────────────────────────────────────
// Iteration
// ─────────────────────────────────────────────────────────────────────────────

// Values returns a restartable, in-order sequence of the elements, usable
// with range-over-func:
//
//	for v := range l.Values() { … }
//
// Iterating never mutates the list; each pass yields every element once.
func (l *List[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range l.items {
			if !yield(item) {
				return
			}
		}
	}
}

// Each calls fn(item, index) for every element in order.
func (l *List[T]) Each(fn func(T, int)) {
	for i, item := range l.items {
		fn(item, i)
	}
}

// Tap calls fn(l) for side-effects (e.g. logging or debugging) and returns
// l unchanged for further chaining.
func (l *List[T]) Tap(fn func(*List[T])) *List[T] {
	fn(l)
	return l
}

// Dump prints the list to stdout and returns l for chaining.
func (l *List[T]) Dump() *List[T] {
	fmt.Println(l.String())
	return l
}

// ─────────────────────────────────────────────────────────────────────────────
// Conditional pipeline
// ─────────────────────────────────────────────────────────────────────────────

// When calls fn(l) if condition is true and returns the result.
// Otherwise returns l unchanged.
func (l *List[T]) When(condition bool, fn func(*List[T]) *List[T]) *List[T] {
	if condition {
		return fn(l)
	}
	return l
}

// Unless calls fn(l) if condition is false; otherwise returns l.
func (l *List[T]) Unless(condition bool, fn func(*List[T]) *List[T]) *List[T] {
	return l.When(!condition, fn)
}

// WhenEmpty calls fn(l) if l is empty; otherwise returns l.
func (l *List[T]) WhenEmpty(fn func(*List[T]) *List[T]) *List[T] {
	return l.When(l.IsEmpty(), fn)
}

// WhenNotEmpty calls fn(l) if l is not empty; otherwise returns l.
func (l *List[T]) WhenNotEmpty(fn func(*List[T]) *List[T]) *List[T] {
	return l.When(l.IsNotEmpty(), fn)
}
