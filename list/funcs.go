package list

import "github.com/hasbyte1/go-immutable-list/optional"

// This file contains package-level generic functions for operations that
// transform a List[T] into a List[U] (T ≠ U) or need a comparable key type.
//
// Go generics do not allow methods to introduce their own type parameters,
// so these operations must be stand-alone functions. They compose with
// method-chaining calls:
//
//	result := list.Map(
//	    list.Of(1, 2, 3, 4, 5).Filter(func(n, _ int) bool { return n%2 == 0 }),
//	    func(n, _ int) string { return strconv.Itoa(n) },
//	)

// Map applies fn(item, index) to every element and returns a new List[U] of
// the same length, in original order.
func Map[T, U any](l *List[T], fn func(T, int) U) *List[U] {
	out := make([]U, len(l.items))
	for i, item := range l.items {
		out[i] = fn(item, i)
	}
	return &List[U]{items: out}
}

// FlatMap applies fn(item, index) to every element (producing a []U per
// element) and splices the results into a single List[U].
//
//	words := list.FlatMap(list.Of("hello world", "foo bar"),
//	    func(s string, _ int) []string { return strings.Fields(s) })
//	// → ["hello", "world", "foo", "bar"]
func FlatMap[T, U any](l *List[T], fn func(T, int) []U) *List[U] {
	out := make([]U, 0, len(l.items))
	for i, item := range l.items {
		out = append(out, fn(item, i)...)
	}
	return &List[U]{items: out}
}

// CompactMap applies fn(item, index) to every element and keeps only the
// present results, in a single pass.
//
//	nums := list.CompactMap(list.Of("1", "x", "3"),
//	    func(s string, _ int) optional.Option[int] {
//	        n, err := strconv.Atoi(s)
//	        return optional.Of(n, err == nil)
//	    })
//	// → [1, 3]
func CompactMap[T, U any](l *List[T], fn func(T, int) optional.Option[U]) *List[U] {
	out := make([]U, 0, len(l.items))
	for i, item := range l.items {
		if v, ok := fn(item, i).Get(); ok {
			out = append(out, v)
		}
	}
	return &List[U]{items: out}
}

// Reduce folds List[T] left-to-right into a single value of type U.
//
//	total := list.Reduce(list.Of(1, 2, 3, 4),
//	    func(acc string, n, _ int) string { return acc + strconv.Itoa(n) }, "")
func Reduce[T, U any](l *List[T], fn func(U, T, int) U, initial U) U {
	acc := initial
	for i, item := range l.items {
		acc = fn(acc, item, i)
	}
	return acc
}

// ReduceRight folds List[T] right-to-left, from the last element to the
// first, into a single value of type U.
func ReduceRight[T, U any](l *List[T], fn func(U, T, int) U, initial U) U {
	acc := initial
	for i := len(l.items) - 1; i >= 0; i-- {
		acc = fn(acc, l.items[i], i)
	}
	return acc
}

// Zip pairs elements of a and b positionally. The result length is the
// minimum of the two lengths; excess elements of the longer list are
// dropped.
//
//	pairs := list.Zip(list.Of("a", "b", "c"), list.Of(1, 2, 3))
//	// → [(a,1), (b,2), (c,3)]
func Zip[A, B any](a *List[A], b *List[B]) *List[Pair[A, B]] {
	n := len(a.items)
	if len(b.items) < n {
		n = len(b.items)
	}
	out := make([]Pair[A, B], n)
	for i := 0; i < n; i++ {
		out[i] = Pair[A, B]{First: a.items[i], Second: b.items[i]}
	}
	return &List[Pair[A, B]]{items: out}
}

// Collapse flattens a List[[]T] into a List[T] (one level only).
//
//	flat := list.Collapse(list.Of([]int{1, 2}, []int{3, 4}))
//	// → [1, 2, 3, 4]
func Collapse[T any](l *List[[]T]) *List[T] {
	total := 0
	for _, chunk := range l.items {
		total += len(chunk)
	}
	out := make([]T, 0, total)
	for _, chunk := range l.items {
		out = append(out, chunk...)
	}
	return &List[T]{items: out}
}

// GroupBy partitions the elements by the comparable key K extracted with
// fn(item, index), preserving element order within each group.
func GroupBy[T any, K comparable](l *List[T], fn func(T, int) K) map[K][]T {
	groups := make(map[K][]T)
	for i, item := range l.items {
		k := fn(item, i)
		groups[k] = append(groups[k], item)
	}
	return groups
}

// CountBy records the number of elements per comparable key K extracted
// with fn(item, index).
func CountBy[T any, K comparable](l *List[T], fn func(T, int) K) map[K]int {
	counts := make(map[K]int)
	for i, item := range l.items {
		counts[fn(item, i)]++
	}
	return counts
}

// KeyBy builds a map[K]T keyed by the value extracted with fn.
// When multiple elements share a key, the last one wins.
func KeyBy[T any, K comparable](l *List[T], fn func(T) K) map[K]T {
	out := make(map[K]T, len(l.items))
	for _, item := range l.items {
		out[fn(item)] = item
	}
	return out
}

// ToSet returns the element value set of a list with comparable elements.
func ToSet[T comparable](l *List[T]) map[T]struct{} {
	out := make(map[T]struct{}, len(l.items))
	for _, item := range l.items {
		out[item] = struct{}{}
	}
	return out
}

// Contains reports whether l contains item, using == on a comparable T.
func Contains[T comparable](l *List[T], item T) bool {
	for _, v := range l.items {
		if v == item {
			return true
		}
	}
	return false
}
