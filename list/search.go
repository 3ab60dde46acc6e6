package list

import "github.com/hasbyte1/go-immutable-list/optional"

// ─────────────────────────────────────────────────────────────────────────────
// Search & Lookup
// ─────────────────────────────────────────────────────────────────────────────

// Find returns the first element (in index order) satisfying fn(item, index);
// absent when none match.
func (l *List[T]) Find(fn func(T, int) bool) optional.Option[T] {
	for i, item := range l.items {
		if fn(item, i) {
			return optional.Some(item)
		}
	}
	return optional.None[T]()
}

// FindLast returns the last element satisfying fn(item, index), scanning
// from the end; absent when none match.
func (l *List[T]) FindLast(fn func(T, int) bool) optional.Option[T] {
	for i := len(l.items) - 1; i >= 0; i-- {
		if fn(l.items[i], i) {
			return optional.Some(l.items[i])
		}
	}
	return optional.None[T]()
}

// FindIndex returns the index of the first element satisfying fn; absent
// when none match.
func (l *List[T]) FindIndex(fn func(T, int) bool) optional.Option[int] {
	for i, item := range l.items {
		if fn(item, i) {
			return optional.Some(i)
		}
	}
	return optional.None[int]()
}

// FindLastIndex returns the index of the last element satisfying fn,
// scanning from the end; absent when none match.
func (l *List[T]) FindLastIndex(fn func(T, int) bool) optional.Option[int] {
	for i := len(l.items) - 1; i >= 0; i-- {
		if fn(l.items[i], i) {
			return optional.Some(i)
		}
	}
	return optional.None[int]()
}

// Has reports whether item occurs in the list, compared with Go's default
// interface equality. Elements whose dynamic type is not comparable panic,
// as with any map key.
//
// For a compile-time comparable T, the package-level [Contains] avoids the
// interface conversion.
func (l *List[T]) Has(item T) bool {
	target := any(item)
	for _, v := range l.items {
		if any(v) == target {
			return true
		}
	}
	return false
}

// Every reports whether fn(item, index) holds for every element,
// short-circuiting at the first failure. True for an empty list.
func (l *List[T]) Every(fn func(T, int) bool) bool {
	for i, item := range l.items {
		if !fn(item, i) {
			return false
		}
	}
	return true
}

// Some reports whether fn(item, index) holds for at least one element,
// short-circuiting at the first match. False for an empty list.
func (l *List[T]) Some(fn func(T, int) bool) bool {
	for i, item := range l.items {
		if fn(item, i) {
			return true
		}
	}
	return false
}
