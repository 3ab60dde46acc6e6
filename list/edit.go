package list

// ─────────────────────────────────────────────────────────────────────────────
// Structural edits
//
// Every index argument accepts negative values counting back from the end.
// An out-of-range resolved index is not an error: the operation degrades to
// an unchanged copy. Splice is the primitive the single-index edits are
// built from.
// ─────────────────────────────────────────────────────────────────────────────

// Splice returns a new list with deleteCount elements removed starting at
// start and items inserted at that position. A negative start counts back
// from the end; a start outside [0, Size()] returns an unchanged copy.
// deleteCount is clamped to the elements available after start.
func (l *List[T]) Splice(start, deleteCount int, items ...T) *List[T] {
	n := len(l.items)
	s := l.norm(start)
	if s < 0 || s > n {
		return l.Clone()
	}
	if deleteCount < 0 {
		deleteCount = 0
	}
	if deleteCount > n-s {
		deleteCount = n - s
	}
	out := make([]T, 0, n-deleteCount+len(items))
	out = append(out, l.items[:s]...)
	out = append(out, items...)
	out = append(out, l.items[s+deleteCount:]...)
	return &List[T]{items: out}
}

// InsertAt returns a new list with item inserted before index.
// Index Size() appends; an index outside [0, Size()] is a no-op copy.
func (l *List[T]) InsertAt(index int, item T) *List[T] {
	i := l.norm(index)
	if i < 0 || i > len(l.items) {
		return l.Clone()
	}
	return l.Splice(i, 0, item)
}

// RemoveAt returns a new list with the element at index deleted.
// An index outside [0, Size()) is a no-op copy.
func (l *List[T]) RemoveAt(index int) *List[T] {
	i := l.norm(index)
	if i < 0 || i >= len(l.items) {
		return l.Clone()
	}
	return l.Splice(i, 1)
}

// ReplaceAt returns a new list with item substituted at index.
// An index outside [0, Size()) is a no-op copy.
func (l *List[T]) ReplaceAt(index int, item T) *List[T] {
	i := l.norm(index)
	if i < 0 || i >= len(l.items) {
		return l.Clone()
	}
	return l.Splice(i, 1, item)
}

// UpdateAt returns a new list with the element at index substituted by
// fn(item, index)'s result. An index outside [0, Size()) is a no-op copy.
func (l *List[T]) UpdateAt(index int, fn func(T, int) T) *List[T] {
	i := l.norm(index)
	if i < 0 || i >= len(l.items) {
		return l.Clone()
	}
	return l.Splice(i, 1, fn(l.items[i], i))
}

// Swap returns a new list with the elements at aIndex and bIndex exchanged.
// If either resolved index is out of range, an unchanged copy is returned.
func (l *List[T]) Swap(aIndex, bIndex int) *List[T] {
	n := len(l.items)
	a, b := l.norm(aIndex), l.norm(bIndex)
	if a < 0 || a >= n || b < 0 || b >= n {
		return l.Clone()
	}
	out := l.All()
	out[a], out[b] = out[b], out[a]
	return &List[T]{items: out}
}

// Move returns a new list with the element at src removed and reinserted at
// dst. Both indices are normalized against the original size; if either is
// out of range, an unchanged copy is returned.
func (l *List[T]) Move(src, dst int) *List[T] {
	n := len(l.items)
	s, d := l.norm(src), l.norm(dst)
	if s < 0 || s >= n || d < 0 || d >= n {
		return l.Clone()
	}
	item := l.items[s]
	return l.Splice(s, 1).Splice(d, 0, item)
}

// Append returns a new list with items added at the tail.
func (l *List[T]) Append(items ...T) *List[T] {
	out := make([]T, len(l.items)+len(items))
	copy(out, l.items)
	copy(out[len(l.items):], items)
	return &List[T]{items: out}
}

// Prepend returns a new list with items added at the head.
func (l *List[T]) Prepend(items ...T) *List[T] {
	out := make([]T, len(items)+len(l.items))
	copy(out, items)
	copy(out[len(items):], l.items)
	return &List[T]{items: out}
}

// Concat returns a new list with all elements of other appended.
func (l *List[T]) Concat(other *List[T]) *List[T] {
	return l.Append(other.items...)
}

// ─────────────────────────────────────────────────────────────────────────────
// Slicing
// ─────────────────────────────────────────────────────────────────────────────

// Slice returns the half-open sub-range [start, end) as a new list.
// Both bounds are optional: Slice() copies the whole list, Slice(start)
// runs to the end. Negative bounds count back from the end; bounds are
// clamped into [0, Size()].
func (l *List[T]) Slice(bounds ...int) *List[T] {
	n := len(l.items)
	start, end := 0, n
	if len(bounds) > 0 {
		start = l.norm(bounds[0])
	}
	if len(bounds) > 1 {
		end = l.norm(bounds[1])
	}
	if start < 0 {
		start = 0
	}
	if end > n {
		end = n
	}
	if start >= end {
		return Empty[T]()
	}
	return From(l.items[start:end])
}

// Take returns the first count elements (all of them when count exceeds the
// size). Returns [ErrInvalidCount] when count <= 0.
func (l *List[T]) Take(count int) (*List[T], error) {
	if count <= 0 {
		return nil, ErrInvalidCount
	}
	if count > len(l.items) {
		count = len(l.items)
	}
	return From(l.items[:count]), nil
}

// Drop returns the remainder after removing the first count elements (empty
// when count exceeds the size). Returns [ErrInvalidCount] when count <= 0.
func (l *List[T]) Drop(count int) (*List[T], error) {
	if count <= 0 {
		return nil, ErrInvalidCount
	}
	if count >= len(l.items) {
		return Empty[T](), nil
	}
	return From(l.items[count:]), nil
}

// TakeWhile returns the longest prefix of elements for which fn(item, index)
// holds, stopping at the first element where it does not.
func (l *List[T]) TakeWhile(fn func(T, int) bool) *List[T] {
	for i, item := range l.items {
		if !fn(item, i) {
			return From(l.items[:i])
		}
	}
	return l.Clone()
}

// DropWhile drops the longest prefix of elements for which fn(item, index)
// holds and returns the remainder, starting with the first element where it
// does not.
func (l *List[T]) DropWhile(fn func(T, int) bool) *List[T] {
	for i, item := range l.items {
		if !fn(item, i) {
			return From(l.items[i:])
		}
	}
	return Empty[T]()
}
